package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecommendation(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCareers  []string
		wantPathLen  int
		wantEmptyAll bool
	}{
		{
			name:        "complete document",
			raw:         `{"careers": ["Data Scientist"], "learning_path": [{"topic": "SQL", "why_important": "x", "youtube_queries": ["q"], "practice_questions": ["p"]}]}`,
			wantCareers: []string{"Data Scientist"},
			wantPathLen: 1,
		},
		{
			name:        "fenced document",
			raw:         "```json\n{\"careers\": [\"AI Developer\"], \"learning_path\": []}\n```",
			wantCareers: []string{"AI Developer"},
		},
		{
			name:        "missing fields tolerated",
			raw:         `{"learning_path": [{"topic": "Go"}]}`,
			wantPathLen: 1,
		},
		{
			name:         "prose rejected wholesale",
			raw:          "Here are my recommendations: learn SQL.",
			wantEmptyAll: true,
		},
		{
			name:         "wrong careers type rejects whole document",
			raw:          `{"careers": "Data Scientist", "learning_path": [{"topic": "SQL"}]}`,
			wantEmptyAll: true,
		},
		{
			name:         "wrong learning_path item type rejects whole document",
			raw:          `{"careers": ["Data Scientist"], "learning_path": ["SQL"]}`,
			wantEmptyAll: true,
		},
		{
			name:         "empty input",
			raw:          "",
			wantEmptyAll: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := decodeRecommendation(tt.raw)

			if tt.wantEmptyAll {
				assert.Empty(t, plan.Careers)
				assert.Empty(t, plan.LearningPath)
				return
			}
			assert.Equal(t, tt.wantCareers, plan.Careers)
			require.Len(t, plan.LearningPath, tt.wantPathLen)
		})
	}
}

func TestDecodeChat(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantAnswer  string
		wantQueries []string
	}{
		{
			name:        "complete answer",
			raw:         `{"answer": "Learn Go.", "youtube_queries": ["Go tutorial"]}`,
			wantAnswer:  "Learn Go.",
			wantQueries: []string{"Go tutorial"},
		},
		{
			name:       "missing queries tolerated",
			raw:        `{"answer": "Learn Go."}`,
			wantAnswer: "Learn Go.",
		},
		{
			name:       "empty answer substituted",
			raw:        `{"answer": "", "youtube_queries": []}`,
			wantAnswer: FallbackChatAnswer,
		},
		{
			name:       "prose rejected",
			raw:        "Sure! You should learn Go.",
			wantAnswer: FallbackChatAnswer,
		},
		{
			name:       "wrong answer type rejected",
			raw:        `{"answer": 42}`,
			wantAnswer: FallbackChatAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := decodeChat(tt.raw)

			assert.Equal(t, tt.wantAnswer, answer.Answer)
			if tt.wantQueries != nil {
				assert.Equal(t, tt.wantQueries, answer.YouTubeQueries)
			}
		})
	}
}
