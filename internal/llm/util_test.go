package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON untouched",
			input:    `{"careers": []}`,
			expected: `{"careers": []}`,
		},
		{
			name:     "json fence stripped",
			input:    "```json\n{\"careers\": []}\n```",
			expected: `{"careers": []}`,
		},
		{
			name:     "generic fence stripped",
			input:    "```\n{\"careers\": []}\n```",
			expected: `{"careers": []}`,
		},
		{
			name:     "fence with language identifier line",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n```json\n{\"a\": 1}\n```\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "no trailing fence",
			input:    "```json\n{\"a\": 1}",
			expected: `{"a": 1}`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlockRoundTrip(t *testing.T) {
	// A fenced document must parse identically to its unfenced form.
	unfenced := `{"answer": "Learn SQL", "youtube_queries": ["SQL tutorial"]}`
	fenced := "```json\n" + unfenced + "\n```"

	assert.Equal(t, CleanJSONBlock(unfenced), CleanJSONBlock(fenced))
}
