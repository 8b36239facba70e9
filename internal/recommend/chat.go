package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careerpath/careerpath-ai/internal/llm"
	"github.com/careerpath/careerpath-ai/internal/types"
	"github.com/careerpath/careerpath-ai/internal/youtube"
)

// ErrEmptyQuestion is returned when a chat question is blank. It is rejected
// before any external call is made.
var ErrEmptyQuestion = errors.New("question is required")

// Answer responds to a free-text career question. When the model suggests
// search queries, only the first one is enriched to bound latency and quota.
func (s *Service) Answer(ctx context.Context, question string) (*types.ChatAnswer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	raw, err := s.llm.GenerateContent(ctx, buildChatPrompt(question), llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	answer := decodeChat(raw)
	if answer.YouTubeQueries == nil {
		answer.YouTubeQueries = []string{}
	}

	answer.Videos = []types.VideoResult{}
	if len(answer.YouTubeQueries) > 0 {
		if videos := s.videos.Search(ctx, answer.YouTubeQueries[0], youtube.DefaultMaxResults); videos != nil {
			answer.Videos = videos
		}
	}
	return &answer, nil
}
