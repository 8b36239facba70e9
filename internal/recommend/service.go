// Package recommend implements the recommendation-generation pipeline: prompt
// construction from recorded skills and goals, a generative model call, a
// best-effort decode of the structured response, concurrent video enrichment,
// and fallback shaping so the caller always receives a renderable plan.
package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/careerpath/careerpath-ai/internal/llm"
	"github.com/careerpath/careerpath-ai/internal/types"
	"github.com/careerpath/careerpath-ai/internal/youtube"
)

// ProfileStore loads the skill and goal summaries recorded for a user.
type ProfileStore interface {
	SkillSummaries(ctx context.Context, userID uuid.UUID) ([]types.SkillSummary, error)
	GoalSummaries(ctx context.Context, userID uuid.UUID) ([]types.GoalSummary, error)
}

// Service generates career recommendations and chat answers.
type Service struct {
	llm      llm.Client
	videos   youtube.Searcher
	profiles ProfileStore
}

// New creates a recommendation service.
func New(client llm.Client, videos youtube.Searcher, profiles ProfileStore) *Service {
	return &Service{
		llm:      client,
		videos:   videos,
		profiles: profiles,
	}
}

// Generate produces a recommendation plan for the user. The result always
// carries at least one career and one learning-path item: model call failures
// surface as errors, but unusable model output degrades to the defaults.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID) (*types.RecommendationResult, error) {
	skills, err := s.profiles.SkillSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	goals, err := s.profiles.GoalSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	prompt := buildRecommendationPrompt(skills, goals)
	raw, err := s.llm.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	plan := decodeRecommendation(raw)
	s.enrichLearningPath(ctx, plan.LearningPath)

	if len(plan.Careers) == 0 {
		plan.Careers = append([]string(nil), DefaultCareers...)
	}
	if len(plan.LearningPath) == 0 {
		plan.LearningPath = []types.LearningPathItem{s.fallbackLearningPathItem(ctx)}
	}

	return &plan, nil
}

// enrichLearningPath attaches video results to every item. Lookups fan out
// concurrently and items keep their original order; a failed lookup leaves
// that item's video list empty without affecting siblings.
func (s *Service) enrichLearningPath(ctx context.Context, items []types.LearningPathItem) {
	g, gctx := errgroup.WithContext(ctx)
	for i := range items {
		g.Go(func() error {
			query := items[i].Topic
			if query == "" {
				query = DefaultEnrichmentQuery
			}
			videos := s.videos.Search(gctx, query, youtube.DefaultMaxResults)
			if videos == nil {
				videos = []types.VideoResult{}
			}
			items[i].Videos = videos
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; lookups degrade internally
}

// fallbackLearningPathItem builds the default topic, with a live video lookup
// for its fixed search query.
func (s *Service) fallbackLearningPathItem(ctx context.Context) types.LearningPathItem {
	videos := s.videos.Search(ctx, FallbackYouTubeQuery, youtube.DefaultMaxResults)
	if videos == nil {
		videos = []types.VideoResult{}
	}
	return types.LearningPathItem{
		Topic:             FallbackTopic,
		WhyImportant:      FallbackWhyImportant,
		YouTubeQueries:    []string{FallbackYouTubeQuery},
		PracticeQuestions: append([]string(nil), FallbackPracticeQuestions...),
		Videos:            videos,
	}
}
