package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerpath/careerpath-ai/internal/types"
)

// SkillSummaries returns the prompt-construction view of a user's skills.
func (db *DB) SkillSummaries(ctx context.Context, userID uuid.UUID) ([]types.SkillSummary, error) {
	skills, err := db.ListSkills(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.SkillSummary, 0, len(skills))
	for _, s := range skills {
		summaries = append(summaries, types.SkillSummary{
			Name:  s.Name,
			Level: types.ParseSkillLevel(s.Level),
		})
	}
	return summaries, nil
}

// GoalSummaries returns the prompt-construction view of a user's goals.
func (db *DB) GoalSummaries(ctx context.Context, userID uuid.UUID) ([]types.GoalSummary, error) {
	goals, err := db.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.GoalSummary, 0, len(goals))
	for _, g := range goals {
		summaries = append(summaries, types.GoalSummary{Title: g.Title})
	}
	return summaries, nil
}
