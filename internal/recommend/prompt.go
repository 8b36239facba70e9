package recommend

import (
	"fmt"
	"strings"

	"github.com/careerpath/careerpath-ai/internal/prompts"
	"github.com/careerpath/careerpath-ai/internal/types"
)

// buildRecommendationPrompt renders the mentor prompt from the user's
// recorded skills and goals.
func buildRecommendationPrompt(skills []types.SkillSummary, goals []types.GoalSummary) string {
	template := prompts.MustGet("career.json", "career-recommendations")
	return prompts.Format(template, map[string]string{
		"Skills": renderSkills(skills),
		"Goals":  renderGoals(goals),
	})
}

// buildChatPrompt renders the chat-assistant prompt for a user question.
func buildChatPrompt(question string) string {
	template := prompts.MustGet("career.json", "chat-answer")
	return prompts.Format(template, map[string]string{
		"Question": question,
	})
}

func renderSkills(skills []types.SkillSummary) string {
	if len(skills) == 0 {
		return noSkillsPlaceholder
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, s.Level))
	}
	return strings.Join(parts, ", ")
}

func renderGoals(goals []types.GoalSummary) string {
	if len(goals) == 0 {
		return noGoalsPlaceholder
	}
	titles := make([]string, 0, len(goals))
	for _, g := range goals {
		titles = append(titles, g.Title)
	}
	return strings.Join(titles, ", ")
}
