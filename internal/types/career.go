package types

import "strings"

// SkillLevel is the proficiency level a user reports for a skill.
type SkillLevel string

// Recognized skill levels. Anything else is normalized to LevelUnknown.
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelUnknown      SkillLevel = "unknown"
)

// ParseSkillLevel normalizes a free-text level into a SkillLevel.
func ParseSkillLevel(s string) SkillLevel {
	switch SkillLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner
	case LevelIntermediate:
		return LevelIntermediate
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelUnknown
	}
}

// SkillSummary is the read-only view of a recorded skill used for prompt construction.
type SkillSummary struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// GoalSummary is the read-only view of a recorded career goal used for prompt construction.
type GoalSummary struct {
	Title string `json:"title"`
}

// VideoResult is a single video returned by the enrichment lookup.
type VideoResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// LearningPathItem is one recommended topic, enriched with videos after generation.
// Field names mirror the JSON contract the model is asked to produce.
type LearningPathItem struct {
	Topic             string        `json:"topic"`
	WhyImportant      string        `json:"why_important"`
	YouTubeQueries    []string      `json:"youtube_queries"`
	PracticeQuestions []string      `json:"practice_questions"`
	Videos            []VideoResult `json:"videos"`
}

// RecommendationResult is the complete response of the recommendation pipeline.
// After fallback shaping it always carries at least one career and one learning-path item.
type RecommendationResult struct {
	Careers      []string           `json:"careers"`
	LearningPath []LearningPathItem `json:"learning_path"`
}

// ChatAnswer is the response of the career chat endpoint.
type ChatAnswer struct {
	Answer         string        `json:"answer"`
	YouTubeQueries []string      `json:"youtube_queries"`
	Videos         []VideoResult `json:"videos"`
}

// ChatRequest is the inbound chat question.
type ChatRequest struct {
	Question string `json:"question"`
}
