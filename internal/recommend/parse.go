package recommend

import (
	"encoding/json"
	"log"

	"github.com/careerpath/careerpath-ai/internal/llm"
	"github.com/careerpath/careerpath-ai/internal/types"
)

// decodeRecommendation parses raw model output into a recommendation plan.
// Best-effort decode with typed fallback: fence markers are stripped, the
// remainder is schema-checked and unmarshalled; any violation yields an empty
// plan rather than an error, and the caller's fallback shaping takes over.
func decodeRecommendation(raw string) types.RecommendationResult {
	clean := llm.CleanJSONBlock(raw)

	if err := validateAgainst(recommendationSchema, clean); err != nil {
		log.Printf("[recommend] discarding model plan: %v", err)
		return types.RecommendationResult{}
	}

	var plan types.RecommendationResult
	if err := json.Unmarshal([]byte(clean), &plan); err != nil {
		log.Printf("[recommend] failed to unmarshal model plan: %v", err)
		return types.RecommendationResult{}
	}
	return plan
}

// decodeChat parses raw model output into a chat answer, substituting the
// fallback apology when the output is unusable.
func decodeChat(raw string) types.ChatAnswer {
	clean := llm.CleanJSONBlock(raw)

	if err := validateAgainst(chatSchema, clean); err != nil {
		log.Printf("[chat] discarding model answer: %v", err)
		return types.ChatAnswer{Answer: FallbackChatAnswer}
	}

	var answer types.ChatAnswer
	if err := json.Unmarshal([]byte(clean), &answer); err != nil {
		log.Printf("[chat] failed to unmarshal model answer: %v", err)
		return types.ChatAnswer{Answer: FallbackChatAnswer}
	}
	if answer.Answer == "" {
		answer.Answer = FallbackChatAnswer
	}
	return answer
}
