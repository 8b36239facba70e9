package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/careerpath/careerpath-ai/internal/recommend"
	"github.com/careerpath/careerpath-ai/internal/server/middleware"
	"github.com/careerpath/careerpath-ai/internal/types"
)

// Recommender is the recommendation core consumed by the HTTP layer.
type Recommender interface {
	Generate(ctx context.Context, userID uuid.UUID) (*types.RecommendationResult, error)
	Answer(ctx context.Context, question string) (*types.ChatAnswer, error)
}

// Upper bounds on model-backed request handling. Hitting one is treated the
// same as any other upstream failure.
const (
	recommendationTimeout = 120 * time.Second
	chatTimeout           = 60 * time.Second
)

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendationTimeout)
	defer cancel()

	result, err := s.recommender.Generate(ctx, userID)
	if err != nil {
		log.Printf("[recommend] generation failed for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "AI recommendation failed")
		return
	}

	// History is best-effort; a failed write never blocks the response.
	if s.db != nil {
		if _, err := s.db.SaveRecommendation(r.Context(), userID, result); err != nil {
			log.Printf("[recommend] failed to persist result for user %s: %v", userID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// RecommendationHistoryItem is one past result in the history listing.
type RecommendationHistoryItem struct {
	ID        uuid.UUID                  `json:"id"`
	CreatedAt time.Time                  `json:"created_at"`
	Result    types.RecommendationResult `json:"result"`
}

func (s *Server) handleRecommendationHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recs, err := s.db.ListRecommendations(r.Context(), userID, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	items := make([]RecommendationHistoryItem, 0, len(recs))
	for _, rec := range recs {
		var result types.RecommendationResult
		if err := json.Unmarshal(rec.Content, &result); err != nil {
			log.Printf("[recommend] skipping unreadable history entry %s: %v", rec.ID, err)
			continue
		}
		items = append(items, RecommendationHistoryItem{
			ID:        rec.ID,
			CreatedAt: rec.CreatedAt,
			Result:    result,
		})
	}

	s.jsonResponse(w, http.StatusOK, items)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), chatTimeout)
	defer cancel()

	answer, err := s.recommender.Answer(ctx, req.Question)
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyQuestion) {
			s.errorResponse(w, http.StatusBadRequest, "Question is required")
			return
		}
		log.Printf("[chat] answer failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Chatbot failed, try again.")
		return
	}

	s.jsonResponse(w, http.StatusOK, answer)
}
