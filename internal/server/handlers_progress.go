package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerpath/careerpath-ai/internal/db"
	"github.com/careerpath/careerpath-ai/internal/server/middleware"
)

// ProgressRequest is the payload for saving topic progress.
type ProgressRequest struct {
	Topic     string `json:"topic"`
	Completed bool   `json:"completed"`
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := s.db.ListProgress(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	if records == nil {
		records = []db.Progress{}
	}

	s.jsonResponse(w, http.StatusOK, records)
}

func (s *Server) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Topic == "" {
		s.errorResponse(w, http.StatusBadRequest, "Topic is required")
		return
	}

	progress, err := s.db.UpsertProgress(r.Context(), userID, req.Topic, req.Completed)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":  "Progress saved",
		"progress": progress,
	})
}

// handleUpdateProgress marks a topic as read/unread. The topic comes from the
// path; writes are upserts so marking an unseen topic is valid.
func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	topic := r.PathValue("topic")
	if topic == "" {
		s.errorResponse(w, http.StatusBadRequest, "Topic is required")
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	progress, err := s.db.UpsertProgress(r.Context(), userID, topic, req.Completed)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update progress")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":  "Progress updated successfully",
		"progress": progress,
	})
}
