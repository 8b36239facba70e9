package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/careerpath/careerpath-ai/internal/db"
	"github.com/careerpath/careerpath-ai/internal/server/middleware"
)

// GoalRequest is the create/update payload for a goal.
type GoalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Completed   bool       `json:"completed"`
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := s.db.ListGoals(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}
	if goals == nil {
		goals = []db.Goal{}
	}

	s.jsonResponse(w, http.StatusOK, goals)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, err := s.db.CreateGoal(r.Context(), userID, req.Title, req.Description, req.TargetDate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add goal")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"message": "Goal added successfully",
		"id":      id.String(),
	})
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	if err := s.db.UpdateGoal(r.Context(), goalID, userID, req.Title, req.Description, req.TargetDate, req.Completed); err != nil {
		if err.Error() == "goal not found: "+goalID.String() {
			s.errorResponse(w, http.StatusNotFound, "Goal not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	if err := s.db.DeleteGoal(r.Context(), goalID, userID); err != nil {
		if err.Error() == "goal not found: "+goalID.String() {
			s.errorResponse(w, http.StatusNotFound, "Goal not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
