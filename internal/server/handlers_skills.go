package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/careerpath/careerpath-ai/internal/db"
	"github.com/careerpath/careerpath-ai/internal/server/middleware"
)

// SkillRequest is the create/update payload for a skill.
type SkillRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	skills, err := s.db.ListSkills(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	if skills == nil {
		skills = []db.Skill{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Level == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name and Level are required")
		return
	}

	id, err := s.db.CreateSkill(r.Context(), userID, req.Name, req.Level)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add skill")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"message": "Skill added successfully",
		"id":      id.String(),
	})
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	skillID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Level == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name and Level are required")
		return
	}

	if err := s.db.UpdateSkill(r.Context(), skillID, userID, req.Name, req.Level); err != nil {
		if err.Error() == "skill not found: "+skillID.String() {
			s.errorResponse(w, http.StatusNotFound, "Skill not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update skill")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	skillID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	if err := s.db.DeleteSkill(r.Context(), skillID, userID); err != nil {
		if err.Error() == "skill not found: "+skillID.String() {
			s.errorResponse(w, http.StatusNotFound, "Skill not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete skill")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
