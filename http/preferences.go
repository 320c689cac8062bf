package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"inclusiveai/assist"
	"inclusiveai/db"
)

// preferenceRequest mirrors the onboarding flow: either a camera
// recommendation or a manual selection.
type preferenceRequest struct {
	UserID              string          `json:"user_id"`
	AssistMode          string          `json:"assist_mode"`
	Source              string          `json:"source"`
	Confidence          float64         `json:"confidence"`
	Preferences         json.RawMessage `json:"preferences"`
	CompletedOnboarding *bool           `json:"completed_onboarding"`
}

func (s *Server) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := assist.ParseMode(req.AssistMode); !ok {
		writeError(w, http.StatusBadRequest, "invalid assist_mode")
		return
	}
	if req.Source != "camera_recommendation" && req.Source != "manual_selection" {
		writeError(w, http.StatusBadRequest, "invalid source")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}
	completed := true
	if req.CompletedOnboarding != nil {
		completed = *req.CompletedOnboarding
	}

	pref := db.Preference{
		UserID:              userID,
		AssistMode:          req.AssistMode,
		Source:              req.Source,
		Confidence:          req.Confidence,
		Preferences:         string(req.Preferences),
		CompletedOnboarding: completed,
	}
	if err := db.SavePreferences(pref); err != nil {
		writeError(w, http.StatusInternalServerError, "error saving preferences")
		return
	}

	saved, err := db.GetPreferences(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error saving preferences")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	pref, err := db.GetPreferences(userID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "preferences not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error getting preferences")
		return
	}
	writeJSON(w, http.StatusOK, pref)
}

func (s *Server) handleDeletePreferences(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if err := db.DeletePreferences(userID); err != nil {
		writeError(w, http.StatusInternalServerError, "error deleting preferences")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Preferences deleted successfully"})
}
