package http

import (
	"encoding/json"
	"net/http"
)

// Demo-mode auth shim: accepts any credentials and hands out a fixed
// token, matching the onboarding frontend's expectations.

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID  string `json:"user_id"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

const demoToken = "demo_token"

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	userID := req.Username
	if userID == "" {
		userID = "anonymous"
	}
	writeJSON(w, http.StatusOK, authResponse{
		UserID:  userID,
		Token:   demoToken,
		Message: "Login successful (demo mode)",
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	userID := req.Username
	if userID == "" {
		userID = "anonymous"
	}
	writeJSON(w, http.StatusOK, authResponse{
		UserID:  userID,
		Token:   demoToken,
		Message: "Registration successful (demo mode)",
	})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"user_id": "anonymous",
		"message": "Demo mode - no authentication required",
	})
}
