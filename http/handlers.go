package http

import (
	"encoding/json"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"inclusiveai/assist"
)

const serviceVersion = "1.0.0"

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "InclusiveAI API",
		"version": serviceVersion,
		"status":  "operational",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "InclusiveAI Backend",
	})
}

// modePreview describes one assist mode for onboarding screens. The display
// name is the title-cased mode name plus the suffix.
type modePreview struct {
	nameSuffix  string
	Description string   `json:"description"`
	Features    []string `json:"features"`
	DemoURL     string   `json:"demo_url"`
}

var titler = cases.Title(language.English)

var modePreviews = map[assist.Mode]modePreview{
	assist.ModeVoice: {
		nameSuffix:  "-First Interface",
		Description: "Optimized for low-vision and blind users",
		Features:    []string{"Voice commands", "Screen reader", "Audio feedback"},
		DemoURL:     "/demo/voice",
	},
	assist.ModeSign: {
		nameSuffix:  " Language Interface",
		Description: "Optimized for deaf and hard-of-hearing users",
		Features:    []string{"Sign language avatar", "Text chat", "Visual alerts"},
		DemoURL:     "/demo/sign",
	},
	assist.ModeText: {
		nameSuffix:  "-Based Interface",
		Description: "Optimized for hearing-impaired users",
		Features:    []string{"Large text", "Visual indicators", "Text-to-speech"},
		DemoURL:     "/demo/text",
	},
	assist.ModeGesture: {
		nameSuffix:  " Interface",
		Description: "Optimized for motor-impaired users",
		Features:    []string{"Hand gestures", "Touch controls", "Adaptive UI"},
		DemoURL:     "/demo/gesture",
	},
	assist.ModeMotor: {
		nameSuffix:  "-Adapted Interface",
		Description: "Large buttons and switch mode support",
		Features:    []string{"Large buttons", "Switch mode", "Simplified navigation"},
		DemoURL:     "/demo/motor",
	},
}

func (s *Server) handleAssistPreview(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("mode")
	mode, ok := assist.ParseMode(name)
	if !ok {
		writeError(w, http.StatusNotFound, "mode '"+name+"' not found")
		return
	}
	preview := modePreviews[mode]
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mode":        mode.String(),
		"name":        titler.String(mode.String()) + preview.nameSuffix,
		"description": preview.Description,
		"features":    preview.Features,
		"demo_url":    preview.DemoURL,
	})
}
