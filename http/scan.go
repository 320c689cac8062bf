package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"inclusiveai/assist"
	"inclusiveai/db"
)

// scanRequest carries one scan's extracted features. The observation field
// decodes laxly: malformed values fall back to defaults.
type scanRequest struct {
	Features assist.Observation `json:"features"`
	Duration int                `json:"duration"`
	UserID   string             `json:"user_id"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Duration <= 0 {
		req.Duration = 20
	}
	if req.Duration > 60 {
		req.Duration = 60
	}

	key := observationKey(req.Features)
	rec, cached := s.scanCache.Get(key)
	if !cached {
		rec = s.backend.Classify(req.Features)
		s.scanCache.Add(key, rec)
	}

	if req.UserID != "" {
		features, _ := json.Marshal(req.Features)
		recommendation, _ := json.Marshal(rec)
		if err := db.SaveScanRecord(db.ScanRecord{
			UserID:         req.UserID,
			Features:       string(features),
			Recommendation: string(recommendation),
		}); err != nil {
			s.logger.Error("failed to store scan record",
				zap.String("user_id", req.UserID), zap.Error(err))
		}
	}

	s.hub.Publish(EventScanResult, map[string]interface{}{
		"mode":       rec.Mode.String(),
		"confidence": rec.Confidence,
		"cached":     cached,
	})

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleScanHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "healthy",
		"service":           "assist_scan",
		"classifier_loaded": s.backend.Ready(),
		"backend":           s.backend.Name(),
	})
}

// observationKey fingerprints an observation for the scan cache.
func observationKey(obs assist.Observation) string {
	return fmt.Sprintf("%.4f|%t|%s|%s|%s",
		obs.HandSignFreq, obs.SpeechDetected, obs.GazePattern, obs.Posture, obs.InteractionBehavior)
}
