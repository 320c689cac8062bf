package http

import (
	"net/http"
	"time"

	"inclusiveai/db"
)

func (s *Server) handleUsageReport(w http.ResponseWriter, r *http.Request) {
	stats, err := db.GetUsageStats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error getting usage stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_users":       stats.TotalUsers,
		"mode_distribution": stats.ModeDistribution,
		"total_scans":       stats.TotalScans,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReportsHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "reports",
	})
}
