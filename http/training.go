package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"inclusiveai/db"
	"inclusiveai/ml"
)

// trainingRequest overrides the configured training defaults for one run.
type trainingRequest struct {
	Samples   int     `json:"samples"`
	Seed      int64   `json:"seed"`
	Trees     int     `json:"trees"`
	MaxDepth  int     `json:"max_depth"`
	TestRatio float64 `json:"test_ratio"`
}

// handleTraining runs the offline trainer against the configured artifact
// path. Only one run may be in flight at a time; the freshly trained model
// is picked up on the next backend construction, never hot-swapped into
// the serving path.
func (s *Server) handleTraining(w http.ResponseWriter, r *http.Request) {
	if s.config.ModelPath == "" {
		writeError(w, http.StatusServiceUnavailable, "no model path configured")
		return
	}

	var req trainingRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	s.trainMu.Lock()
	if s.trainBusy {
		s.trainMu.Unlock()
		writeError(w, http.StatusConflict, "training already in progress")
		return
	}
	s.trainBusy = true
	s.trainMu.Unlock()

	defer func() {
		s.trainMu.Lock()
		s.trainBusy = false
		s.trainMu.Unlock()
	}()

	cfg := s.config.Training
	cfg.ModelPath = s.config.ModelPath
	if req.Samples > 0 {
		cfg.Samples = req.Samples
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if req.Trees > 0 {
		cfg.Trees = req.Trees
	}
	if req.MaxDepth > 0 {
		cfg.MaxDepth = req.MaxDepth
	}
	if req.TestRatio > 0 && req.TestRatio < 1 {
		cfg.TestRatio = req.TestRatio
	}

	report, err := ml.Train(cfg)
	if err != nil {
		s.logger.Error("training run failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "training failed: "+err.Error())
		return
	}

	s.logger.Info("training run complete",
		zap.Int("samples", report.Samples),
		zap.Float64("accuracy", report.Accuracy),
		zap.String("model_path", report.ModelPath))

	if err := db.LogTrainingRun(db.TrainingRun{
		ModelPath: report.ModelPath,
		Samples:   report.Samples,
		Accuracy:  report.Accuracy,
	}); err != nil {
		s.logger.Error("failed to log training run", zap.Error(err))
	}

	s.trainMu.Lock()
	s.lastReport = report
	s.trainMu.Unlock()

	s.hub.Publish(EventTrainingComplete, report)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleTrainingStatus(w http.ResponseWriter, r *http.Request) {
	s.trainMu.Lock()
	busy := s.trainBusy
	report := s.lastReport
	s.trainMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"in_progress": busy,
		"last_report": report,
	})
}
