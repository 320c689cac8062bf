package assist

import (
	"path/filepath"
	"testing"

	"inclusiveai/ml"
)

// Trains a small forest and exercises the loaded statistical path.
func TestModelBackendWithTrainedModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assist.model")
	if _, err := ml.Train(ml.TrainConfig{
		Samples:   800,
		Seed:      42,
		Trees:     15,
		MaxDepth:  8,
		TestRatio: 0.2,
		ModelPath: path,
	}); err != nil {
		t.Fatalf("training failed: %v", err)
	}

	backend := NewModelBackend("forest", path, nil)
	if !backend.Ready() {
		t.Fatal("expected backend to be ready")
	}
	if backend.Name() != "statistical" {
		t.Fatalf("expected loaded backend, got %q", backend.Name())
	}

	// High signing frequency dominates the training labels.
	rec := backend.Classify(Observation{HandSignFreq: 6.5})
	if rec.Mode != ModeSign {
		t.Fatalf("expected sign, got %s", rec.Mode)
	}
	if rec.Confidence != rec.Scores.Get(rec.Mode) {
		t.Fatalf("confidence %v != scores[%s] %v", rec.Confidence, rec.Mode, rec.Scores.Get(rec.Mode))
	}
	if len(rec.Cues) != 1 {
		t.Fatalf("statistical path should emit one generic cue, got %v", rec.Cues)
	}
	for _, m := range Modes {
		if score := rec.Scores.Get(m); score < 0 || score > 1 {
			t.Fatalf("score for %s out of range: %v", m, score)
		}
	}
}
