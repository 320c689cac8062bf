package ml

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTrainPersistsModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "assist.model")
	report, err := Train(TrainConfig{
		Samples:   600,
		Seed:      42,
		Trees:     10,
		MaxDepth:  8,
		TestRatio: 0.2,
		ModelPath: path,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TrainSize+report.TestSize != 600 {
		t.Fatalf("split sizes do not add up: %+v", report)
	}
	if report.TestSize != 120 {
		t.Fatalf("expected 20%% test split, got %d", report.TestSize)
	}
	// The labels are a deterministic function of the features, so even a
	// small forest should clear this comfortably.
	if report.Accuracy < 0.5 {
		t.Fatalf("accuracy suspiciously low: %v", report.Accuracy)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("model artifact not written: %v", err)
	}
	if _, err := LoadModel("forest", path); err != nil {
		t.Fatalf("persisted model not loadable: %v", err)
	}
}

func TestTrainIsReproducible(t *testing.T) {
	dir := t.TempDir()
	first, err := Train(TrainConfig{Samples: 300, Seed: 7, Trees: 5, MaxDepth: 6, ModelPath: filepath.Join(dir, "a.model")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Train(TrainConfig{Samples: 300, Seed: 7, Trees: 5, MaxDepth: 6, ModelPath: filepath.Join(dir, "b.model")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Accuracy != second.Accuracy {
		t.Fatalf("same seed should give same accuracy: %v vs %v", first.Accuracy, second.Accuracy)
	}
}

func TestTrainRequiresModelPath(t *testing.T) {
	if _, err := Train(TrainConfig{Samples: 10}); err == nil {
		t.Fatal("expected error without model path")
	}
}
