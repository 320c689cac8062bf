package ml

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
)

// TrainConfig describes one offline training run.
type TrainConfig struct {
	Samples   int
	Seed      int64
	Trees     int
	MaxDepth  int
	TestRatio float64
	ModelPath string
}

// TrainReport summarizes a completed run.
type TrainReport struct {
	Samples   int     `json:"samples"`
	TrainSize int     `json:"train_size"`
	TestSize  int     `json:"test_size"`
	Accuracy  float64 `json:"accuracy"`
	ModelPath string  `json:"model_path"`
}

// Train generates a synthetic labeled set, fits a forest on an 80/20
// split, and persists the artifact to cfg.ModelPath. Runs are reproducible
// for a fixed seed and never touch the serving path.
func Train(cfg TrainConfig) (*TrainReport, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("model path is required")
	}
	if cfg.Samples <= 0 {
		cfg.Samples = 1000
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.TestRatio <= 0 || cfg.TestRatio >= 1 {
		cfg.TestRatio = 0.2
	}

	features, labels := SyntheticSet(cfg.Samples, cfg.Seed)
	trainX, trainY, testX, testY := splitDataset(features, labels, cfg.TestRatio, cfg.Seed)

	forest, err := TrainForest(trainX, trainY, NumAssistClasses, ForestConfig{
		Trees:    cfg.Trees,
		MaxDepth: cfg.MaxDepth,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	correct := 0
	for i, x := range testX {
		label, _, err := forest.Predict(x)
		if err != nil {
			return nil, err
		}
		if label == testY[i] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testY) > 0 {
		accuracy = float64(correct) / float64(len(testY))
	}

	if dir := filepath.Dir(cfg.ModelPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := forest.Save(cfg.ModelPath); err != nil {
		return nil, err
	}

	return &TrainReport{
		Samples:   cfg.Samples,
		TrainSize: len(trainY),
		TestSize:  len(testY),
		Accuracy:  accuracy,
		ModelPath: cfg.ModelPath,
	}, nil
}

func splitDataset(features [][]float64, labels []int, testRatio float64, seed int64) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(len(features))

	split := int(math.Round(float64(len(features)) * (1 - testRatio)))
	for i, idx := range indices {
		if i < split {
			trainX = append(trainX, features[idx])
			trainY = append(trainY, labels[idx])
		} else {
			testX = append(testX, features[idx])
			testY = append(testY, labels[idx])
		}
	}
	return trainX, trainY, testX, testY
}
