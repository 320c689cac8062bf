package ml

import (
	"errors"
	"math/rand"
)

// ForestConfig controls ensemble training.
type ForestConfig struct {
	Trees    int
	MaxDepth int
	Seed     int64
}

// DefaultForestConfig mirrors the trainer defaults.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:    25,
		MaxDepth: 8,
		Seed:     42,
	}
}

// Forest is a bagged ensemble of decision trees. Prediction averages the
// leaf class distributions of all trees.
type Forest struct {
	Trees   []DecisionTree `json:"trees"`
	Classes int            `json:"classes"`
}

// TrainForest fits a forest on bootstrap samples of the training set. Given
// the same data, config, and seed the result is identical run to run.
func TrainForest(features [][]float64, labels []int, classes int, cfg ForestConfig) (*Forest, error) {
	if len(features) == 0 || len(labels) == 0 {
		return nil, errors.New("features or labels empty")
	}
	if len(features) != len(labels) {
		return nil, errors.New("features and labels size mismatch")
	}
	if classes <= 0 {
		return nil, errors.New("classes must be positive")
	}
	if cfg.Trees <= 0 {
		cfg.Trees = DefaultForestConfig().Trees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultForestConfig().MaxDepth
	}

	rnd := rand.New(rand.NewSource(cfg.Seed))
	forest := &Forest{
		Trees:   make([]DecisionTree, 0, cfg.Trees),
		Classes: classes,
	}
	n := len(features)
	for t := 0; t < cfg.Trees; t++ {
		sampleX := make([][]float64, n)
		sampleY := make([]int, n)
		for i := 0; i < n; i++ {
			idx := rnd.Intn(n)
			sampleX[i] = features[idx]
			sampleY[i] = labels[idx]
		}
		var tree DecisionTree
		if err := tree.Train(sampleX, sampleY, classes, cfg.MaxDepth); err != nil {
			return nil, err
		}
		forest.Trees = append(forest.Trees, tree)
	}
	return forest, nil
}

// Predict returns the winning class index and the averaged per-class
// probability vector. Probability ties resolve to the lowest class index.
func (f *Forest) Predict(features []float64) (int, []float64, error) {
	if len(f.Trees) == 0 {
		return 0, nil, errors.New("model not trained")
	}
	probs := make([]float64, f.Classes)
	for i := range f.Trees {
		dist, err := f.Trees[i].ClassDistribution(features)
		if err != nil {
			return 0, nil, err
		}
		for c, p := range dist {
			probs[c] += p
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}

	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return best, probs, nil
}
