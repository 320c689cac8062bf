package main

import (
	"flag"
	"fmt"
	"log"

	"inclusiveai/ml"
)

func main() {
	samples := flag.Int("samples", 1000, "number of synthetic samples")
	seed := flag.Int64("seed", 42, "random seed")
	trees := flag.Int("trees", 25, "number of trees in the forest")
	maxDepth := flag.Int("max_depth", 8, "max tree depth")
	testRatio := flag.Float64("test_ratio", 0.2, "test ratio")
	modelPath := flag.String("model_path", "./models/assist_forest.model", "model output path")
	flag.Parse()

	report, err := ml.Train(ml.TrainConfig{
		Samples:   *samples,
		Seed:      *seed,
		Trees:     *trees,
		MaxDepth:  *maxDepth,
		TestRatio: *testRatio,
		ModelPath: *modelPath,
	})
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	log.Printf("trained on %d samples (train=%d test=%d) accuracy=%.2f",
		report.Samples, report.TrainSize, report.TestSize, report.Accuracy)
	fmt.Printf("model saved to %s\n", report.ModelPath)
}
