package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model is the inference contract consumed by the serving path: a class
// index plus a per-class probability vector for a dense feature vector.
type Model interface {
	Predict(features []float64) (int, []float64, error)
}

// artifactVersion is bumped whenever the persisted layout changes.
const artifactVersion = 1

const modelTypeForest = "forest"

// modelArtifact is the on-disk envelope for a persisted model.
type modelArtifact struct {
	Version int     `json:"version"`
	Type    string  `json:"type"`
	Forest  *Forest `json:"forest,omitempty"`
}

// Save persists the forest to path as a versioned artifact.
func (f *Forest) Save(path string) error {
	if len(f.Trees) == 0 {
		return fmt.Errorf("model not trained")
	}
	payload, err := json.Marshal(modelArtifact{
		Version: artifactVersion,
		Type:    modelTypeForest,
		Forest:  f,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// LoadModel reads a persisted model artifact. Unsupported types, version
// mismatches, and unreadable files all surface as errors so callers can
// degrade to the rule-based path.
func LoadModel(modelType, path string) (Model, error) {
	switch modelType {
	case modelTypeForest, "":
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var artifact modelArtifact
		if err := json.Unmarshal(payload, &artifact); err != nil {
			return nil, fmt.Errorf("corrupt model artifact: %w", err)
		}
		if artifact.Version != artifactVersion {
			return nil, fmt.Errorf("unsupported model version %d", artifact.Version)
		}
		if artifact.Type != modelTypeForest || artifact.Forest == nil {
			return nil, fmt.Errorf("unexpected model type %q", artifact.Type)
		}
		if len(artifact.Forest.Trees) == 0 || artifact.Forest.Classes <= 0 {
			return nil, fmt.Errorf("empty model artifact")
		}
		return artifact.Forest, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", modelType)
	}
}
