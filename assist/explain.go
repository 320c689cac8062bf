package assist

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FeatureScore pairs a mode with its score for the explainability ranking.
// It serializes as a two-element array, e.g. ["sign",0.9].
type FeatureScore struct {
	Mode  Mode
	Score float64
}

func (f FeatureScore) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{f.Mode.String(), f.Score})
}

func (f *FeatureScore) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &f.Mode); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &f.Score)
}

// Explainability carries the ranked mode scores and a qualitative reasoning
// string for the recommendation.
type Explainability struct {
	TopFeatures []FeatureScore `json:"top_features"`
	Reasoning   string         `json:"reasoning"`
}

// topFeatures ranks the three highest-scoring modes descending, breaking
// exact ties by declaration order.
func topFeatures(scores ScoreMap) []FeatureScore {
	ranked := make([]FeatureScore, 0, len(Modes))
	for _, m := range Modes {
		ranked = append(ranked, FeatureScore{Mode: m, Score: scores[m]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked[:maxCues]
}

// reasoning maps the winning score onto a qualitative confidence statement.
func reasoning(mode Mode, score float64) string {
	switch {
	case score > 0.7:
		return fmt.Sprintf("Strong recommendation for %s mode based on clear interaction patterns.", mode)
	case score > 0.5:
		return fmt.Sprintf("Moderate recommendation for %s mode. Consider manual selection if unsure.", mode)
	default:
		return "Weak recommendation. Manual selection is recommended."
	}
}

func explain(mode Mode, scores ScoreMap) Explainability {
	return Explainability{
		TopFeatures: topFeatures(scores),
		Reasoning:   reasoning(mode, scores.Get(mode)),
	}
}
