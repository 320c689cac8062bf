package assist

import (
	"go.uber.org/zap"

	"inclusiveai/ml"
)

// Recommendation is the engine's sole output: one per classification call.
type Recommendation struct {
	Mode           Mode           `json:"mode"`
	Confidence     float64        `json:"confidence"`
	Cues           []string       `json:"cues"`
	Scores         ScoreMap       `json:"scores"`
	Explainability Explainability `json:"explainability"`
}

// Backend is the classification strategy in effect. Implementations are
// immutable after construction; Classify is pure and safe for concurrent
// use, and never fails for any observation.
type Backend interface {
	Classify(obs Observation) Recommendation
	Ready() bool
	Name() string
}

// RuleBackend classifies with the deterministic rule table. It is always
// available.
type RuleBackend struct{}

func NewRuleBackend() *RuleBackend {
	return &RuleBackend{}
}

func (b *RuleBackend) Name() string { return "rule" }

func (b *RuleBackend) Ready() bool { return true }

func (b *RuleBackend) Classify(obs Observation) Recommendation {
	scores := normalize(scoreRules(obs))
	mode := scores.Top()
	return Recommendation{
		Mode:           mode,
		Confidence:     scores.Get(mode),
		Cues:           generateCues(mode, obs),
		Scores:         scores,
		Explainability: explain(mode, scores),
	}
}

// labelModes maps statistical class indices back to modes. This is a
// training-time contract fixed by the synthetic label generator and is
// declared independently of the ScoreMap key order.
var labelModes = [...]Mode{ModeVoice, ModeSign, ModeText, ModeGesture, ModeMotor}

// ModelBackend classifies with a persisted statistical model. The model is
// loaded exactly once at construction; if the artifact is missing or
// unreadable the backend logs a warning and delegates every call to an
// embedded RuleBackend instead of failing.
type ModelBackend struct {
	model    ml.Model
	fallback *RuleBackend
	logger   *zap.Logger
}

func NewModelBackend(modelType, path string, logger *zap.Logger) *ModelBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend := &ModelBackend{
		fallback: NewRuleBackend(),
		logger:   logger,
	}
	model, err := ml.LoadModel(modelType, path)
	if err != nil {
		logger.Warn("assist model unavailable, degrading to rule-based classification",
			zap.String("model_type", modelType),
			zap.String("model_path", path),
			zap.Error(err))
		return backend
	}
	backend.model = model
	logger.Info("assist model loaded",
		zap.String("model_type", modelType),
		zap.String("model_path", path))
	return backend
}

func (b *ModelBackend) Name() string {
	if b.model == nil {
		return "statistical (rule fallback)"
	}
	return "statistical"
}

// Ready reports true even in fallback mode: the backend degrades, it does
// not fail.
func (b *ModelBackend) Ready() bool { return true }

func (b *ModelBackend) Classify(obs Observation) Recommendation {
	if b.model == nil {
		return b.fallback.Classify(obs)
	}
	label, probs, err := b.model.Predict(featureVector(obs))
	if err != nil || label < 0 || label >= len(labelModes) || len(probs) != len(labelModes) {
		b.logger.Warn("model prediction failed, using rule-based result", zap.Error(err))
		return b.fallback.Classify(obs)
	}

	var scores ScoreMap
	for i, p := range probs {
		scores[labelModes[i]] = p
	}
	mode := labelModes[label]
	return Recommendation{
		Mode:           mode,
		Confidence:     scores.Get(mode),
		Cues:           modelCues(mode),
		Scores:         scores,
		Explainability: explain(mode, scores),
	}
}

// featureVector flattens an observation into the fixed-order numeric vector
// shared with the trainer.
func featureVector(obs Observation) []float64 {
	vec := make([]float64, 5)
	vec[0] = obs.HandSignFreq
	if obs.SpeechDetected {
		vec[1] = 1
	}
	if obs.GazePattern == GazeLow {
		vec[2] = 1
	}
	if obs.Posture == PostureWheelchair {
		vec[3] = 1
	}
	if obs.InteractionBehavior == BehaviorVoice {
		vec[4] = 1
	}
	return vec
}
