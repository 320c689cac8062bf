package assist

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestRuleBackendScenarioSign(t *testing.T) {
	backend := NewRuleBackend()
	rec := backend.Classify(Observation{
		HandSignFreq: 6.5,
		GazePattern:  GazeNormal,
		Posture:      PostureSeated,
	})

	if rec.Mode != ModeSign {
		t.Fatalf("expected sign, got %s", rec.Mode)
	}
	if rec.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", rec.Confidence)
	}
	if len(rec.Cues) == 0 || rec.Cues[0] != "Detected repeated hand-signing gestures (frequency: 6.5)" {
		t.Fatalf("unexpected cues: %v", rec.Cues)
	}
}

func TestRuleBackendScenarioVoice(t *testing.T) {
	backend := NewRuleBackend()
	rec := backend.Classify(Observation{
		SpeechDetected: true,
		GazePattern:    GazeLow,
	})

	if rec.Mode != ModeVoice {
		t.Fatalf("expected voice, got %s", rec.Mode)
	}
	if rec.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", rec.Confidence)
	}
}

func TestRuleBackendScenarioMotor(t *testing.T) {
	backend := NewRuleBackend()
	rec := backend.Classify(Observation{
		Posture:             PostureWheelchair,
		InteractionBehavior: BehaviorLimitedMobility,
	})

	if rec.Mode != ModeMotor {
		t.Fatalf("expected motor, got %s", rec.Mode)
	}
	if rec.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", rec.Confidence)
	}
}

func TestRuleBackendWeakSignalDefaultsToText(t *testing.T) {
	backend := NewRuleBackend()
	rec := backend.Classify(Observation{})

	if rec.Mode != ModeText {
		t.Fatalf("expected text, got %s", rec.Mode)
	}
	if rec.Scores.Get(ModeText) != 0.5 {
		t.Fatalf("expected text score 0.5, got %v", rec.Scores.Get(ModeText))
	}
	if rec.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %v", rec.Confidence)
	}
}

func TestRecommendationInvariants(t *testing.T) {
	backend := NewRuleBackend()
	observations := []Observation{
		{},
		{HandSignFreq: 10, SpeechDetected: true, GazePattern: GazeLow, Posture: PostureWheelchair, InteractionBehavior: BehaviorLimitedMobility},
		{HandSignFreq: 2.5, Posture: PostureSeated},
		{SpeechDetected: true, InteractionBehavior: BehaviorVoice},
		{HandSignFreq: 0.5, InteractionBehavior: BehaviorText},
	}

	for _, obs := range observations {
		rec := backend.Classify(obs)
		for _, m := range Modes {
			if score := rec.Scores.Get(m); score < 0 || score > 1 {
				t.Fatalf("%+v: score for %s out of range: %v", obs, m, score)
			}
		}
		if rec.Confidence != rec.Scores.Get(rec.Mode) {
			t.Fatalf("%+v: confidence %v != scores[%s] %v", obs, rec.Confidence, rec.Mode, rec.Scores.Get(rec.Mode))
		}
		if len(rec.Cues) == 0 || len(rec.Cues) > 3 {
			t.Fatalf("%+v: cue count out of range: %d", obs, len(rec.Cues))
		}
		if len(rec.Explainability.TopFeatures) != 3 {
			t.Fatalf("%+v: expected 3 top features, got %d", obs, len(rec.Explainability.TopFeatures))
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	backend := NewRuleBackend()
	obs := Observation{HandSignFreq: 4.2, Posture: PostureSeated}

	first := backend.Classify(obs)
	second := backend.Classify(obs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classification not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestModelBackendMissingArtifactFallsBack(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.model")
	backend := NewModelBackend("forest", missing, nil)

	if !backend.Ready() {
		t.Fatal("degraded backend must still report ready")
	}

	rule := NewRuleBackend()
	observations := []Observation{
		{},
		{HandSignFreq: 6.5, GazePattern: GazeNormal, Posture: PostureSeated},
		{SpeechDetected: true, GazePattern: GazeLow},
		{Posture: PostureWheelchair, InteractionBehavior: BehaviorLimitedMobility},
	}
	for _, obs := range observations {
		got := backend.Classify(obs)
		want := rule.Classify(obs)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("fallback diverged from rule backend for %+v:\n got %+v\nwant %+v", obs, got, want)
		}
	}
}

func TestFeatureVectorLayout(t *testing.T) {
	vec := featureVector(Observation{
		HandSignFreq:        4.5,
		SpeechDetected:      true,
		GazePattern:         GazeLow,
		Posture:             PostureWheelchair,
		InteractionBehavior: BehaviorVoice,
	})
	want := []float64{4.5, 1, 1, 1, 1}
	if !reflect.DeepEqual(vec, want) {
		t.Fatalf("expected %v, got %v", want, vec)
	}

	// Only the specific enum values map to 1.
	vec = featureVector(Observation{
		GazePattern:         GazeInconsistent,
		Posture:             PostureSeated,
		InteractionBehavior: BehaviorText,
	})
	want = []float64{0, 0, 0, 0, 0}
	if !reflect.DeepEqual(vec, want) {
		t.Fatalf("expected %v, got %v", want, vec)
	}
}
