package assist

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTopFeaturesOrderAndTies(t *testing.T) {
	scores := ScoreMap{}
	scores[ModeSign] = 1.0
	scores[ModeGesture] = 0.4
	scores[ModeText] = 0.4

	top := topFeatures(scores)
	if len(top) != 3 {
		t.Fatalf("expected 3 features, got %d", len(top))
	}
	if top[0].Mode != ModeSign {
		t.Fatalf("expected sign first, got %s", top[0].Mode)
	}
	// text is declared before gesture, so it wins the 0.4 tie.
	if top[1].Mode != ModeText || top[2].Mode != ModeGesture {
		t.Fatalf("tie broken wrong: %s, %s", top[1].Mode, top[2].Mode)
	}
}

func TestReasoningLadder(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.9, "Strong recommendation"},
		{0.71, "Strong recommendation"},
		{0.7, "Moderate recommendation"},
		{0.51, "Moderate recommendation"},
		{0.5, "Weak recommendation"},
		{0.0, "Weak recommendation"},
	}
	for _, tc := range cases {
		got := reasoning(ModeVoice, tc.score)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("score %v: expected prefix %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestFeatureScoreSerializesAsPair(t *testing.T) {
	payload, err := json.Marshal(FeatureScore{Mode: ModeSign, Score: 0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `["sign",0.9]` {
		t.Fatalf("unexpected encoding: %s", payload)
	}

	var decoded FeatureScore
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Mode != ModeSign || decoded.Score != 0.9 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestScoreMapSerializesInCanonicalOrder(t *testing.T) {
	scores := ScoreMap{}
	scores[ModeMotor] = 1.0
	payload, err := json.Marshal(scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"voice":0,"sign":0,"text":0,"gesture":0,"motor":1}`
	if string(payload) != want {
		t.Fatalf("expected %s, got %s", want, payload)
	}
}

func TestGenericFallbackCue(t *testing.T) {
	// A gesture recommendation with no gesture predicates held.
	cues := generateCues(ModeGesture, Observation{})
	if len(cues) != 1 || cues[0] != fallbackCue {
		t.Fatalf("expected generic fallback cue, got %v", cues)
	}
}

func TestCueCap(t *testing.T) {
	cues := generateCues(ModeVoice, Observation{
		SpeechDetected:      true,
		GazePattern:         GazeLow,
		InteractionBehavior: BehaviorVoice,
	})
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d: %v", len(cues), cues)
	}
}
