package assist

import (
	"encoding/json"
	"testing"
)

func TestObservationDecodeLaxly(t *testing.T) {
	payload := []byte(`{
		"handSignFreq": 4.5,
		"speechDetected": true,
		"gazePattern": "low",
		"posture": "wheelchair",
		"interactionBehavior": "voice"
	}`)
	var obs Observation
	if err := json.Unmarshal(payload, &obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.HandSignFreq != 4.5 || !obs.SpeechDetected {
		t.Fatalf("numeric/bool fields not decoded: %+v", obs)
	}
	if obs.GazePattern != GazeLow || obs.Posture != PostureWheelchair || obs.InteractionBehavior != BehaviorVoice {
		t.Fatalf("enum fields not decoded: %+v", obs)
	}
}

func TestObservationInvalidEnumsBecomeAbsent(t *testing.T) {
	payload := []byte(`{
		"gazePattern": "sideways",
		"posture": "floating",
		"interactionBehavior": "telepathy"
	}`)
	var obs Observation
	if err := json.Unmarshal(payload, &obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.GazePattern != GazeAbsent || obs.Posture != PostureAbsent || obs.InteractionBehavior != BehaviorAbsent {
		t.Fatalf("invalid enums should be absent: %+v", obs)
	}
}

func TestObservationWrongTypesDefault(t *testing.T) {
	payload := []byte(`{
		"handSignFreq": "fast",
		"speechDetected": "yes",
		"gazePattern": 3,
		"posture": null,
		"extraField": [1,2,3]
	}`)
	var obs Observation
	if err := json.Unmarshal(payload, &obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs != (Observation{}) {
		t.Fatalf("wrong-typed fields should default: %+v", obs)
	}
}

func TestObservationFromMapNulls(t *testing.T) {
	obs := ObservationFromMap(map[string]interface{}{
		"handSignFreq":        6.5,
		"speechDetected":      false,
		"gazePattern":         "normal",
		"posture":             "seated",
		"interactionBehavior": nil,
	})
	if obs.HandSignFreq != 6.5 || obs.GazePattern != GazeNormal || obs.Posture != PostureSeated {
		t.Fatalf("unexpected observation: %+v", obs)
	}
	if obs.InteractionBehavior != BehaviorAbsent {
		t.Fatalf("nil behavior should be absent: %+v", obs)
	}
}
