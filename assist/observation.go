package assist

import "encoding/json"

// GazePattern classifies gaze behavior observed during a scan. The zero
// value means the signal was absent.
type GazePattern string

const (
	GazeAbsent       GazePattern = ""
	GazeNormal       GazePattern = "normal"
	GazeLow          GazePattern = "low"
	GazeInconsistent GazePattern = "inconsistent"
)

// Posture classifies the observed body position.
type Posture string

const (
	PostureAbsent          Posture = ""
	PostureSeated          Posture = "seated"
	PostureStanding        Posture = "standing"
	PostureWheelchair      Posture = "wheelchair"
	PostureAssistiveDevice Posture = "assistive_device"
)

// InteractionBehavior classifies how the user interacted during the scan.
type InteractionBehavior string

const (
	BehaviorAbsent          InteractionBehavior = ""
	BehaviorVoice           InteractionBehavior = "voice"
	BehaviorText            InteractionBehavior = "text"
	BehaviorGesture         InteractionBehavior = "gesture"
	BehaviorLimitedMobility InteractionBehavior = "limited_mobility"
)

// Observation is one normalized snapshot of behavioral/visual signals,
// built once per classification call and never mutated. Missing or
// malformed fields take their zero value; decoding never fails.
type Observation struct {
	HandSignFreq        float64             `json:"handSignFreq"`
	SpeechDetected      bool                `json:"speechDetected"`
	GazePattern         GazePattern         `json:"gazePattern,omitempty"`
	Posture             Posture             `json:"posture,omitempty"`
	InteractionBehavior InteractionBehavior `json:"interactionBehavior,omitempty"`
}

// ObservationFromMap coerces a loose key/value payload into an Observation.
// Wrong-typed values and unknown enum identifiers fall back to the field
// default rather than erroring.
func ObservationFromMap(raw map[string]interface{}) Observation {
	var obs Observation
	if v, ok := raw["handSignFreq"]; ok {
		obs.HandSignFreq = coerceFloat(v)
	}
	if v, ok := raw["speechDetected"]; ok {
		obs.SpeechDetected = coerceBool(v)
	}
	obs.GazePattern = parseGaze(coerceString(raw["gazePattern"]))
	obs.Posture = parsePosture(coerceString(raw["posture"]))
	obs.InteractionBehavior = parseBehavior(coerceString(raw["interactionBehavior"]))
	return obs
}

// UnmarshalJSON decodes laxly: anything that is not a well-formed value for
// a known field is treated as absent.
func (o *Observation) UnmarshalJSON(data []byte) error {
	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		*o = Observation{}
		return nil
	}
	*o = ObservationFromMap(raw)
	return nil
}

func parseGaze(s string) GazePattern {
	switch GazePattern(s) {
	case GazeNormal, GazeLow, GazeInconsistent:
		return GazePattern(s)
	}
	return GazeAbsent
}

func parsePosture(s string) Posture {
	switch Posture(s) {
	case PostureSeated, PostureStanding, PostureWheelchair, PostureAssistiveDevice:
		return Posture(s)
	}
	return PostureAbsent
}

func parseBehavior(s string) InteractionBehavior {
	switch InteractionBehavior(s) {
	case BehaviorVoice, BehaviorText, BehaviorGesture, BehaviorLimitedMobility:
		return InteractionBehavior(s)
	}
	return BehaviorAbsent
}

func coerceFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func coerceBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func coerceString(v interface{}) string {
	s, _ := v.(string)
	return s
}
