// Package assist implements the assist-mode recommendation engine: a
// deterministic rule scorer with normalization and tie-break policy, an
// explainability/cue generator, and pluggable classifier backends.
package assist

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Mode is one of the five interaction modes the engine can recommend.
type Mode int

// Declaration order is the canonical ScoreMap key order and the tie-break
// order: first-declared wins on an exact score tie.
const (
	ModeVoice Mode = iota
	ModeSign
	ModeText
	ModeGesture
	ModeMotor

	numModes
)

// Modes lists all modes in canonical order.
var Modes = [numModes]Mode{ModeVoice, ModeSign, ModeText, ModeGesture, ModeMotor}

var modeNames = [numModes]string{"voice", "sign", "text", "gesture", "motor"}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode maps a mode identifier back to its Mode. Unknown identifiers
// report ok=false.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return 0, false
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	mode, ok := ParseMode(name)
	if !ok {
		return fmt.Errorf("unknown assist mode %q", name)
	}
	*m = mode
	return nil
}

// ScoreMap holds one score per mode, indexed by Mode. It always carries
// exactly the five modes; scores are in [0,1] after normalization.
type ScoreMap [numModes]float64

// Get returns the score for a mode. Out-of-range modes score zero.
func (s ScoreMap) Get(m Mode) float64 {
	if m < 0 || m >= numModes {
		return 0
	}
	return s[m]
}

// Max returns the highest score in the map.
func (s ScoreMap) Max() float64 {
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Top returns the highest-scoring mode, breaking exact ties by declaration
// order.
func (s ScoreMap) Top() Mode {
	top := ModeVoice
	for _, m := range Modes {
		if s[m] > s[top] {
			top = m
		}
	}
	return top
}

// MarshalJSON emits an object keyed by mode name in canonical order.
func (s ScoreMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range Modes {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", m.String())
		val, err := json.Marshal(s[m])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *ScoreMap) UnmarshalJSON(data []byte) error {
	raw := make(map[string]float64, numModes)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, v := range raw {
		if m, ok := ParseMode(name); ok {
			s[m] = v
		}
	}
	return nil
}
