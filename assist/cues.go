package assist

import "fmt"

const maxCues = 3

// fallbackCue is emitted when no mode-specific predicate held for the
// selected mode.
const fallbackCue = "Based on general interaction patterns"

// generateCues produces up to three human-readable justifications for the
// selected mode, conditioned on the same predicates the scorer used.
func generateCues(mode Mode, obs Observation) []string {
	cues := make([]string, 0, maxCues)

	switch mode {
	case ModeSign:
		if obs.HandSignFreq > 5.0 {
			cues = append(cues, fmt.Sprintf("Detected repeated hand-signing gestures (frequency: %.1f)", obs.HandSignFreq))
		}
		if obs.HandSignFreq > 3.0 {
			cues = append(cues, "Strong indication of sign language preference")
		}
	case ModeVoice:
		if obs.SpeechDetected {
			cues = append(cues, "Speech activity detected during scan")
		}
		if obs.GazePattern == GazeLow || obs.GazePattern == GazeInconsistent {
			cues = append(cues, "Gaze patterns suggest low-vision interaction needs")
		}
		if obs.InteractionBehavior == BehaviorVoice {
			cues = append(cues, "User demonstrated voice command preference")
		}
	case ModeText:
		if !obs.SpeechDetected {
			cues = append(cues, "No speech detected - text-based interface may be preferred")
		}
		if obs.InteractionBehavior == BehaviorText {
			cues = append(cues, "User demonstrated text input preference")
		}
	case ModeGesture:
		if obs.HandSignFreq > 1.0 {
			cues = append(cues, "Hand movement detected - gesture interface may be suitable")
		}
		if obs.Posture == PostureSeated || obs.Posture == PostureWheelchair {
			cues = append(cues, "Posture cues suggest gesture-based interaction")
		}
	case ModeMotor:
		if obs.Posture == PostureWheelchair || obs.Posture == PostureAssistiveDevice {
			cues = append(cues, "Posture/mobility cues suggest motor-adapted interface")
		}
		if obs.InteractionBehavior == BehaviorLimitedMobility {
			cues = append(cues, "Interaction patterns suggest motor adaptation needs")
		}
	}

	if len(cues) == 0 {
		cues = append(cues, fallbackCue)
	}
	if len(cues) > maxCues {
		cues = cues[:maxCues]
	}
	return cues
}

// modelCues are the generic per-mode justifications used on the statistical
// path, where no feature-level reasoning is available.
func modelCues(mode Mode) []string {
	switch mode {
	case ModeVoice:
		return []string{"Model detected voice interaction patterns"}
	case ModeSign:
		return []string{"Model detected sign language patterns"}
	case ModeText:
		return []string{"Model detected text interaction patterns"}
	case ModeGesture:
		return []string{"Model detected gesture interaction patterns"}
	case ModeMotor:
		return []string{"Model detected motor adaptation needs"}
	}
	return []string{fallbackCue}
}
