package assist

// scoreRules computes the unnormalized per-mode scores. Every branch is
// additive and evaluated independently; thresholds are strict (3.0 itself
// contributes nothing to sign).
func scoreRules(obs Observation) ScoreMap {
	var scores ScoreMap

	if obs.HandSignFreq > 3.0 {
		scores[ModeSign] += 0.6
	}
	if obs.HandSignFreq > 5.0 {
		scores[ModeSign] += 0.3
	}
	if obs.HandSignFreq > 7.0 {
		scores[ModeSign] += 0.1
	}

	if obs.SpeechDetected {
		scores[ModeVoice] += 0.4
	}
	if obs.GazePattern == GazeLow || obs.GazePattern == GazeInconsistent {
		scores[ModeVoice] += 0.3
	}
	if obs.InteractionBehavior == BehaviorVoice {
		scores[ModeVoice] += 0.3
	}

	if !obs.SpeechDetected && obs.HandSignFreq < 2.0 {
		scores[ModeText] += 0.5
	}
	if obs.InteractionBehavior == BehaviorText {
		scores[ModeText] += 0.5
	}

	if obs.HandSignFreq > 1.0 && obs.HandSignFreq < 3.0 {
		scores[ModeGesture] += 0.4
	}
	if obs.Posture == PostureSeated || obs.Posture == PostureWheelchair {
		scores[ModeGesture] += 0.3
	}
	if obs.InteractionBehavior == BehaviorGesture {
		scores[ModeGesture] += 0.3
	}

	if obs.Posture == PostureWheelchair || obs.Posture == PostureAssistiveDevice {
		scores[ModeMotor] += 0.5
	}
	if obs.InteractionBehavior == BehaviorLimitedMobility {
		scores[ModeMotor] += 0.5
	}

	return scores
}
