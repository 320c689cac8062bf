package assist

// weakSignalCutoff is the post-normalization maximum below which the engine
// falls back to a text recommendation instead of surfacing noise.
const weakSignalCutoff = 0.3

// normalize rescales raw scores into [0,1] against the current maximum.
// When all scores are zero they stay zero. If the normalized maximum is
// still below the weak-signal cutoff, text is forced to 0.5 so every scan
// yields a usable recommendation.
func normalize(scores ScoreMap) ScoreMap {
	max := scores.Max()
	if max > 0 {
		for i := range scores {
			scores[i] = scores[i] / max
			if scores[i] > 1.0 {
				scores[i] = 1.0
			}
		}
	}
	if scores.Max() < weakSignalCutoff {
		scores[ModeText] = 0.5
	}
	return scores
}
