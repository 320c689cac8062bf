package ml

import "math/rand"

// FeatureDim is the width of the assist feature vector:
// [handSignFreq, speechDetected, gazeLow, wheelchair, voiceBehavior].
const FeatureDim = 5

// NumAssistClasses is the number of assist-mode labels
// (0=voice 1=sign 2=text 3=gesture 4=motor).
const NumAssistClasses = 5

// Assist-mode label indices used by the synthetic generator and the
// serving path alike.
const (
	LabelVoice = iota
	LabelSign
	LabelText
	LabelGesture
	LabelMotor
)

// SyntheticSet generates n labeled samples for training. handSignFreq is
// drawn uniformly from [0,10], the four boolean features uniformly from
// {0,1}. Labels follow a fixed priority rule so the set is fully
// deterministic for a given seed.
func SyntheticSet(n int, seed int64) ([][]float64, []int) {
	rnd := rand.New(rand.NewSource(seed))
	features := make([][]float64, 0, n)
	labels := make([]int, 0, n)

	for i := 0; i < n; i++ {
		handSignFreq := rnd.Float64() * 10
		speechDetected := float64(rnd.Intn(2))
		gazeLow := float64(rnd.Intn(2))
		wheelchair := float64(rnd.Intn(2))
		voiceBehavior := float64(rnd.Intn(2))

		vec := make([]float64, FeatureDim)
		vec[0] = handSignFreq
		vec[1] = speechDetected
		vec[2] = gazeLow
		vec[3] = wheelchair
		vec[4] = voiceBehavior
		features = append(features, vec)
		labels = append(labels, assistLabel(handSignFreq, speechDetected == 1, gazeLow == 1, wheelchair == 1))
	}
	return features, labels
}

// assistLabel applies the priority rule used to label synthetic samples.
func assistLabel(handSignFreq float64, speechDetected, gazeLow, wheelchair bool) int {
	switch {
	case handSignFreq > 5:
		return LabelSign
	case speechDetected && gazeLow:
		return LabelVoice
	case wheelchair:
		return LabelMotor
	case handSignFreq > 1:
		return LabelGesture
	default:
		return LabelText
	}
}
