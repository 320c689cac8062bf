package ml

import (
	"reflect"
	"testing"
)

func TestSyntheticSetShape(t *testing.T) {
	features, labels := SyntheticSet(500, 7)
	if len(features) != 500 || len(labels) != 500 {
		t.Fatalf("expected 500 samples, got %d/%d", len(features), len(labels))
	}
	for i, vec := range features {
		if len(vec) != FeatureDim {
			t.Fatalf("sample %d: expected %d features, got %d", i, FeatureDim, len(vec))
		}
		if vec[0] < 0 || vec[0] > 10 {
			t.Fatalf("sample %d: handSignFreq out of range: %v", i, vec[0])
		}
		for _, b := range vec[1:] {
			if b != 0 && b != 1 {
				t.Fatalf("sample %d: boolean feature not 0/1: %v", i, vec)
			}
		}
	}
}

func TestSyntheticLabelsFollowPriorityRule(t *testing.T) {
	features, labels := SyntheticSet(500, 7)
	for i, vec := range features {
		want := LabelText
		switch {
		case vec[0] > 5:
			want = LabelSign
		case vec[1] == 1 && vec[2] == 1:
			want = LabelVoice
		case vec[3] == 1:
			want = LabelMotor
		case vec[0] > 1:
			want = LabelGesture
		}
		if labels[i] != want {
			t.Fatalf("sample %d %v: expected label %d, got %d", i, vec, want, labels[i])
		}
	}
}

func TestSyntheticSetIsSeeded(t *testing.T) {
	featuresA, labelsA := SyntheticSet(100, 42)
	featuresB, labelsB := SyntheticSet(100, 42)
	if !reflect.DeepEqual(featuresA, featuresB) || !reflect.DeepEqual(labelsA, labelsB) {
		t.Fatal("same seed should produce identical data")
	}

	featuresC, _ := SyntheticSet(100, 43)
	if reflect.DeepEqual(featuresA, featuresC) {
		t.Fatal("different seeds should produce different data")
	}
}
