package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "inclusiveai-db")
	if err != nil {
		panic(err)
	}
	if err := InitDB(filepath.Join(dir, "test.db")); err != nil {
		panic(err)
	}

	code := m.Run()

	Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestPreferencesRoundTrip(t *testing.T) {
	pref := Preference{
		UserID:              "user-1",
		AssistMode:          "sign",
		Source:              "camera_recommendation",
		Confidence:          0.92,
		Preferences:         `{"font_size":"large"}`,
		CompletedOnboarding: true,
	}
	if err := SavePreferences(pref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := GetPreferences("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssistMode != "sign" || got.Confidence != 0.92 || !got.CompletedOnboarding {
		t.Fatalf("unexpected preference: %+v", got)
	}

	// Saving again must update in place, not duplicate.
	pref.AssistMode = "voice"
	pref.Source = "manual_selection"
	if err := SavePreferences(pref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = GetPreferences("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssistMode != "voice" || got.Source != "manual_selection" {
		t.Fatalf("update did not apply: %+v", got)
	}
}

func TestGetPreferencesNotFound(t *testing.T) {
	_, err := GetPreferences("no-such-user")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePreferences(t *testing.T) {
	if err := SavePreferences(Preference{UserID: "user-2", AssistMode: "text", Source: "manual_selection"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := DeletePreferences("user-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := GetPreferences("user-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestScanRecords(t *testing.T) {
	record := ScanRecord{
		UserID:         "user-3",
		Features:       `{"handSignFreq":6.5}`,
		Recommendation: `{"mode":"sign"}`,
	}
	if err := SaveScanRecord(record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SaveScanRecord(record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := RecentScans("user-3", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Features != record.Features {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestUsageStats(t *testing.T) {
	if err := SavePreferences(Preference{UserID: "stats-1", AssistMode: "motor", Source: "manual_selection"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := GetUsageStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalUsers == 0 {
		t.Fatal("expected at least one user")
	}
	if stats.ModeDistribution["motor"] == 0 {
		t.Fatalf("expected motor in distribution: %+v", stats.ModeDistribution)
	}
}

func TestConsentAndTrainingLog(t *testing.T) {
	if err := SaveConsent("user-4", "camera_usage", true, "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := LogTrainingRun(TrainingRun{ModelPath: "./m.model", Samples: 1000, Accuracy: 0.91}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
