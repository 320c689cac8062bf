// Package db provides SQLite persistence for scan records, user
// preferences, consent records, and the training log.
package db

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var database *sql.DB

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("db: not found")

// InitDB initializes the SQLite database
func InitDB(path string) error {
	var err error
	database, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	query := `
    CREATE TABLE IF NOT EXISTS user_preferences (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id TEXT NOT NULL UNIQUE,
        assist_mode TEXT NOT NULL,
        source TEXT,
        confidence REAL,
        preferences TEXT,
        completed_onboarding INTEGER DEFAULT 0,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    CREATE TABLE IF NOT EXISTS scan_records (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id TEXT,
        features TEXT,
        recommendation TEXT,
        timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
        deleted INTEGER DEFAULT 0
    );
    CREATE TABLE IF NOT EXISTS consent_records (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id TEXT,
        consent_type TEXT,
        granted INTEGER DEFAULT 0,
        version TEXT,
        timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    CREATE TABLE IF NOT EXISTS training_log (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        model_path TEXT,
        samples INTEGER,
        accuracy REAL,
        trained_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_scan_records_user ON scan_records(user_id);
    CREATE INDEX IF NOT EXISTS idx_consent_records_user ON consent_records(user_id);
    `

	_, err = database.Exec(query)
	return err
}

// Close closes the database handle.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// Preference is one user's stored assist-mode choice.
type Preference struct {
	UserID              string    `json:"user_id"`
	AssistMode          string    `json:"assist_mode"`
	Source              string    `json:"source"`
	Confidence          float64   `json:"confidence"`
	Preferences         string    `json:"preferences,omitempty"`
	CompletedOnboarding bool      `json:"completed_onboarding"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ScanRecord is one anonymized scan with its recommendation, both stored
// as JSON blobs.
type ScanRecord struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Features       string    `json:"features"`
	Recommendation string    `json:"recommendation"`
	Timestamp      time.Time `json:"timestamp"`
}

// TrainingRun is one row of the training log.
type TrainingRun struct {
	ModelPath string    `json:"model_path"`
	Samples   int       `json:"samples"`
	Accuracy  float64   `json:"accuracy"`
	TrainedAt time.Time `json:"trained_at"`
}

// UsageStats aggregates anonymized usage counts for reports.
type UsageStats struct {
	TotalUsers       int            `json:"total_users"`
	ModeDistribution map[string]int `json:"mode_distribution"`
	TotalScans       int            `json:"total_scans"`
}

// SavePreferences inserts or updates a user's preferences
func SavePreferences(pref Preference) error {
	_, err := database.Exec(`
        INSERT INTO user_preferences (user_id, assist_mode, source, confidence, preferences, completed_onboarding, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
        ON CONFLICT(user_id) DO UPDATE SET
            assist_mode = excluded.assist_mode,
            source = excluded.source,
            confidence = excluded.confidence,
            preferences = excluded.preferences,
            completed_onboarding = excluded.completed_onboarding,
            updated_at = CURRENT_TIMESTAMP`,
		pref.UserID, pref.AssistMode, pref.Source, pref.Confidence,
		pref.Preferences, pref.CompletedOnboarding)
	return err
}

// GetPreferences looks up a user's stored preferences
func GetPreferences(userID string) (*Preference, error) {
	var pref Preference
	err := database.QueryRow(`
        SELECT user_id, assist_mode, source, confidence, preferences, completed_onboarding, created_at, updated_at
        FROM user_preferences
        WHERE user_id = ?`, userID).Scan(
		&pref.UserID, &pref.AssistMode, &pref.Source, &pref.Confidence,
		&pref.Preferences, &pref.CompletedOnboarding, &pref.CreatedAt, &pref.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// DeletePreferences removes a user's stored preferences
func DeletePreferences(userID string) error {
	_, err := database.Exec(`DELETE FROM user_preferences WHERE user_id = ?`, userID)
	return err
}

// SaveScanRecord stores one scan with its recommendation
func SaveScanRecord(record ScanRecord) error {
	_, err := database.Exec(`
        INSERT INTO scan_records (user_id, features, recommendation)
        VALUES (?, ?, ?)`,
		record.UserID, record.Features, record.Recommendation)
	return err
}

// RecentScans returns the latest non-deleted scans for a user
func RecentScans(userID string, limit int) ([]ScanRecord, error) {
	rows, err := database.Query(`
        SELECT id, user_id, features, recommendation, timestamp
        FROM scan_records
        WHERE user_id = ? AND deleted = 0
        ORDER BY timestamp DESC
        LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var r ScanRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Features, &r.Recommendation, &r.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveConsent records a consent grant or revocation
func SaveConsent(userID, consentType string, granted bool, version string) error {
	_, err := database.Exec(`
        INSERT INTO consent_records (user_id, consent_type, granted, version)
        VALUES (?, ?, ?, ?)`,
		userID, consentType, granted, version)
	return err
}

// LogTrainingRun appends one entry to the training log
func LogTrainingRun(run TrainingRun) error {
	_, err := database.Exec(`
        INSERT INTO training_log (model_path, samples, accuracy)
        VALUES (?, ?, ?)`,
		run.ModelPath, run.Samples, run.Accuracy)
	return err
}

// GetUsageStats aggregates anonymized usage statistics
func GetUsageStats() (*UsageStats, error) {
	stats := &UsageStats{ModeDistribution: make(map[string]int)}

	if err := database.QueryRow(`SELECT COUNT(*) FROM user_preferences`).Scan(&stats.TotalUsers); err != nil {
		return nil, err
	}

	rows, err := database.Query(`
        SELECT assist_mode, COUNT(*)
        FROM user_preferences
        GROUP BY assist_mode`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var mode string
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return nil, err
		}
		stats.ModeDistribution[mode] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := database.QueryRow(`SELECT COUNT(*) FROM scan_records WHERE deleted = 0`).Scan(&stats.TotalScans); err != nil {
		return nil, err
	}
	return stats, nil
}
