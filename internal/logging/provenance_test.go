package logging

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "log.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE refresh_log (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		version_id   TEXT NOT NULL,
		trigger_type TEXT NOT NULL,
		was_stale    INTEGER NOT NULL,
		note         TEXT,
		created_at   TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-refresh-tests
func TestLogRefresh_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := RefreshEntry{
		VersionID:   "v1",
		TriggerType: "quantum_greet",
		WasStale:    true,
		Note:        "first read",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogRefresh(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var versionID, trigger string
	var stale int
	db.QueryRow("SELECT version_id, trigger_type, was_stale FROM refresh_log").Scan(&versionID, &trigger, &stale)
	if versionID != "v1" {
		t.Errorf("expected version_id 'v1', got %q", versionID)
	}
	if trigger != "quantum_greet" {
		t.Errorf("expected trigger 'quantum_greet', got %q", trigger)
	}
	if stale != 1 {
		t.Errorf("expected was_stale 1, got %d", stale)
	}
}

func TestLogRefresh_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	before := time.Now().UTC().Add(-time.Second)
	if err := LogRefresh(db, RefreshEntry{VersionID: "v2", TriggerType: "refresh"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM refresh_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogRefresh_EmptyNoteIsNull(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	if err := LogRefresh(db, RefreshEntry{VersionID: "v3", TriggerType: "refresh"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var note sql.NullString
	db.QueryRow("SELECT note FROM refresh_log").Scan(&note)
	if note.Valid {
		t.Error("expected NULL note for empty string")
	}
}

func TestLogRefresh_InsideTx(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := LogRefresh(tx, RefreshEntry{VersionID: "v4", TriggerType: "refresh"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx.Rollback()

	var count int
	db.QueryRow("SELECT COUNT(*) FROM refresh_log").Scan(&count)
	if count != 0 {
		t.Errorf("expected rollback to discard the row, got %d", count)
	}
}

func TestLogRefresh_Error(t *testing.T) {
	db := setupDB(t)
	db.Close()

	err := LogRefresh(db, RefreshEntry{VersionID: "v5", TriggerType: "refresh"})
	if err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-refresh-tests

// #region null-if-empty-tests
func TestNullIfEmpty(t *testing.T) {
	if nullIfEmpty("") != nil {
		t.Error("expected nil for empty string")
	}
	if nullIfEmpty("hello") != "hello" {
		t.Error("expected passthrough for non-empty string")
	}
}

// #endregion null-if-empty-tests
