package logging

import (
	"fmt"
	"time"
)

// #region log-refresh
// LogRefresh writes a refresh entry to the refresh_log table.
func LogRefresh(db Execer, entry RefreshEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	stale := 0
	if entry.WasStale {
		stale = 1
	}

	_, err := db.Exec(
		`INSERT INTO refresh_log (version_id, trigger_type, was_stale, note, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.TriggerType,
		stale,
		nullIfEmpty(entry.Note),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log refresh: %w", err)
	}
	return nil
}
// #endregion log-refresh

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
