package logging

import (
	"database/sql"
	"time"
)

// #region refresh-entry
// RefreshEntry is a single row in the refresh_log table.
type RefreshEntry struct {
	VersionID   string
	TriggerType string // "refresh" | "quantum_greet" | "compose_wisdom"
	WasStale    bool
	Note        string
	CreatedAt   time.Time
}
// #endregion refresh-entry

// #region execer
// Execer is satisfied by both *sql.DB and *sql.Tx.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}
// #endregion execer
