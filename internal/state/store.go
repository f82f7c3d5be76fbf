package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/logging"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS state_versions (
	version_id    TEXT PRIMARY KEY,
	parent_id     TEXT,
	condition     TEXT NOT NULL,
	intensity     INTEGER NOT NULL CHECK (intensity BETWEEN 1 AND 10),
	tone          TEXT NOT NULL,
	derived_at    TEXT NOT NULL,
	trigger_type  TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES state_versions(version_id)
);

CREATE TABLE IF NOT EXISTS refresh_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id    TEXT NOT NULL,
	trigger_type  TEXT NOT NULL,
	was_stale     INTEGER NOT NULL,
	note          TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES state_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_state (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	version_id    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES state_versions(version_id)
);
`
// #endregion schema

// #region store-struct
// Store keeps the history of refreshed vectors in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB so bonds and template additions can share the file.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region commit
// Commit records v as a new version, moves the active pointer to it and
// writes the matching refresh_log row, all in one transaction.
func (s *Store) Commit(v Vector, trigger string, wasStale bool) (StateRecord, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return StateRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentID sql.NullString
	err = tx.QueryRow(`SELECT version_id FROM active_state WHERE id = 1`).Scan(&parentID)
	if err != nil && err != sql.ErrNoRows {
		return StateRecord{}, fmt.Errorf("get active: %w", err)
	}

	rec := StateRecord{
		VersionID: uuid.New().String(),
		Vector:    v,
		Trigger:   trigger,
		CreatedAt: s.now(),
	}
	var parentPtr interface{}
	if parentID.Valid {
		rec.ParentID = parentID.String
		parentPtr = parentID.String
	}

	_, err = tx.Exec(
		`INSERT INTO state_versions (version_id, parent_id, condition, intensity, tone, derived_at, trigger_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.VersionID, parentPtr, string(v.Condition), v.Intensity, string(v.Tone),
		v.DerivedAt.UTC().Format(time.RFC3339Nano), trigger, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return StateRecord{}, fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_state (id, version_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version_id = excluded.version_id`,
		rec.VersionID,
	)
	if err != nil {
		return StateRecord{}, fmt.Errorf("set active: %w", err)
	}

	err = logging.LogRefresh(tx, logging.RefreshEntry{
		VersionID:   rec.VersionID,
		TriggerType: trigger,
		WasStale:    wasStale,
		CreatedAt:   rec.CreatedAt,
	})
	if err != nil {
		return StateRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return StateRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}
// #endregion commit

// #region get-current
// GetCurrent reads the active version. The bool is false when nothing has
// been committed yet.
func (s *Store) GetCurrent() (StateRecord, bool, error) {
	var versionID string
	err := s.db.QueryRow(`SELECT version_id FROM active_state WHERE id = 1`).Scan(&versionID)
	if err == sql.ErrNoRows {
		return StateRecord{}, false, nil
	}
	if err != nil {
		return StateRecord{}, false, fmt.Errorf("get active: %w", err)
	}
	rec, err := s.GetVersion(versionID)
	if err != nil {
		return StateRecord{}, false, err
	}
	return rec, true, nil
}
// #endregion get-current

// #region get-version
// GetVersion retrieves a specific version by ID.
func (s *Store) GetVersion(id string) (StateRecord, error) {
	row := s.db.QueryRow(
		`SELECT version_id, parent_id, condition, intensity, tone, derived_at, trigger_type, created_at
		 FROM state_versions WHERE version_id = ?`, id,
	)
	rec, err := scanRecord(row)
	if err != nil {
		return StateRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}
	return rec, nil
}
// #endregion get-version

// #region list-versions
// ListVersions returns the most recent versions, newest first.
func (s *Store) ListVersions(limit int) ([]StateRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, condition, intensity, tone, derived_at, trigger_type, created_at
		 FROM state_versions ORDER BY rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []StateRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-versions

// #region scan
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (StateRecord, error) {
	var rec StateRecord
	var parentID sql.NullString
	var cond, tone, derivedStr, createdStr string

	err := sc.Scan(&rec.VersionID, &parentID, &cond, &rec.Vector.Intensity, &tone,
		&derivedStr, &rec.Trigger, &createdStr)
	if err != nil {
		return StateRecord{}, err
	}
	if parentID.Valid {
		rec.ParentID = parentID.String
	}

	c, ok := ParseCondition(cond)
	if !ok {
		return StateRecord{}, fmt.Errorf("unknown condition %q", cond)
	}
	t, ok := ParseTone(tone)
	if !ok {
		return StateRecord{}, fmt.Errorf("unknown tone %q", tone)
	}
	rec.Vector.Condition = c
	rec.Vector.Tone = t
	rec.Vector.DerivedAt, _ = time.Parse(time.RFC3339Nano, derivedStr)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}
// #endregion scan
