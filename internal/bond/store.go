package bond

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion imports

// #region types

// Binding associates a caller identity with the name it gave its kitty.
type Binding struct {
	Identity  string
	Label     string
	UpdatedAt time.Time
}

// #endregion types

// #region store

// Store persists identity bindings in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates the kitty_bonds table if needed and returns a store.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kitty_bonds (
		identity TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create kitty_bonds: %w", err)
	}
	return nil
}

// Save binds identity to label, replacing any previous label.
func (s *Store) Save(identity, label string) error {
	_, err := s.db.Exec(
		`INSERT INTO kitty_bonds (identity, label, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(identity) DO UPDATE SET label = excluded.label, updated_at = excluded.updated_at`,
		identity, label, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save bond: %w", err)
	}
	return nil
}

// Lookup returns the label bound to identity. found is false when the caller
// has not named a kitty yet.
func (s *Store) Lookup(identity string) (label string, found bool, err error) {
	row := s.db.QueryRow(`SELECT label FROM kitty_bonds WHERE identity = ?`, identity)
	if err := row.Scan(&label); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup bond: %w", err)
	}
	return label, true, nil
}

// List returns every binding ordered by identity.
func (s *Store) List() ([]Binding, error) {
	rows, err := s.db.Query(`SELECT identity, label, updated_at FROM kitty_bonds ORDER BY identity`)
	if err != nil {
		return nil, fmt.Errorf("list bonds: %w", err)
	}
	defer rows.Close()

	var out []Binding
	for rows.Next() {
		var b Binding
		var updated string
		if err := rows.Scan(&b.Identity, &b.Label, &updated); err != nil {
			return nil, fmt.Errorf("scan bond: %w", err)
		}
		b.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, b)
	}
	return out, rows.Err()
}

// #endregion store
