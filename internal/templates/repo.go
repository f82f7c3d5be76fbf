package templates

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
)

// #endregion imports

// #region types

// Kind names the collection an Addition targets.
type Kind string

const (
	KindTemplate  Kind = "template"
	KindAdjective Kind = "adjective"
	KindPhrase    Kind = "phrase"
)

// Addition is one additive insert made after the default corpus was loaded.
type Addition struct {
	Kind Kind
	Key  string // category, condition or tone name
	Text string
}

// Apply inserts a into s. It returns false when the text was already present
// or the key does not name a known condition/tone.
func Apply(s *Store, a Addition) bool {
	switch a.Kind {
	case KindTemplate:
		return s.AddTemplate(a.Key, a.Text)
	case KindAdjective:
		c, ok := state.ParseCondition(a.Key)
		if !ok {
			return false
		}
		return s.AddConditionAdjective(c, a.Text)
	case KindPhrase:
		t, ok := state.ParseTone(a.Key)
		if !ok {
			return false
		}
		return s.AddTonePhrase(t, a.Text)
	}
	return false
}

// #endregion types

// #region repo

// Repo persists additions in SQLite so they survive a restart. Replaying them
// in id order over the default corpus reproduces the in-memory store.
type Repo struct {
	db *sql.DB
}

// NewRepo creates the template_additions table if needed and returns a Repo.
func NewRepo(db *sql.DB) (*Repo, error) {
	r := &Repo{db: db}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repo) init() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS template_additions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		key TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (kind, key, text)
	)`)
	if err != nil {
		return fmt.Errorf("create template_additions: %w", err)
	}
	return nil
}

// Append records a. Repeating an identical addition is a no-op.
func (r *Repo) Append(a Addition) error {
	_, err := r.db.Exec(
		`INSERT OR IGNORE INTO template_additions (kind, key, text, created_at) VALUES (?, ?, ?, ?)`,
		string(a.Kind), a.Key, a.Text, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append addition: %w", err)
	}
	return nil
}

// All returns every recorded addition in insertion order.
func (r *Repo) All() ([]Addition, error) {
	rows, err := r.db.Query(`SELECT kind, key, text FROM template_additions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list additions: %w", err)
	}
	defer rows.Close()

	var out []Addition
	for rows.Next() {
		var a Addition
		var kind string
		if err := rows.Scan(&kind, &a.Key, &a.Text); err != nil {
			return nil, fmt.Errorf("scan addition: %w", err)
		}
		a.Kind = Kind(kind)
		out = append(out, a)
	}
	return out, rows.Err()
}

// #endregion repo
