package templates

import (
	"slices"
	"sort"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
)

// #region store-struct
// Store holds topic templates, condition adjectives and tone phrases. Each
// list keeps first-insertion order and never holds the same string twice.
// Store is not safe for concurrent use; the engine serializes access.
type Store struct {
	templates  map[string][]string
	adjectives map[state.Condition][]string
	phrases    map[state.Tone][]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		templates:  make(map[string][]string),
		adjectives: make(map[state.Condition][]string),
		phrases:    make(map[state.Tone][]string),
	}
}
// #endregion store-struct

// #region add
// AddTemplate appends text to category unless it is already there.
func (s *Store) AddTemplate(category, text string) bool {
	return appendUnique(s.templates, category, text)
}

// AddConditionAdjective appends word to the condition's list unless present.
func (s *Store) AddConditionAdjective(c state.Condition, word string) bool {
	return appendUnique(s.adjectives, c, word)
}

// AddTonePhrase appends phrase to the tone's list unless present.
func (s *Store) AddTonePhrase(t state.Tone, phrase string) bool {
	return appendUnique(s.phrases, t, phrase)
}

func appendUnique[K comparable](m map[K][]string, key K, value string) bool {
	list := m[key]
	if slices.Contains(list, value) {
		return false
	}
	m[key] = append(list, value)
	return true
}
// #endregion add

// #region read
// Templates returns a copy of the category's templates, empty when unknown.
func (s *Store) Templates(category string) []string {
	return clone(s.templates[category])
}

// Adjectives returns a copy of the condition's adjectives.
func (s *Store) Adjectives(c state.Condition) []string {
	return clone(s.adjectives[c])
}

// Phrases returns a copy of the tone's phrases.
func (s *Store) Phrases(t state.Tone) []string {
	return clone(s.phrases[t])
}

// Categories returns the known topic categories in sorted order.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.templates))
	for k := range s.templates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsEmpty reports whether no topic templates have been added.
func (s *Store) IsEmpty() bool {
	return len(s.templates) == 0
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
// #endregion read
