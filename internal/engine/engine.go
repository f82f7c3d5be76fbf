package engine

// #region imports
import (
	"log/slog"
	"sync"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/compose"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/templates"
)

// #endregion

// #region engine-struct

// Engine owns the cached state vector and the template store. Every exported
// method runs as one critical section, so read-check-refresh sequences are
// atomic.
type Engine struct {
	mu    sync.Mutex
	clock *state.Clock
	store *templates.Store

	history   History
	additions AdditionLog
	bonds     Bonds
	logger    *slog.Logger
}

// Options wires optional collaborators. Nil History and AdditionLog disable
// persistence; a nil Bonds keeps bindings in memory.
type Options struct {
	History   History
	Additions AdditionLog
	Bonds     Bonds
	Logger    *slog.Logger
}

// #endregion

// #region constructor

// New returns an Engine with an empty template store and the initial vector.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bonds := opts.Bonds
	if bonds == nil {
		bonds = newMemoryBonds()
	}
	return &Engine{
		clock:     state.NewClock(),
		store:     templates.NewStore(),
		history:   opts.History,
		additions: opts.Additions,
		bonds:     bonds,
		logger:    logger,
	}
}

// #endregion

// #region restore

// Seed replaces the cached vector, typically with the last committed one.
func (e *Engine) Seed(v state.Vector) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clock.Seed(v)
}

// Replay loads the default corpus and then re-applies previously recorded
// additions in order. It returns how many of them changed the store.
func (e *Engine) Replay(adds []templates.Addition) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded()

	applied := 0
	for _, a := range adds {
		if templates.Apply(e.store, a) {
			applied++
		}
	}
	return applied
}

// #endregion

// #region greet

// Greet returns a fixed-format greeting and touches no state.
func (e *Engine) Greet(name string) string {
	return compose.Greet(name)
}

// QuantumGreet refreshes the vector if stale and greets name in the current tone.
func (e *Engine) QuantumGreet(name string, now time.Time) GreetResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.refreshIfStale(now, TriggerGreet)
	return GreetResult{
		Greeting:  compose.QuantumGreeting(v.Tone, name, now),
		Condition: v.Condition,
		Intensity: v.Intensity,
		Tone:      v.Tone,
	}
}

// #endregion

// #region state

// RefreshState loads templates if needed and unconditionally re-derives the vector.
func (e *Engine) RefreshState(now time.Time) state.Vector {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()
	stale := state.IsStale(e.clock.Current(), now)
	v := e.clock.Refresh(now)
	e.record(v, TriggerRefresh, stale)
	return v
}

// Current returns the cached vector without refreshing it.
func (e *Engine) Current() state.Vector {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock.Current()
}

// #endregion

// #region wisdom

// ComposeWisdom fills a template for topics[0] ("general" when topics is empty)
// against the cached vector, refreshing it first only when it is stale.
func (e *Engine) ComposeWisdom(subject string, topics []string, now time.Time) WisdomResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()
	v := e.refreshIfStale(now, TriggerWisdom)

	topic := templates.General
	if len(topics) > 0 {
		topic = topics[0]
	}

	return WisdomResult{
		Content:   compose.Wisdom(e.store, v, topic, &subject, now),
		Condition: v.Condition,
		Intensity: v.Intensity,
		Tone:      v.Tone,
	}
}

// #endregion

// #region templates

// AddTemplate appends text to category unless already present.
func (e *Engine) AddTemplate(category, text string) bool {
	return e.add(templates.Addition{Kind: templates.KindTemplate, Key: category, Text: text})
}

// AddConditionAdjective appends word to the condition's adjectives unless present.
func (e *Engine) AddConditionAdjective(c state.Condition, word string) bool {
	return e.add(templates.Addition{Kind: templates.KindAdjective, Key: string(c), Text: word})
}

// AddTonePhrase appends phrase to the tone's phrases unless present.
func (e *Engine) AddTonePhrase(t state.Tone, phrase string) bool {
	return e.add(templates.Addition{Kind: templates.KindPhrase, Key: string(t), Text: phrase})
}

// TemplatesFor returns the category's templates, empty when unknown.
func (e *Engine) TemplatesFor(category string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded()
	return e.store.Templates(category)
}

// Categories lists the known topic categories.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded()
	return e.store.Categories()
}

func (e *Engine) add(a templates.Addition) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureLoaded()
	if !templates.Apply(e.store, a) {
		return false
	}
	if e.additions != nil {
		if err := e.additions.Append(a); err != nil {
			e.logger.Warn("persist addition failed", "kind", a.Kind, "key", a.Key, "error", err)
		}
	}
	return true
}

// #endregion

// #region bonds

// SaveBond binds identity to a kitty name.
func (e *Engine) SaveBond(identity, label string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bonds.Save(identity, label)
}

// Bond returns the kitty name bound to identity, if any.
func (e *Engine) Bond(identity string) (string, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bonds.Lookup(identity)
}

// #endregion

// #region internals

// ensureLoaded must be called with mu held.
func (e *Engine) ensureLoaded() {
	if templates.EnsureLoaded(e.store) {
		e.logger.Debug("default corpus loaded", "categories", len(e.store.Categories()))
	}
}

// refreshIfStale must be called with mu held.
func (e *Engine) refreshIfStale(now time.Time, trigger string) state.Vector {
	v, refreshed := e.clock.RefreshIfStale(now)
	if refreshed {
		e.record(v, trigger, true)
	}
	return v
}

func (e *Engine) record(v state.Vector, trigger string, wasStale bool) {
	e.logger.Debug("state refreshed",
		"trigger", trigger,
		"condition", v.Condition,
		"intensity", v.Intensity,
		"tone", v.Tone,
		"was_stale", wasStale,
	)
	if e.history == nil {
		return
	}
	if _, err := e.history.Commit(v, trigger, wasStale); err != nil {
		e.logger.Warn("persist state failed", "trigger", trigger, "error", err)
	}
}

// #endregion
