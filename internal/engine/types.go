package engine

import (
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/templates"
)

// #region triggers

// Trigger values recorded with each refresh.
const (
	TriggerRefresh = "refresh"
	TriggerGreet   = "quantum_greet"
	TriggerWisdom  = "compose_wisdom"
)

// #endregion

// #region results

// GreetResult is returned by QuantumGreet.
type GreetResult struct {
	Greeting  string          `json:"greeting"`
	Condition state.Condition `json:"condition"`
	Intensity int             `json:"intensity"`
	Tone      state.Tone      `json:"tone"`
}

// WisdomResult is returned by ComposeWisdom.
type WisdomResult struct {
	Content   string          `json:"content"`
	Condition state.Condition `json:"condition"`
	Intensity int             `json:"intensity"`
	Tone      state.Tone      `json:"tone"`
}

// #endregion

// #region collaborators

// History records refreshed vectors. *state.Store implements it.
type History interface {
	Commit(v state.Vector, trigger string, wasStale bool) (state.StateRecord, error)
}

// AdditionLog records additive template inserts. *templates.Repo implements it.
type AdditionLog interface {
	Append(a templates.Addition) error
}

// Bonds maps caller identities to kitty names. *bond.Store implements it.
type Bonds interface {
	Save(identity, label string) error
	Lookup(identity string) (string, bool, error)
}

// #endregion
