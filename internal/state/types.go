package state

import "time"

// #region condition
// Condition is the slow categorical signal. It rotates every four hour-buckets.
type Condition string

const (
	Superposition Condition = "Superposition"
	Entangled     Condition = "Entangled"
	Coherent      Condition = "Coherent"
	Resonating    Condition = "Resonating"
	Folded        Condition = "Folded"
)

// Conditions is the fixed rotation order used for index selection.
var Conditions = [5]Condition{Superposition, Entangled, Coherent, Resonating, Folded}

// ParseCondition returns the Condition named by s.
func ParseCondition(s string) (Condition, bool) {
	for _, c := range Conditions {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
// #endregion condition

// #region tone
// Tone is the communication style. It rotates every six hour-buckets.
type Tone string

const (
	Tranquil      Tone = "Tranquil"
	Contemplative Tone = "Contemplative"
	Playful       Tone = "Playful"
	Mysterious    Tone = "Mysterious"
	Enlightened   Tone = "Enlightened"
)

// Tones is the fixed rotation order used for index selection.
var Tones = [5]Tone{Tranquil, Contemplative, Playful, Mysterious, Enlightened}

// ParseTone returns the Tone named by s.
func ParseTone(s string) (Tone, bool) {
	for _, t := range Tones {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
// #endregion tone

// #region vector
// Vector is the derived mood state at a point in time.
type Vector struct {
	Condition Condition `json:"condition"`
	Intensity int       `json:"intensity"` // [1, 10]
	Tone      Tone      `json:"tone"`
	DerivedAt time.Time `json:"derived_at"`
}

// Initial returns the vector held before the first refresh. DerivedAt is the
// Unix epoch so the first staleness check always fires.
func Initial() Vector {
	return Vector{
		Condition: Superposition,
		Intensity: 5,
		Tone:      Tranquil,
		DerivedAt: time.Unix(0, 0).UTC(),
	}
}
// #endregion vector

// #region state-record
// StateRecord is a persisted version of a derived vector.
type StateRecord struct {
	VersionID string    `json:"version_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Vector    Vector    `json:"vector"`
	Trigger   string    `json:"trigger"`
	CreatedAt time.Time `json:"created_at"`
}
// #endregion state-record
