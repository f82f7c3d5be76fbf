package state

import "time"

// #region constants
const (
	hourSeconds   = 3600
	energySeconds = 1800

	conditionHours = 4
	toneHours      = 6

	// StaleAfter is how long a cached vector stays current.
	StaleAfter = 30 * time.Minute
)
// #endregion constants

// #region derive
// Derive maps a timestamp to its state vector. It is a pure function of now.
func Derive(now time.Time) Vector {
	secs := EpochSeconds(now)
	hoursCycle := secs / hourSeconds

	condIdx := (hoursCycle / conditionHours) % uint64(len(Conditions))
	toneIdx := (hoursCycle / toneHours) % uint64(len(Tones))

	energyCycle := secs / energySeconds

	return Vector{
		Condition: Conditions[condIdx],
		Intensity: int(energyCycle%10) + 1,
		Tone:      Tones[toneIdx],
		DerivedAt: now,
	}
}

// EpochSeconds returns whole seconds since the Unix epoch. Timestamps before
// the epoch clamp to zero.
func EpochSeconds(t time.Time) uint64 {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return uint64(s)
}
// #endregion derive

// #region stale
// IsStale reports whether more than StaleAfter has elapsed since cached was derived.
func IsStale(cached Vector, now time.Time) bool {
	return now.Sub(cached.DerivedAt) > StaleAfter
}
// #endregion stale

// #region clock
// Clock holds the canonical cached vector. It carries no lock of its own; the
// owner serializes access.
type Clock struct {
	cached Vector
}

// NewClock returns a Clock seeded with Initial().
func NewClock() *Clock {
	return &Clock{cached: Initial()}
}

// Current returns the cached vector without refreshing it.
func (c *Clock) Current() Vector {
	return c.cached
}

// Seed replaces the cached vector, e.g. with one restored from history.
func (c *Clock) Seed(v Vector) {
	c.cached = v
}

// Refresh derives the vector for now and stores it as the cached copy.
func (c *Clock) Refresh(now time.Time) Vector {
	c.cached = Derive(now)
	return c.cached
}

// RefreshIfStale refreshes only when the cached vector is stale. The second
// return value reports whether a refresh happened.
func (c *Clock) RefreshIfStale(now time.Time) (Vector, bool) {
	if IsStale(c.cached, now) {
		return c.Refresh(now), true
	}
	return c.cached, false
}
// #endregion clock
