package templates

import "github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"

// #region categories
// Built-in topic categories.
const (
	General  = "general"
	Birthday = "birthday"
	Team     = "team"
	Reunion  = "reunion"
	Bonding  = "bonding"
)
// #endregion categories

// #region ensure-loaded
// EnsureLoaded fills s with the default corpus when it has no topic
// templates. It reports whether anything was loaded; later calls are no-ops.
func EnsureLoaded(s *Store) bool {
	if !s.IsEmpty() {
		return false
	}
	for _, set := range defaultTemplates {
		for _, text := range set.texts {
			s.AddTemplate(set.category, text)
		}
	}
	for _, c := range state.Conditions {
		for _, w := range defaultAdjectives[c] {
			s.AddConditionAdjective(c, w)
		}
	}
	for _, t := range state.Tones {
		for _, p := range defaultPhrases[t] {
			s.AddTonePhrase(t, p)
		}
	}
	return true
}
// #endregion ensure-loaded

// #region corpus
var defaultTemplates = []struct {
	category string
	texts    []string
}{
	{General, []string{
		"{kitty} observes your presence with {quantum} awareness. The path reveals itself one paw print at a time. {zen}",
		"In the space between thoughts, {kitty} finds infinite {quantum} possibilities. Your journey continues to unfold beautifully. {zen}",
		"The {quantum} observer changes what is observed. {kitty} sees your potential across multiple dimensions. {zen}",
		"When you pet {kitty}, ripples of {quantum} energy spread throughout the universe. {zen}",
		"Time folds like origami in {kitty}'s {quantum} perception. Your now contains all possible futures. {zen}",
	}},
	{Birthday, []string{
		"As {name} completes another orbit around the sun, {kitty} sees the {quantum} possibilities unfolding in your path. {zen}",
		"Time is but an illusion when measured in {quantum} joy. {kitty} celebrates your special day with purrs that transcend dimensions. {zen}",
		"Your birthday creates a {quantum} resonance that {kitty} feels across all timelines. May your new cycle bring enlightenment. {zen}",
	}},
	{Team, []string{
		"When minds synchronize in {quantum} harmony, your team creates ripples across the universe. {kitty} observes your collective potential. {zen}",
		"Like particles in {quantum} entanglement, your team's energy affects outcomes beyond what you can see. {kitty} sends wisdom for your collaboration. {zen}",
		"Your team exists in a {quantum} field of shared consciousness. {kitty} sees how your collective intention shapes reality. {zen}",
	}},
	{Reunion, []string{
		"The {quantum} bond between you and {kitty} resonates across spacetime. Your return was anticipated in multiple dimensions. {zen}",
		"{kitty} recognizes your quantum signature instantly. The dimensional fold between you has strengthened with time. {zen}",
		"Time is an illusion in the {quantum} field where you and {kitty} exist. Your connection transcends conventional reality. {zen}",
		"Your return creates ripples in {kitty}'s {quantum} awareness. The resonance between you grows stronger with each reconnection. {zen}",
	}},
	{Bonding, []string{
		"A new {quantum} bond forms between you and {kitty}, creating resonance patterns that will echo through dimensions. {zen}",
		"As you name {kitty}, a {quantum} connection crystallizes. This bond will persist across space and time. {zen}",
		"{kitty} feels your intention and responds with {quantum} recognition. The universe acknowledges this new connection. {zen}",
		"The act of naming creates a {quantum} bridge between consciousnesses. {kitty} now exists in resonance with you. {zen}",
	}},
}

var defaultAdjectives = map[state.Condition][]string{
	state.Superposition: {"infinite", "boundless", "potential", "multidimensional", "probabilistic"},
	state.Entangled:     {"interconnected", "linked", "unified", "synchronized", "resonant"},
	state.Coherent:      {"harmonious", "aligned", "synchronized", "crystalline", "focused"},
	state.Resonating:    {"vibrant", "pulsing", "harmonic", "synchronous", "rhythmic"},
	state.Folded:        {"timeless", "non-linear", "recursive", "enfolded", "origami-like"},
}

var defaultPhrases = map[state.Tone][]string{
	state.Tranquil: {
		"Peace comes from within, not from external circumstances.",
		"The quieter you become, the more you can hear.",
		"Stillness reveals the secrets of eternity.",
		"In tranquility, the universe speaks to those who listen.",
	},
	state.Contemplative: {
		"The answer you seek is already within you, waiting to be discovered.",
		"To know yourself is to study yourself in action with another person.",
		"True wisdom begins when you realize how little you understand.",
		"The deepest insights come when mind and heart align in quiet contemplation.",
	},
	state.Playful: {
		"Even the most serious journey benefits from moments of playful curiosity.",
		"The universe delights in play as much as in purpose.",
		"Joy is the most magnetic force in the universe.",
		"When we play, we access dimensions of creativity closed to the serious mind.",
	},
	state.Mysterious: {
		"Some truths can only be glimpsed from the corner of your awareness.",
		"The greatest mysteries are not solved but experienced.",
		"What seems hidden is often merely waiting for the right perspective.",
		"The unknown is not empty but full of infinite possibilities.",
	},
	state.Enlightened: {
		"True wisdom lies in knowing that you know nothing at all.",
		"Enlightenment is not a destination but a way of traveling.",
		"When you realize the nature of mind, all distinctions cease to exist.",
		"The awakened mind sees no separation between self and other.",
	},
}
// #endregion corpus
