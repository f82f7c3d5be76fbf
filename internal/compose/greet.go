package compose

import (
	"strings"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
)

// #region greetings
var toneGreetings = map[state.Tone][2]string{
	state.Tranquil: {
		"Meow there, {}! The quantum kitty purrs peacefully in your dimension.",
		"*gentle paw tap* Hello {}. I exist in a state of tranquil awareness.",
	},
	state.Contemplative: {
		"Greetings {}. This kitty ponders the nature of your quantum signature.",
		"*thoughtful gaze* Hello {}. I'm contemplating the patterns of our meeting across timelines.",
	},
	state.Playful: {
		"*playful pounce* Hi {}! Ready to explore quantum possibilities together?",
		"Meow! {}! The quantum kitty is feeling especially bouncy in this timeline!",
	},
	state.Mysterious: {
		"*enigmatic purr* Ah, it's {}... I've been waiting for you across dimensions.",
		"The shadows between realities part as you approach, {}. How curious.",
	},
	state.Enlightened: {
		"*wise nod* Welcome, {}. Your arrival was both unexpected and inevitable.",
		"The quantum field shifts with your presence, {}. All is as it should be.",
	},
}

var fallbackGreetings = [2]string{
	"Meow there, {}! The quantum kitty acknowledges your presence.",
	"*quantum paw tap* Hello {}! I exist in multiple states simultaneously!",
}
// #endregion greetings

// #region quantum-greeting
// QuantumGreeting picks one of the tone's two greetings by the parity of the
// current second and inserts name.
func QuantumGreeting(tone state.Tone, name string, now time.Time) string {
	pair, ok := toneGreetings[tone]
	if !ok {
		pair = fallbackGreetings
	}
	return strings.ReplaceAll(pair[state.EpochSeconds(now)%2], "{}", name)
}
// #endregion quantum-greeting

// #region greet
// Greet ignores all state.
func Greet(name string) string {
	return "Hello, " + name + "! (The quantum kitty is sleeping in this function)"
}
// #endregion greet
