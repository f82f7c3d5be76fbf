package compose

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, Ada! (The quantum kitty is sleeping in this function)", Greet("Ada"))
}

func TestQuantumGreeting_ParitySelects(t *testing.T) {
	even := QuantumGreeting(state.Playful, "Ada", time.Unix(10, 0))
	odd := QuantumGreeting(state.Playful, "Ada", time.Unix(11, 0))
	assert.Equal(t, "*playful pounce* Hi Ada! Ready to explore quantum possibilities together?", even)
	assert.Equal(t, "Meow! Ada! The quantum kitty is feeling especially bouncy in this timeline!", odd)
}

func TestQuantumGreeting_EveryToneHasPair(t *testing.T) {
	for _, tone := range state.Tones {
		for secs := int64(0); secs < 2; secs++ {
			out := QuantumGreeting(tone, "Ada", time.Unix(secs, 0))
			assert.Contains(t, out, "Ada")
			assert.NotContains(t, out, "{}")
		}
	}
}

func TestQuantumGreeting_UnknownToneFallsBack(t *testing.T) {
	out := QuantumGreeting(state.Tone("Grumpy"), "Ada", time.Unix(0, 0))
	assert.Equal(t, "Meow there, Ada! The quantum kitty acknowledges your presence.", out)
}
