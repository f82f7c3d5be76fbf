package compose

import (
	"strings"
	"testing"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedStore(t *testing.T) *templates.Store {
	t.Helper()
	s := templates.NewStore()
	require.True(t, templates.EnsureLoaded(s))
	return s
}

func strPtr(s string) *string { return &s }

func assertNoTokens(t *testing.T, out string) {
	t.Helper()
	for _, tok := range []string{TokenQuantum, TokenZen, TokenKitty, TokenName} {
		assert.NotContains(t, out, tok)
	}
}

func TestWisdom_EndToEndCoherentContemplative(t *testing.T) {
	s := loadedStore(t)
	now := time.Unix(8*3600+123, 0).UTC()
	v := state.Derive(now)
	require.Equal(t, state.Coherent, v.Condition)
	require.Equal(t, state.Contemplative, v.Tone)
	require.Equal(t, 7, v.Intensity)

	out := Wisdom(s, v, templates.General, strPtr("Mochi"), now)

	assert.Equal(t,
		"Mochi observes your presence with crystalline awareness. The path reveals itself one paw print at a time. "+
			"The deepest insights come when mind and heart align in quiet contemplation.",
		out)
	assertNoTokens(t, out)
}

func TestWisdom_IsDeterministic(t *testing.T) {
	s := loadedStore(t)
	now := time.Unix(1_717_171_717, 0)
	v := state.Derive(now)
	a := Wisdom(s, v, templates.Team, strPtr("Biscuit"), now)
	b := Wisdom(s, v, templates.Team, strPtr("Biscuit"), now)
	assert.Equal(t, a, b)
}

func TestWisdom_NameIsAlwaysYou(t *testing.T) {
	s := loadedStore(t)
	v := state.Vector{Condition: state.Superposition, Intensity: 1, Tone: state.Tranquil}
	now := time.Unix(2, 0)

	out := Wisdom(s, v, templates.Birthday, nil, now)

	assert.Equal(t,
		"As you completes another orbit around the sun, Quantum Kitty sees the potential possibilities unfolding in your path. "+
			"Stillness reveals the secrets of eternity.",
		out)
}

func TestWisdom_UnknownTopicFallsBackToGeneral(t *testing.T) {
	s := templates.NewStore()
	s.AddTemplate(templates.General, "general: {kitty}")
	v := state.Vector{Condition: state.Folded, Intensity: 3, Tone: state.Playful}

	out := Wisdom(s, v, "nonexistent_category", strPtr("Tom"), time.Unix(10, 0))
	assert.Equal(t, "general: Tom", out)
}

func TestWisdom_SentinelWhenGeneralEmpty(t *testing.T) {
	s := templates.NewStore()
	s.AddTemplate("custom", "only {kitty}")
	v := state.Derive(time.Unix(0, 0))

	out := Wisdom(s, v, "missing", nil, time.Unix(0, 0))
	assert.Equal(t, Sentinel, out)
	assertNoTokens(t, out)
}

func TestWisdom_AdjectiveAndPhraseFallbacks(t *testing.T) {
	s := templates.NewStore()
	s.AddTemplate("custom", "{quantum}|{zen}")
	v := state.Vector{Condition: state.Resonating, Intensity: 2, Tone: state.Mysterious}

	out := Wisdom(s, v, "custom", nil, time.Unix(99, 0))
	assert.Equal(t, DefaultAdjective+"|"+DefaultPhrase, out)
}

func TestWisdom_IndexFormulas(t *testing.T) {
	s := templates.NewStore()
	for _, tmpl := range []string{"t0 {quantum} {zen}", "t1 {quantum} {zen}", "t2 {quantum} {zen}"} {
		s.AddTemplate("custom", tmpl)
	}
	s.AddConditionAdjective(state.Entangled, "a0")
	s.AddConditionAdjective(state.Entangled, "a1")
	for _, p := range []string{"p0", "p1", "p2", "p3"} {
		s.AddTonePhrase(state.Enlightened, p)
	}
	v := state.Vector{Condition: state.Entangled, Intensity: 4, Tone: state.Enlightened}

	// secs = 7: template (4+7)%3 = 2, adjective 7%2 = 1, phrase 7%4 = 3
	out := Wisdom(s, v, "custom", nil, time.Unix(7, 0))
	assert.Equal(t, "t2 a1 p3", out)
}

func TestWisdom_SubstitutionIsNotRecursive(t *testing.T) {
	s := templates.NewStore()
	s.AddTemplate("custom", "{kitty} says {zen}")
	s.AddTonePhrase(state.Tranquil, "calm {name}")
	v := state.Vector{Condition: state.Coherent, Intensity: 1, Tone: state.Tranquil}

	out := Wisdom(s, v, "custom", strPtr("{zen}"), time.Unix(0, 0))
	assert.Equal(t, "{zen} says calm {name}", out)
}

func TestWisdom_EveryDefaultTemplateResolves(t *testing.T) {
	s := loadedStore(t)
	for _, cat := range s.Categories() {
		for secs := int64(0); secs < 40; secs++ {
			now := time.Unix(secs*3917, 0)
			out := Wisdom(s, state.Derive(now), cat, strPtr("Mochi"), now)
			assertNoTokens(t, out)
			assert.False(t, strings.HasPrefix(out, Sentinel))
		}
	}
}

func TestFill_ReplacesAllOccurrences(t *testing.T) {
	out := Fill("{kitty} and {kitty}", map[string]string{TokenKitty: "Mochi"})
	assert.Equal(t, "Mochi and Mochi", out)
}
