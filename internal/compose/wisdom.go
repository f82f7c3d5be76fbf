package compose

import (
	"strings"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/templates"
)

// #region fallbacks
const (
	// Sentinel is returned when neither the topic nor "general" has templates.
	Sentinel = "Quantum Kitty is meditating deeply..."

	DefaultKitty     = "Quantum Kitty"
	DefaultAdjective = "quantum"
	DefaultPhrase    = "The present moment is all we ever truly have."

	// nameValue is what {name} always becomes; it is not tied to any caller input.
	nameValue = "you"
)

// Placeholder tokens recognized in templates.
const (
	TokenQuantum = "{quantum}"
	TokenZen     = "{zen}"
	TokenKitty   = "{kitty}"
	TokenName    = "{name}"
)
// #endregion fallbacks

// #region source
// Source is the read side of a template store.
type Source interface {
	Templates(category string) []string
	Adjectives(c state.Condition) []string
	Phrases(t state.Tone) []string
}
// #endregion source

// #region wisdom
// Wisdom picks a template for topic and fills its placeholders from v. A nil
// subject leaves {kitty} as DefaultKitty. The result depends only on the
// store contents, v, topic, subject and now.
func Wisdom(src Source, v state.Vector, topic string, subject *string, now time.Time) string {
	list := src.Templates(topic)
	if len(list) == 0 {
		list = src.Templates(templates.General)
	}
	if len(list) == 0 {
		return Sentinel
	}

	secs := state.EpochSeconds(now)
	tmpl := list[(uint64(v.Intensity)+secs)%uint64(len(list))]

	adjs := src.Adjectives(v.Condition)
	if len(adjs) == 0 {
		adjs = []string{DefaultAdjective}
	}
	phrases := src.Phrases(v.Tone)
	if len(phrases) == 0 {
		phrases = []string{DefaultPhrase}
	}

	kitty := DefaultKitty
	if subject != nil {
		kitty = *subject
	}

	return Fill(tmpl, map[string]string{
		TokenQuantum: adjs[secs%uint64(len(adjs))],
		TokenZen:     phrases[secs%uint64(len(phrases))],
		TokenKitty:   kitty,
		TokenName:    nameValue,
	})
}
// #endregion wisdom

// #region fill
// Fill replaces every token in values within a single left-to-right scan.
// Substituted text is never rescanned, so a value containing a token stays literal.
func Fill(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for token, value := range values {
		pairs = append(pairs, token, value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
// #endregion fill
