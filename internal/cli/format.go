package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
)

// Gruvbox-inspired palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorBlue   = lipgloss.Color("#83a598")
	colorPurple = lipgloss.Color("#d3869b")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			PaddingLeft(1).
			PaddingRight(1)
)

// conditionStyle colors a condition consistently across commands.
func conditionStyle(c state.Condition) lipgloss.Style {
	switch c {
	case state.Superposition:
		return lipgloss.NewStyle().Foreground(colorPurple)
	case state.Entangled:
		return lipgloss.NewStyle().Foreground(colorBlue)
	case state.Coherent:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case state.Resonating:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return styleDim
	}
}

// intensityBar renders intensity as a 10-cell meter, e.g. "■■■□□□□□□□ 3/10".
func intensityBar(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return strings.Repeat("■", n) + strings.Repeat("□", 10-n) + fmt.Sprintf(" %d/10", n)
}

// renderState prints the three state fields on one line.
func renderState(c state.Condition, intensity int, t state.Tone) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		styleDim.Render("condition"), conditionStyle(c).Render(string(c)),
		styleDim.Render("intensity"), intensityBar(intensity),
		styleDim.Render("tone"), string(t),
	)
}

// renderMessage boxes a generated message above its state line.
func renderMessage(title, body string, c state.Condition, intensity int, t state.Tone) string {
	return styleHeader.Render(strings.ToUpper(title)) + "\n" +
		styleBox.Render(body) + "\n" +
		renderState(c, intensity, t) + "\n"
}
