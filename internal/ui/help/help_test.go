package help

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestView_ContainsSections(t *testing.T) {
	m := New().SetSize(120, 40)
	view := stripANSI(m.View())

	require.Contains(t, view, "Keybindings")
	require.Contains(t, view, "Navigation")
	require.Contains(t, view, "Editing")
	require.Contains(t, view, "File")
	require.Contains(t, view, "General")
}

func TestView_ContainsBindings(t *testing.T) {
	m := New().SetSize(120, 40)
	view := stripANSI(m.View())

	require.Contains(t, view, "ctrl+s")
	require.Contains(t, view, "save file")
	require.Contains(t, view, "ctrl+t")
	require.Contains(t, view, "cycle theme")
	require.Contains(t, view, "ctrl+q")
	require.Contains(t, view, "quit")
}

func TestView_Footer(t *testing.T) {
	m := New().SetSize(120, 40)
	view := stripANSI(m.View())

	require.Contains(t, view, "Press F1 or Esc to close")
}

func TestView_CenteredInAvailableSpace(t *testing.T) {
	m := New().SetSize(120, 40)
	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 40, "view should fill the full height")
	for _, line := range lines {
		require.Equal(t, 120, lipgloss.Width(line), "each line should span the full width")
	}
}

func TestView_HasRoundedBorder(t *testing.T) {
	m := New().SetSize(120, 40)
	view := stripANSI(m.View())

	require.Contains(t, view, "╭")
	require.Contains(t, view, "╰")
}

func TestOverlay_KeepsBackgroundAroundBox(t *testing.T) {
	m := New().SetSize(120, 40)
	bg := strings.TrimRight(strings.Repeat(strings.Repeat("#", 120)+"\n", 40), "\n")

	out := stripANSI(m.Overlay(bg))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	require.Equal(t, strings.Repeat("#", 120), lines[0], "rows above the box keep the background")
	require.Contains(t, out, "Keybindings")
}

func TestOverlay_EmptyBackgroundFallsBackToView(t *testing.T) {
	m := New().SetSize(120, 40)
	require.Equal(t, m.View(), m.Overlay(""))
}

func TestSetSize(t *testing.T) {
	m := New()
	m = m.SetSize(80, 24)
	require.Equal(t, 80, m.width)
	require.Equal(t, 24, m.height)
}
