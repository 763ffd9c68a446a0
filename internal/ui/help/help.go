// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/ui/overlay"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#C9C9C9"}
	borderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	keyColor    = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"}
	descColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(titleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(borderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(titleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(keyColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(descColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	width  int
	height int
}

// New creates a new help view.
func New() Model {
	return Model{}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered in the available space.
func (m Model) View() string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.renderContent(),
	)
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	if background == "" {
		return m.View()
	}
	return overlay.Compose(m.renderContent(), background, m.width, m.height)
}

// renderContent builds the help box content.
func (m Model) renderContent() string {
	// Column style with right margin for spacing
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	// Navigation column
	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderKeyDesc("↑/↓/←/→", "move cursor"))
	navCol.WriteString(renderBinding(keys.Editor.Home))
	navCol.WriteString(renderBinding(keys.Editor.End))
	navCol.WriteString(renderBinding(keys.Editor.PageUp))
	navCol.WriteString(renderBinding(keys.Editor.PageDown))

	// Editing column
	var editCol strings.Builder
	editCol.WriteString(sectionStyle.Render("Editing"))
	editCol.WriteString("\n")
	editCol.WriteString(renderKeyDesc("any key", "insert text"))
	editCol.WriteString(renderBinding(keys.Editor.Backspace))
	editCol.WriteString(renderBinding(keys.Editor.Delete))
	editCol.WriteString(renderBinding(keys.Editor.Enter))
	editCol.WriteString(renderBinding(keys.Editor.Tab))

	// File column
	var fileCol strings.Builder
	fileCol.WriteString(sectionStyle.Render("File"))
	fileCol.WriteString("\n")
	fileCol.WriteString(renderBinding(keys.Editor.Save))
	fileCol.WriteString(renderBinding(keys.Editor.Reload))

	// General column
	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(keys.Editor.CycleTheme))
	generalCol.WriteString(renderBinding(keys.Editor.Help))
	generalCol.WriteString(renderBinding(keys.Editor.Quit))

	// Join columns horizontally, aligned at top
	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(editCol.String()),
		columnStyle.Render(fileCol.String()),
		generalCol.String(), // Last column doesn't need right margin
	)

	// Calculate box width based on columns content
	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4 // Add horizontal padding (2 each side)

	// Build body content with padding
	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press F1 or Esc to close"))

	// Divider spans full box width
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	// Build final content: title, divider, body
	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
