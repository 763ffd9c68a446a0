package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/styles"
)

// ANSI codes for the cursor. Toggling reverse video keeps the syntax
// styling of the character under the cursor intact.
const (
	cursorOn  = "\x1b[7m"  // reverse video on
	cursorOff = "\x1b[27m" // reverse video off (not full reset)
)

// View renders the visible lines plus the status bar.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	pos := m.Position()
	gutterW := m.gutterWidth()
	contentW := m.width - gutterW
	if contentW < 1 {
		contentW = 1
	}

	gutterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Color(styles.TokenGutterLineNumber)))
	activeGutterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Color(styles.TokenGutterActive)))

	rows := make([]string, 0, m.contentHeight())
	for row := 0; row < m.contentHeight(); row++ {
		index := m.scroll + row
		if index >= m.buf.LineCount() {
			rows = append(rows, "")
			continue
		}

		text, _ := m.buf.Line(index)
		expanded := expandTabs(text, m.opts.TabWidth)
		rendered := m.hl.Highlight(expanded)

		if index == pos.Line {
			col := expandedColumn(text, pos.Column, m.opts.TabWidth)
			rendered = insertCursor(rendered, expanded, col)
		}

		var gutter string
		if gutterW > 0 {
			cell := fmt.Sprintf("%*d ", gutterW-1, index+1)
			if index == pos.Line {
				gutter = activeGutterStyle.Render(cell)
			} else {
				gutter = gutterStyle.Render(cell)
			}
		}

		rows = append(rows, gutter+truncate.String(rendered, uint(contentW)))
	}

	return strings.Join(rows, "\n") + "\n" + m.statusBar(pos)
}

// gutterWidth returns the display width of the line number gutter,
// including the trailing space. 0 when line numbers are off.
func (m Model) gutterWidth() int {
	if !m.opts.ShowLineNumbers {
		return 0
	}
	digits := len(fmt.Sprintf("%d", m.buf.LineCount()))
	if digits < 3 {
		digits = 3
	}
	return digits + 1
}

func (m Model) statusBar(pos buffer.Position) string {
	name := m.buf.Filename()
	if name == "" {
		name = "[no file]"
	}
	left := " " + name
	if m.buf.IsModified() {
		left += " ●"
	}
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}
	right := fmt.Sprintf("Ln %d, Col %d  %s  %s ", pos.Line+1, pos.Column+1, m.language, m.theme.Name)

	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	bar := truncate.String(left+strings.Repeat(" ", gap)+right, uint(m.width))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Color(styles.TokenStatusBarBg))).
		Foreground(lipgloss.Color(m.theme.Color(styles.TokenStatusBarFg))).
		Width(m.width).
		Render(bar)
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// expandedColumn maps a rune column in the raw line to the corresponding
// column in the tab-expanded line.
func expandedColumn(line string, col, tabWidth int) int {
	out := 0
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			out += tabWidth - out%tabWidth
		} else {
			out++
		}
		i++
	}
	return out
}

// visualToColumn maps a visual x position in the tab-expanded line back to
// a rune column in the raw line. Used for mouse hit testing.
func visualToColumn(line string, x, tabWidth int) int {
	visual := 0
	col := 0
	for _, r := range line {
		var w int
		if r == '\t' {
			w = tabWidth - visual%tabWidth
		} else {
			w = 1
		}
		if visual+w > x {
			return col
		}
		visual += w
		col++
	}
	return col
}

// insertCursor marks the grapheme cluster at the given rune column of the
// plain line with reverse video inside its highlighted rendering. A cursor
// past the end of the line renders as a reverse-video space.
func insertCursor(highlighted, plain string, col int) string {
	if col >= len([]rune(plain)) {
		return highlighted + cursorOn + " " + cursorOff
	}

	// Walk the highlighted string counting plain runes, skipping ANSI
	// escape sequences.
	idx := 0
	seen := 0
	for idx < len(highlighted) && seen < col {
		if highlighted[idx] == '\x1b' {
			idx = skipANSI(highlighted, idx)
			continue
		}
		_, size := utf8.DecodeRuneInString(highlighted[idx:])
		idx += size
		seen++
	}
	for idx < len(highlighted) && highlighted[idx] == '\x1b' {
		idx = skipANSI(highlighted, idx)
	}
	if idx >= len(highlighted) {
		return highlighted + cursorOn + " " + cursorOff
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(highlighted[idx:], -1)
	return highlighted[:idx] + cursorOn + cluster + cursorOff + highlighted[idx+len(cluster):]
}

func skipANSI(s string, i int) int {
	for i < len(s) && s[i] != 'm' {
		i++
	}
	if i < len(s) {
		i++ // include the 'm'
	}
	return i
}
