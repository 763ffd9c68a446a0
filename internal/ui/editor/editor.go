// Package editor provides the text editing component: a viewport over a
// buffer snapshot with cursor movement, rune insertion and deletion, and
// syntax-highlighted rendering.
package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/styles"
	"github.com/zjrosen/quill/internal/syntax"
)

// Options configures editor behavior from the user's config.
type Options struct {
	TabWidth        int
	ShowLineNumbers bool
}

// DefaultOptions returns the built-in editor options.
func DefaultOptions() Options {
	return Options{TabWidth: 4, ShowLineNumbers: true}
}

// Model is the editing component. Every edit replaces the buffer snapshot;
// the previous snapshot stays valid for any render in flight.
type Model struct {
	buf      buffer.Buffer
	cursor   int // rune offset into the document
	scroll   int // first visible line
	width    int
	height   int
	language string
	theme    styles.Theme
	hl       *syntax.Highlighter
	opts     Options

	// desiredCol preserves the column across vertical movement through
	// shorter lines.
	desiredCol int

	statusMsg string
}

// New creates an editor over a buffer snapshot.
func New(buf buffer.Buffer, language string, theme styles.Theme, opts Options) Model {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	return Model{
		buf:      buf,
		language: language,
		theme:    theme,
		hl:       syntax.New(language, theme),
		opts:     opts,
	}
}

// Buffer returns the current buffer snapshot.
func (m Model) Buffer() buffer.Buffer {
	return m.buf
}

// SetBuffer replaces the buffer snapshot, clamping the cursor into range.
func (m Model) SetBuffer(buf buffer.Buffer) Model {
	m.buf = buf
	if m.cursor > buf.Len() {
		m.cursor = buf.Len()
	}
	return m.ensureCursorVisible()
}

// Position returns the derived cursor position.
func (m Model) Position() buffer.Position {
	return buffer.PositionOf(m.buf, m.cursor)
}

// SetCursorOffset moves the cursor to an absolute rune offset, clamped.
func (m Model) SetCursorOffset(offset int) Model {
	if offset < 0 {
		offset = 0
	}
	if offset > m.buf.Len() {
		offset = m.buf.Len()
	}
	m.cursor = offset
	m.desiredCol = m.Position().Column
	return m.ensureCursorVisible()
}

// SetSize updates the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m.ensureCursorVisible()
}

// Language returns the language tag the editor highlights with.
func (m Model) Language() string {
	return m.language
}

// Theme returns the active theme.
func (m Model) Theme() styles.Theme {
	return m.theme
}

// SetTheme swaps the theme and rebuilds the highlighter bound to it.
func (m Model) SetTheme(theme styles.Theme) Model {
	m.theme = theme
	m.hl = syntax.New(m.language, theme)
	return m
}

// SetStatusMessage sets a transient message shown in the status bar until
// the next call.
func (m Model) SetStatusMessage(msg string) Model {
	m.statusMsg = msg
	return m
}

// Update handles movement, editing and mouse messages. Application-level
// keys (save, reload, quit) are the caller's concern.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg), nil
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	km := keys.Editor
	switch {
	case key.Matches(msg, km.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		m.desiredCol = m.Position().Column
	case key.Matches(msg, km.Right):
		if m.cursor < m.buf.Len() {
			m.cursor++
		}
		m.desiredCol = m.Position().Column
	case key.Matches(msg, km.Up):
		m = m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m = m.moveVertical(1)
	case key.Matches(msg, km.Home):
		pos := m.Position()
		m.cursor = pos.Offset - pos.Column
		m.desiredCol = 0
	case key.Matches(msg, km.End):
		pos := m.Position()
		line, _ := m.buf.Line(pos.Line)
		m.cursor = pos.Offset - pos.Column + len([]rune(line))
		m.desiredCol = len([]rune(line))
	case key.Matches(msg, km.PageUp):
		m = m.moveVertical(-m.pageStride())
	case key.Matches(msg, km.PageDown):
		m = m.moveVertical(m.pageStride())
	case key.Matches(msg, km.Backspace):
		if m.cursor > 0 {
			m = m.applyDelete(m.cursor-1, 1)
			m.cursor--
			m.desiredCol = m.Position().Column
		}
	case key.Matches(msg, km.Delete):
		if m.cursor < m.buf.Len() {
			m = m.applyDelete(m.cursor, 1)
		}
	case key.Matches(msg, km.Enter):
		m = m.applyInsert("\n")
	case key.Matches(msg, km.Tab):
		m = m.applyInsert(strings.Repeat(" ", m.opts.TabWidth))
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if msg.Alt {
				break
			}
			m = m.applyInsert(string(msg.Runes))
		case tea.KeySpace:
			m = m.applyInsert(" ")
		}
	}
	return m.ensureCursorVisible()
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	line := m.scroll + msg.Y
	if line >= m.buf.LineCount() {
		line = m.buf.LineCount() - 1
	}
	if line < 0 {
		line = 0
	}
	text, _ := m.buf.Line(line)
	col := msg.X - m.gutterWidth()
	if col < 0 {
		col = 0
	}
	col = visualToColumn(text, col, m.opts.TabWidth)
	if n := len([]rune(text)); col > n {
		col = n
	}
	m.cursor = m.lineStartOffset(line) + col
	m.desiredCol = col
	return m.ensureCursorVisible()
}

func (m Model) applyInsert(text string) Model {
	next, err := m.buf.Insert(m.cursor, text)
	if err != nil {
		log.ErrorErr(log.CatBuffer, "insert failed", err, "offset", m.cursor)
		return m
	}
	m.buf = next
	m.cursor += len([]rune(text))
	m.desiredCol = m.Position().Column
	return m
}

func (m Model) applyDelete(offset, count int) Model {
	next, err := m.buf.Delete(offset, count)
	if err != nil {
		log.ErrorErr(log.CatBuffer, "delete failed", err, "offset", offset, "count", count)
		return m
	}
	m.buf = next
	return m
}

func (m Model) moveVertical(delta int) Model {
	pos := m.Position()
	target := pos.Line + delta
	if target < 0 {
		target = 0
	}
	if last := m.buf.LineCount() - 1; target > last {
		target = last
	}
	line, _ := m.buf.Line(target)
	col := m.desiredCol
	if n := len([]rune(line)); col > n {
		col = n
	}
	m.cursor = m.lineStartOffset(target) + col
	return m
}

// lineStartOffset returns the rune offset of the first character of a line.
func (m Model) lineStartOffset(line int) int {
	offset := 0
	for i := 0; i < line; i++ {
		text, _ := m.buf.Line(i)
		offset += len([]rune(text)) + 1 // +1 for the '\n'
	}
	return offset
}

func (m Model) pageStride() int {
	if h := m.contentHeight(); h > 1 {
		return h - 1
	}
	return 1
}

func (m Model) contentHeight() int {
	h := m.height - 1 // status bar
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) ensureCursorVisible() Model {
	h := m.contentHeight()
	if h == 0 {
		return m
	}
	line := m.Position().Line
	if line < m.scroll {
		m.scroll = line
	}
	if line >= m.scroll+h {
		m.scroll = line - h + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	return m
}
