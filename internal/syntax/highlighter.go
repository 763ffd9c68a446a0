package syntax

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/quill/internal/cachemanager"
	"github.com/zjrosen/quill/internal/styles"
)

// Highlighter renders text as lipgloss-styled spans. An instance is bound
// to exactly one language and one theme at construction; changing either
// means constructing a fresh highlighter. Highlight is pure and total over
// any input string.
type Highlighter struct {
	language  string
	keywords  map[string]bool
	styleFor  map[TokenType]lipgloss.Style
	lineCache *cachemanager.ReadThroughCache[string, string, string]
}

// New constructs a highlighter for a language tag and theme. Unknown tags
// (including "plain") have no keyword set and degrade to fewer matches,
// never to an error.
func New(language string, theme styles.Theme) *Highlighter {
	h := &Highlighter{
		language: language,
		keywords: Keywords(language),
		styleFor: map[TokenType]lipgloss.Style{
			TokenKeyword: styleFromColor(theme.SyntaxColor("keyword")),
			TokenString:  styleFromColor(theme.SyntaxColor("string")),
			TokenComment: styleFromColor(theme.SyntaxColor("comment")),
			TokenBracket: styleFromColor(theme.SyntaxColor("bracket")),
			TokenNumber:  styleFromColor(theme.SyntaxColor("number")),
		},
	}

	// Line render cache: a line's styling depends only on its own
	// characters, so identical lines (and unchanged lines across
	// keystrokes) render once. The observable output is byte-identical to
	// the uncached path.
	cache := cachemanager.NewInMemoryCacheManager[string, string](
		"highlight-lines", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	h.lineCache = cachemanager.NewReadThroughCache[string, string, string](
		cache,
		func(_ context.Context, line string) (string, error) {
			return h.renderLine(line), nil
		},
		false,
	)
	return h
}

func styleFromColor(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Language returns the language tag the highlighter was bound to.
func (h *Highlighter) Language() string {
	return h.language
}

// Highlight classifies text line by line and returns it re-rendered as
// styled spans, lines rejoined with '\n'. Stripping the styling yields the
// input unchanged.
func (h *Highlighter) Highlight(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		styled, err := h.lineCache.Get(context.Background(), line, line, cachemanager.DefaultExpiration)
		if err != nil {
			// The loader never fails; keep the output total anyway.
			styled = h.renderLine(line)
		}
		out[i] = styled
	}
	return strings.Join(out, "\n")
}

// ScanLine tokenizes a single line with the highlighter's keyword set.
func (h *Highlighter) ScanLine(line string) []Token {
	return ScanLine(line, h.keywords)
}

// Style returns the lipgloss style for a token type. Unstyled classes get
// the zero style, which renders text verbatim.
func (h *Highlighter) Style(t TokenType) lipgloss.Style {
	if s, ok := h.styleFor[t]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func (h *Highlighter) renderLine(line string) string {
	tokens := ScanLine(line, h.keywords)
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Type == TokenText {
			sb.WriteString(tok.Literal)
			continue
		}
		sb.WriteString(h.styleFor[tok.Type].Render(tok.Literal))
	}
	return sb.String()
}
