// Package styles contains the themeable color tables consumed by the
// highlighter and the editor chrome.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Editor surface
	TokenForeground    ColorToken = "text.foreground"
	TokenBackground    ColorToken = "text.background"
	TokenSelection     ColorToken = "text.selection"
	TokenCursor        ColorToken = "cursor"
	TokenLineHighlight ColorToken = "line.highlight"

	// Syntax classes (queried by the highlighter via SyntaxColor)
	TokenSyntaxKeyword  ColorToken = "syntax.keyword"
	TokenSyntaxString   ColorToken = "syntax.string"
	TokenSyntaxComment  ColorToken = "syntax.comment"
	TokenSyntaxBracket  ColorToken = "syntax.bracket"
	TokenSyntaxNumber   ColorToken = "syntax.number"
	TokenSyntaxFunction ColorToken = "syntax.function"
	TokenSyntaxType     ColorToken = "syntax.type"

	// Gutter
	TokenGutterLineNumber ColorToken = "gutter.line_number"
	TokenGutterActive     ColorToken = "gutter.active"

	// Status bar
	TokenStatusBarBg ColorToken = "statusbar.bg"
	TokenStatusBarFg ColorToken = "statusbar.fg"
)

// syntaxClassDefaults are the per-class fallback colors used when a theme
// does not define a syntax token. Unknown classes fall through to the
// theme's foreground instead.
var syntaxClassDefaults = map[ColorToken]string{
	TokenSyntaxKeyword:  "#C678DD",
	TokenSyntaxString:   "#98C379",
	TokenSyntaxComment:  "#7F848E",
	TokenSyntaxBracket:  "#ABB2BF",
	TokenSyntaxNumber:   "#D19A66",
	TokenSyntaxFunction: "#61AFEF",
	TokenSyntaxType:     "#E5C07B",
}
