// Package syntax implements the per-line lexical highlighter. Each line is
// classified independently in a single forward pass; there is no
// cross-line state, so multi-line constructs (block comments, multi-line
// strings) are deliberately not recognized.
package syntax

// TokenType represents the classification of a run of characters.
type TokenType int

const (
	// TokenText is an unstyled run: identifiers, operators, whitespace,
	// and anything else that is not a recognized class.
	TokenText TokenType = iota
	TokenKeyword
	TokenString
	TokenComment
	TokenBracket
	TokenNumber
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "TEXT"
	case TokenKeyword:
		return "KEYWORD"
	case TokenString:
		return "STRING"
	case TokenComment:
		return "COMMENT"
	case TokenBracket:
		return "BRACKET"
	case TokenNumber:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Class returns the theme token-class name used to resolve the token's
// color. TokenText has no class: it renders verbatim.
func (t TokenType) Class() string {
	switch t {
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	case TokenComment:
		return "comment"
	case TokenBracket:
		return "bracket"
	case TokenNumber:
		return "number"
	default:
		return ""
	}
}

// Token is a classified run of characters within a single line. Tokens
// returned by ScanLine are non-overlapping, sorted by Pos, and cover the
// whole line.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // rune offset within the line
}
