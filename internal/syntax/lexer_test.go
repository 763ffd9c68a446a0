package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanLine_Empty(t *testing.T) {
	require.Nil(t, ScanLine("", Keywords("rust")))
}

func TestScanLine_WholeLineComment(t *testing.T) {
	tests := []string{
		"// comment",
		"   // indented comment",
		"\t// tab indented",
		"//",
	}
	for _, line := range tests {
		tokens := ScanLine(line, Keywords("rust"))
		require.Len(t, tokens, 1, "line %q", line)
		require.Equal(t, TokenComment, tokens[0].Type)
		require.Equal(t, line, tokens[0].Literal, "comment span keeps leading whitespace")
		require.Equal(t, 0, tokens[0].Pos)
	}
}

func TestScanLine_KeywordNumberAndPlainRuns(t *testing.T) {
	tokens := ScanLine("let x = 5;", Keywords("rust"))
	require.Equal(t, []Token{
		{Type: TokenKeyword, Literal: "let", Pos: 0},
		{Type: TokenText, Literal: " x = ", Pos: 3},
		{Type: TokenNumber, Literal: "5", Pos: 8},
		{Type: TokenText, Literal: ";", Pos: 9},
	}, tokens)
}

func TestScanLine_StringSpanIncludesQuotes(t *testing.T) {
	tokens := ScanLine(`he said "hi"`, Keywords("rust"))
	require.Equal(t, []Token{
		{Type: TokenText, Literal: "he said ", Pos: 0},
		{Type: TokenString, Literal: `"hi"`, Pos: 8},
	}, tokens)
}

func TestScanLine_NoEscapesInsideStrings(t *testing.T) {
	// A backslash does not escape the quote; the first closing quote ends
	// the span.
	tokens := ScanLine(`"a\" b`, nil)
	require.Equal(t, TokenString, tokens[0].Type)
	require.Equal(t, `"a\"`, tokens[0].Literal)
}

func TestScanLine_CommentMarkerInsideStringIsText(t *testing.T) {
	tokens := ScanLine(`"http://x" end`, nil)
	require.Equal(t, TokenString, tokens[0].Type)
	require.Equal(t, `"http://x"`, tokens[0].Literal)
	require.Equal(t, TokenText, tokens[1].Type)
	require.Equal(t, " end", tokens[1].Literal)
}

func TestScanLine_TrailingComment(t *testing.T) {
	tokens := ScanLine("x = 1; // done", Keywords("rust"))
	require.Equal(t, []Token{
		{Type: TokenText, Literal: "x = ", Pos: 0},
		{Type: TokenNumber, Literal: "1", Pos: 4},
		{Type: TokenText, Literal: "; ", Pos: 5},
		{Type: TokenComment, Literal: "// done", Pos: 7},
	}, tokens)
}

func TestScanLine_Brackets(t *testing.T) {
	tokens := ScanLine("f(x[0]){}", nil)
	var brackets []string
	for _, tok := range tokens {
		if tok.Type == TokenBracket {
			brackets = append(brackets, tok.Literal)
		}
	}
	require.Equal(t, []string{"(", "[", "]", ")", "{", "}"}, brackets)
}

func TestScanLine_UnterminatedStringSwallowsRestOfLine(t *testing.T) {
	tokens := ScanLine(`say "oops ( // not a comment`, nil)
	// The leftover word starts with the quote, fails keyword and number
	// classification, and flushes unstyled. Nothing after the quote is
	// recognized as bracket or comment.
	require.Equal(t, []Token{
		{Type: TokenText, Literal: `say "oops ( // not a comment`, Pos: 0},
	}, tokens)
}

func TestScanLine_BlockCommentsAreNotRecognized(t *testing.T) {
	tokens := ScanLine("/* not a comment */", nil)
	for _, tok := range tokens {
		require.NotEqual(t, TokenComment, tok.Type)
	}
}

func TestScanLine_DottedNumberSplits(t *testing.T) {
	// '.' is not a word character, so 3.14 scans as two numbers around an
	// unstyled dot.
	tokens := ScanLine("3.14", nil)
	require.Equal(t, []Token{
		{Type: TokenNumber, Literal: "3", Pos: 0},
		{Type: TokenText, Literal: ".", Pos: 1},
		{Type: TokenNumber, Literal: "14", Pos: 2},
	}, tokens)
}

func TestScanLine_KeywordDependsOnLanguage(t *testing.T) {
	rust := ScanLine("fn function", Keywords("rust"))
	require.Equal(t, TokenKeyword, rust[0].Type)
	require.Equal(t, "fn", rust[0].Literal)

	js := ScanLine("fn function", Keywords("javascript"))
	require.Equal(t, TokenText, js[0].Type)
	last := js[len(js)-1]
	require.Equal(t, TokenKeyword, last.Type)
	require.Equal(t, "function", last.Literal)

	plain := ScanLine("fn function", Keywords("plain"))
	for _, tok := range plain {
		require.NotEqual(t, TokenKeyword, tok.Type)
	}
}

func TestScanLine_UnicodeWordRunes(t *testing.T) {
	tokens := ScanLine("héllo 日本語 _x1", nil)
	require.Equal(t, []Token{
		{Type: TokenText, Literal: "héllo 日本語 _x1", Pos: 0},
	}, tokens)
}

func TestScanLine_PositionsAreRuneOffsets(t *testing.T) {
	tokens := ScanLine(`日本 "x"`, nil)
	require.Equal(t, TokenString, tokens[1].Type)
	require.Equal(t, 3, tokens[1].Pos)
}

func TestScanLine_TokensCoverLine(t *testing.T) {
	lines := []string{
		"let x = 5;",
		`he said "hi"`,
		"   // comment",
		"fn main() { return 42 }",
		`mixed "str" // tail`,
		"()[]{}",
	}
	for _, line := range lines {
		tokens := ScanLine(line, Keywords("rust"))
		var sb strings.Builder
		pos := 0
		for _, tok := range tokens {
			require.Equal(t, pos, tok.Pos, "line %q", line)
			sb.WriteString(tok.Literal)
			pos += len([]rune(tok.Literal))
		}
		require.Equal(t, line, sb.String(), "tokens must reassemble the line")
	}
}
