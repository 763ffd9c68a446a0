package syntax

import (
	"strconv"
	"strings"
	"unicode"
)

// ScanLine classifies a single line in one forward pass and returns tokens
// covering it. keywords may be nil (no keyword matches). The scan keeps a
// single in-string flag and a pending word; state never leaks between
// lines, so an unterminated quote only swallows the remainder of this line.
func ScanLine(line string, keywords map[string]bool) []Token {
	if line == "" {
		return nil
	}

	// A line whose trimmed form starts with the comment marker is one
	// comment span, leading whitespace included.
	if strings.HasPrefix(strings.TrimSpace(line), "//") {
		return []Token{{Type: TokenComment, Literal: line, Pos: 0}}
	}

	s := scanner{keywords: keywords}
	runes := []rune(line)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case c == '"':
			if s.inString {
				// Closing quote: flush quote-to-quote inclusive as one
				// string span.
				s.word = append(s.word, c)
				s.emit(TokenString, string(s.word))
				s.word = s.word[:0]
				s.inString = false
			} else {
				s.flushWord()
				s.word = append(s.word, c)
				s.inString = true
			}

		case c == '/' && i+1 < len(runes) && runes[i+1] == '/' && !s.inString:
			s.flushWord()
			s.emit(TokenComment, string(runes[i:]))
			return s.tokens

		case s.inString:
			// No escapes are interpreted inside a string.
			s.word = append(s.word, c)

		case unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_':
			s.word = append(s.word, c)

		default:
			s.flushWord()
			if isBracket(c) {
				s.emit(TokenBracket, string(c))
			} else {
				s.emit(TokenText, string(c))
			}
		}
	}

	// Leftover word at end of line, including an unterminated string, is
	// classified by the ordinary word rule.
	s.flushWord()
	return s.tokens
}

type scanner struct {
	keywords map[string]bool
	tokens   []Token
	word     []rune
	pos      int // rune offset of the next emit
	inString bool
}

// emit appends a token, coalescing adjacent unstyled runs.
func (s *scanner) emit(t TokenType, literal string) {
	n := len(s.tokens)
	if t == TokenText && n > 0 && s.tokens[n-1].Type == TokenText {
		s.tokens[n-1].Literal += literal
	} else {
		s.tokens = append(s.tokens, Token{Type: t, Literal: literal, Pos: s.pos})
	}
	s.pos += len([]rune(literal))
}

// flushWord classifies the pending word: keyword, then number (anything
// that parses as a float), then unstyled text.
func (s *scanner) flushWord() {
	if len(s.word) == 0 {
		return
	}
	word := string(s.word)
	s.word = s.word[:0]

	if s.keywords[word] {
		s.emit(TokenKeyword, word)
		return
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil {
		s.emit(TokenNumber, word)
		return
	}
	s.emit(TokenText, word)
}

func isBracket(c rune) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}
