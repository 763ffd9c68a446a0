package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPositionAt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   Position
	}{
		{"document start", "ab\ncd", 0, Position{Offset: 0, Line: 0, Column: 0}},
		{"mid first line", "ab\ncd", 1, Position{Offset: 1, Line: 0, Column: 1}},
		{"before newline", "ab\ncd", 2, Position{Offset: 2, Line: 0, Column: 2}},
		{"start of second line", "ab\ncd", 3, Position{Offset: 3, Line: 1, Column: 0}},
		{"mid second line", "ab\ncd", 4, Position{Offset: 4, Line: 1, Column: 1}},
		{"document end", "ab\ncd", 5, Position{Offset: 5, Line: 1, Column: 2}},
		{"empty document", "", 0, Position{}},
		{"only newline", "\n", 1, Position{Offset: 1, Line: 1, Column: 0}},
		{"multibyte column", "日本\n語x", 4, Position{Offset: 4, Line: 1, Column: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PositionAt(tt.text, tt.offset))
		})
	}
}

func TestPositionAt_ClampsOutOfRangeOffsets(t *testing.T) {
	require.Equal(t, Position{}, PositionAt("abc", -5))
	require.Equal(t, Position{Offset: 3, Line: 0, Column: 3}, PositionAt("abc", 99))
}

func TestPositionOf_MatchesPositionAt(t *testing.T) {
	b := FromText("ab\ncd", "")
	require.Equal(t, PositionAt(b.Text(), 4), PositionOf(b, 4))
}

func TestPosition_EqualitySuppressesRedundantUpdates(t *testing.T) {
	// The UI compares the full triple to decide whether to notify; the same
	// offset in the same text must recompute to an identical value.
	a := PositionAt("one\ntwo", 5)
	b := PositionAt("one\ntwo", 5)
	require.True(t, a == b)

	c := PositionAt("one\ntwo", 6)
	require.False(t, a == c)
}

func TestProperty_PositionFieldsStayConsistent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom([]rune("ab\nç"))).Draw(rt, "text")
		runes := []rune(text)
		offset := rapid.IntRange(0, len(runes)).Draw(rt, "offset")

		pos := PositionAt(text, offset)
		require.Equal(rt, offset, pos.Offset)

		// Line is the newline count before the offset.
		newlines := 0
		lineStart := 0
		for i := 0; i < offset; i++ {
			if runes[i] == '\n' {
				newlines++
				lineStart = i + 1
			}
		}
		require.Equal(rt, newlines, pos.Line)
		require.Equal(rt, offset-lineStart, pos.Column)
	})
}
