package buffer

// Position is a derived cursor snapshot: an absolute rune offset plus the
// line and column it falls on. It has no identity of its own; the three
// fields are always recomputed together from the document text, never
// mutated independently. Comparing full Position values lets the UI layer
// suppress redundant cursor-moved notifications.
type Position struct {
	Offset int // absolute rune offset into the document
	Line   int // 0-based, count of '\n' strictly before Offset
	Column int // 0-based, runes since the last '\n' before Offset
}

// PositionAt computes the Position for an absolute rune offset within text.
// Offsets outside [0, len] are clamped; the UI layer hands us offsets
// straight from input events and a stale event must not panic the editor.
func PositionAt(text string, offset int) Position {
	runes := []rune(text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	line := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Position{Offset: offset, Line: line, Column: offset - lineStart}
}

// PositionOf computes the Position for an offset within a buffer snapshot.
func PositionOf(b Buffer, offset int) Position {
	return PositionAt(b.Text(), offset)
}
