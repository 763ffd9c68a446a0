// Package buffer implements the persistent text buffer at the heart of the
// editor. A Buffer is an immutable value backed by a copy-on-write rope of
// runes: every successful edit produces a new Buffer whose rope shares all
// untouched subtrees with its predecessor, so outstanding snapshots (render
// passes, highlight calls) keep observing the text they were handed.
//
// All indices are rune offsets, never bytes. This holds across Insert,
// Delete, Line and cursor arithmetic; mixing units silently corrupts
// non-ASCII documents.
package buffer

import "strings"

// Buffer is an immutable document snapshot. The zero value is an empty,
// unmodified buffer with no filename.
type Buffer struct {
	root     *node
	filename string
	modified bool
}

// New returns an empty buffer with no filename.
func New() Buffer {
	return Buffer{}
}

// FromText returns a buffer seeded with content. Loading is not an edit:
// the result reports IsModified() == false.
func FromText(content, filename string) Buffer {
	return Buffer{root: build([]rune(content)), filename: filename}
}

// Insert splices text in at the given rune offset and returns the new
// buffer. Returns ErrOutOfBounds when offset > Len(). Inserting the empty
// string is still an edit and marks the result modified.
func (b Buffer) Insert(offset int, text string) (Buffer, error) {
	if offset < 0 || offset > b.Len() {
		return Buffer{}, ErrOutOfBounds
	}
	return Buffer{
		root:     insertRope(b.root, offset, []rune(text)),
		filename: b.filename,
		modified: true,
	}, nil
}

// Delete removes the rune range [offset, offset+count) and returns the new
// buffer. Returns ErrOutOfBounds when offset+count > Len().
func (b Buffer) Delete(offset, count int) (Buffer, error) {
	if offset < 0 || count < 0 || offset+count > b.Len() {
		return Buffer{}, ErrOutOfBounds
	}
	return Buffer{
		root:     deleteRope(b.root, offset, count),
		filename: b.filename,
		modified: true,
	}, nil
}

// Text returns the full document contents. O(Len()); intended to be called
// once per render cycle, not per keystroke.
func (b Buffer) Text() string {
	var sb strings.Builder
	if b.root != nil {
		sb.Grow(b.root.length)
	}
	b.root.writeTo(&sb)
	return sb.String()
}

// Len returns the document length in runes.
func (b Buffer) Len() int {
	if b.root == nil {
		return 0
	}
	return b.root.length
}

// LineCount returns the number of lines. An empty document has exactly one
// line, and a document without a trailing newline still counts its final
// partial line.
func (b Buffer) LineCount() int {
	if b.root == nil {
		return 1
	}
	return b.root.newlines + 1
}

// Line returns the text of the given 0-based line without its terminator.
// The second result is false when index >= LineCount().
func (b Buffer) Line(index int) (string, bool) {
	if index < 0 || index >= b.LineCount() {
		return "", false
	}
	if b.root == nil {
		return "", true
	}
	start := b.root.lineStart(index)
	var end int
	if index < b.root.newlines {
		end = b.root.lineStart(index+1) - 1 // drop the '\n'
	} else {
		end = b.root.length
	}
	return string(b.root.appendRange(start, end, nil)), true
}

// Filename returns the associated filename, or "" when the buffer was not
// loaded from a file.
func (b Buffer) Filename() string {
	return b.filename
}

// IsModified reports whether any edit has been applied since the buffer was
// created. It is sticky: only constructing a fresh buffer resets it.
func (b Buffer) IsModified() bool {
	return b.modified
}
