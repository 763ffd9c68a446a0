package buffer

import "strings"

// maxLeafSize bounds the rune count of a single leaf. Larger leaves are
// split on construction; adjacent small leaves are merged on concat so the
// tree does not degrade into single-rune leaves under heavy editing.
const maxLeafSize = 512

// node is an immutable rope node. Internal nodes have both children set and
// nil data; leaves have nil children. Nodes are never mutated after
// construction, so subtrees are freely shared between buffer snapshots.
type node struct {
	left, right *node
	data        []rune // leaf payload, nil for internal nodes
	length      int    // rune count of the whole subtree
	newlines    int    // '\n' count of the whole subtree
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

func countNewlines(data []rune) int {
	count := 0
	for _, r := range data {
		if r == '\n' {
			count++
		}
	}
	return count
}

func newLeaf(data []rune) *node {
	return &node{data: data, length: len(data), newlines: countNewlines(data)}
}

// build constructs a balanced rope from runes. The slice is retained by the
// resulting leaves and must not be mutated by the caller.
func build(runes []rune) *node {
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= maxLeafSize {
		return newLeaf(runes)
	}
	mid := len(runes) / 2
	return concat(build(runes[:mid:mid]), build(runes[mid:]))
}

// concat joins two ropes. Either side may be nil (the empty rope).
func concat(a, b *node) *node {
	if a == nil || a.length == 0 {
		return b
	}
	if b == nil || b.length == 0 {
		return a
	}
	if a.isLeaf() && b.isLeaf() && a.length+b.length <= maxLeafSize {
		merged := make([]rune, 0, a.length+b.length)
		merged = append(merged, a.data...)
		merged = append(merged, b.data...)
		return newLeaf(merged)
	}
	return &node{
		left:     a,
		right:    b,
		length:   a.length + b.length,
		newlines: a.newlines + b.newlines,
	}
}

// split divides a rope into [0, i) and [i, length). Untouched subtrees are
// shared with the input; i is assumed to be within [0, length].
func split(n *node, i int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf() {
		if i <= 0 {
			return nil, n
		}
		if i >= n.length {
			return n, nil
		}
		return newLeaf(n.data[:i:i]), newLeaf(n.data[i:])
	}
	if i < n.left.length {
		l, r := split(n.left, i)
		return l, concat(r, n.right)
	}
	l, r := split(n.right, i-n.left.length)
	return concat(n.left, l), r
}

// insertRope splices text in at rune offset i, returning a new rope.
func insertRope(n *node, i int, text []rune) *node {
	if len(text) == 0 {
		return n
	}
	l, r := split(n, i)
	return concat(concat(l, build(text)), r)
}

// deleteRope removes the rune range [i, i+count), returning a new rope.
func deleteRope(n *node, i, count int) *node {
	if count == 0 {
		return n
	}
	l, rest := split(n, i)
	_, r := split(rest, count)
	return concat(l, r)
}

func (n *node) writeTo(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		sb.WriteString(string(n.data))
		return
	}
	n.left.writeTo(sb)
	n.right.writeTo(sb)
}

// appendRange appends the runes in [start, end) to out.
func (n *node) appendRange(start, end int, out []rune) []rune {
	if n == nil || start >= end || start >= n.length {
		return out
	}
	if end > n.length {
		end = n.length
	}
	if n.isLeaf() {
		return append(out, n.data[start:end]...)
	}
	if start < n.left.length {
		out = n.left.appendRange(start, min(end, n.left.length), out)
	}
	if end > n.left.length {
		out = n.right.appendRange(max(0, start-n.left.length), end-n.left.length, out)
	}
	return out
}

// lineStart returns the rune offset where the given 0-based line begins.
// Callers must ensure line <= n.newlines.
func (n *node) lineStart(line int) int {
	if line == 0 {
		return 0
	}
	if n.isLeaf() {
		seen := 0
		for i, r := range n.data {
			if r == '\n' {
				seen++
				if seen == line {
					return i + 1
				}
			}
		}
		return n.length
	}
	if line <= n.left.newlines {
		return n.left.lineStart(line)
	}
	return n.left.length + n.right.lineStart(line-n.left.newlines)
}
