package asciidoctor

import "strings"

// cursor is the Line Cursor: a mutable, ordered sequence of source lines
// supporting peek, pop, and push-back at the front. It is the single piece
// of shared state threaded through the Preprocessor, Block Dispatcher, List
// Segmenter, and Section Builder, all of which borrow it by exclusive
// mutable reference for the duration of a single call.
//
// lines holds every remaining (and already-consumed-but-retained-for-slack)
// line; head is the index of the current front of the deque. Popping just
// advances head; pushing back at the front first tries to reuse the slack
// left behind by prior pops (the common case, since unshift almost always
// follows a pop of the same line or a split of it) before falling back to a
// slice growth.
type cursor struct {
	lines []string
	head  int
}

// newCursor builds a cursor over the given lines. The slice is taken by
// reference, not copied: unshift may overwrite an already-consumed slot of
// it in place.
func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

// peek returns the k-th line ahead of the cursor front (0 is the current
// front) without consuming it. Out-of-range peeks return the empty-string
// sentinel.
func (c *cursor) peek(k int) string {
	i := c.head + k
	if i < 0 || i >= len(c.lines) {
		return ""
	}
	return c.lines[i]
}

// pop returns and removes the line at the front of the cursor. Popping past
// the end returns the empty-string sentinel and leaves the cursor empty.
func (c *cursor) pop() string {
	if c.empty() {
		return ""
	}
	line := c.lines[c.head]
	c.head++
	return line
}

// unshift pushes a line back onto the front of the cursor, to be returned by
// the next peek(0)/pop.
func (c *cursor) unshift(line string) {
	if c.head > 0 {
		c.head--
		c.lines[c.head] = line
		return
	}
	c.lines = append([]string{line}, c.lines...)
}

// empty reports whether the cursor has no more lines.
func (c *cursor) empty() bool {
	return c.head >= len(c.lines)
}

// remaining reports how many lines are left ahead of the cursor front.
func (c *cursor) remaining() int {
	return len(c.lines) - c.head
}

// skipBlank pops lines while the front is whitespace-only, leaving the
// cursor either empty or positioned at a non-blank line.
// skipBlank is idempotent: calling it twice in a row is the same as calling
// it once (§8 property 5), since after the first call the front is either
// gone or non-blank, and a non-blank front is never popped by a second call.
func (c *cursor) skipBlank() {
	for !c.empty() && isBlankLine(c.peek(0)) {
		c.pop()
	}
}

// isBlankLine reports whether line is empty or contains only whitespace,
// ignoring its trailing line terminator.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// trimEOL strips a single trailing line terminator (\r\n, \n, or \r) from s,
// for callers that need to compare or reassemble content without it.
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s
}
