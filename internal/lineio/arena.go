// Package lineio provides a small arena allocator for source lines, adapted
// from a byte-arena/token pattern: lines are appended into one growable
// buffer and handed out as lightweight range tokens instead of individually
// heap-allocated strings. Taking tokens costs no allocation per line beyond
// the growth of the arena's buffer; Lines, which turns the tokens into
// strings, copies each line into a string of its own.
package lineio

import "bytes"

// Arena is an io.Writer that stores bytes in an internal buffer, allowing
// Token handles to be taken against the bytes written since the last Take.
type Arena struct {
	buf []byte
	cur int
}

// Write appends p to the arena's internal buffer.
func (a *Arena) Write(p []byte) (int, error) {
	a.buf = append(a.buf, p...)
	return len(p), nil
}

// WriteString appends s to the arena's internal buffer.
func (a *Arena) WriteString(s string) (int, error) {
	a.buf = append(a.buf, s...)
	return len(s), nil
}

// Take returns a Token referencing every byte written into the arena since
// the last Take.
func (a *Arena) Take() Token {
	t := Token{arena: a, start: a.cur, end: len(a.buf)}
	a.cur = t.end
	return t
}

// Reset discards all bytes from the arena, for reuse.
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
	a.cur = 0
}

// Token is a handle to a range of bytes written into an Arena.
//
// NOTE: it becomes invalid once the arena is Reset.
type Token struct {
	arena      *Arena
	start, end int
}

// Bytes returns a reference to the token's bytes within the arena's internal
// buffer. The caller must not retain the returned slice past the arena's
// next mutation.
func (t Token) Bytes() []byte {
	if t.arena == nil {
		return nil
	}
	return t.arena.buf[t.start:t.end]
}

// Text returns a string copy of the token's bytes.
func (t Token) Text() string {
	return string(t.Bytes())
}

// Len returns the number of bytes the token spans.
func (t Token) Len() int {
	return t.end - t.start
}

// SplitLines writes src into the arena and returns one Token per line,
// where a line runs up to and including its terminating "\n" (or "\r\n"),
// preserving the original terminator exactly as §4.2 requires. A final,
// unterminated fragment (if src does not end in a newline) is returned as
// its own trailing token.
func SplitLines(a *Arena, src []byte) []Token {
	var toks []Token
	for len(src) > 0 {
		i := bytes.IndexByte(src, '\n')
		var line []byte
		if i < 0 {
			line, src = src, nil
		} else {
			line, src = src[:i+1], src[i+1:]
		}
		a.Write(line)
		toks = append(toks, a.Take())
	}
	return toks
}

// Lines writes src into the arena, splits it with SplitLines, and returns
// the resulting tokens' text, in order. This is the convenience most
// callers (the Preprocessor's include expansion, in particular) want: a
// plain []string ready to seed or splice into a line cursor. Each string is
// a copy of its token's bytes. An empty src yields nil.
func Lines(a *Arena, src []byte) []string {
	toks := SplitLines(a, src)
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text()
	}
	return out
}
