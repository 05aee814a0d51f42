package asciidoctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_PeekPopUnshift(t *testing.T) {
	cur := newCursor([]string{"a\n", "b\n", "c\n"})

	assert.Equal(t, "a\n", cur.peek(0))
	assert.Equal(t, "b\n", cur.peek(1))
	assert.Equal(t, "", cur.peek(99))

	assert.Equal(t, "a\n", cur.pop())
	assert.Equal(t, "b\n", cur.peek(0))

	cur.unshift("a2\n")
	assert.Equal(t, "a2\n", cur.pop())
	assert.Equal(t, "b\n", cur.pop())
	assert.Equal(t, "c\n", cur.pop())
	assert.True(t, cur.empty())
	assert.Equal(t, "", cur.pop())
}

func TestCursor_UnshiftAtStart(t *testing.T) {
	cur := newCursor([]string{"a\n"})
	cur.unshift("z\n")
	require.Equal(t, "z\n", cur.pop())
	require.Equal(t, "a\n", cur.pop())
}

func TestCursor_SkipBlankIdempotent(t *testing.T) {
	cur := newCursor([]string{"\n", "  \n", "x\n"})
	cur.skipBlank()
	assert.Equal(t, "x\n", cur.peek(0))

	// §8 property 5: skip_blank∘skip_blank == skip_blank.
	cur.skipBlank()
	assert.Equal(t, "x\n", cur.peek(0))
}

func TestCursor_Remaining(t *testing.T) {
	cur := newCursor([]string{"a\n", "b\n"})
	assert.Equal(t, 2, cur.remaining())
	cur.pop()
	assert.Equal(t, 1, cur.remaining())
}
