package asciidoctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatterns_Anchor(t *testing.T) {
	for _, tc := range []struct {
		line string
		id   string
		ok   bool
	}{
		{"[[intro]]\n", "intro", true},
		{"[[custom-id]]", "custom-id", true},
		{"[[bad\n", "", false},
		{"not an anchor\n", "", false},
	} {
		m := patterns.anchor.FindStringSubmatch(trimEOL(tc.line))
		if !tc.ok {
			assert.Nil(t, m, tc.line)
			continue
		}
		if assert.NotNil(t, m, tc.line) {
			assert.Equal(t, tc.id, m[1])
		}
	}
}

func TestPatterns_LevelTitle(t *testing.T) {
	m := patterns.levelTitle.FindStringSubmatch("== A Title")
	if assert.NotNil(t, m) {
		assert.Equal(t, "==", m[1])
		assert.Equal(t, "A Title", m[2])
	}
	assert.Nil(t, patterns.levelTitle.FindStringSubmatch("A Title"))
}

func TestPatterns_Line(t *testing.T) {
	assert.True(t, patterns.line.MatchString("===="))
	assert.True(t, patterns.line.MatchString("----"))
	assert.True(t, patterns.line.MatchString("~~~~"))
	assert.True(t, patterns.line.MatchString("^^^^"))
	assert.True(t, patterns.line.MatchString("++++"))
	assert.False(t, patterns.line.MatchString("=-=-"))
	assert.False(t, patterns.line.MatchString("abcd"))
}

func TestPatterns_UlistLevels(t *testing.T) {
	lvl, ok := ulistLevel("- a")
	assert.True(t, ok)
	assert.Equal(t, 1, lvl)

	lvl, ok = ulistLevel("** a")
	assert.True(t, ok)
	assert.Equal(t, 2, lvl)

	_, ok = ulistLevel("not a bullet")
	assert.False(t, ok)
}

func TestPatterns_OlistLevels(t *testing.T) {
	lvl, ok := olistLevel("1. a")
	assert.True(t, ok)
	assert.Equal(t, 1, lvl)

	lvl, ok = olistLevel(".. a")
	assert.True(t, ok)
	assert.Equal(t, 2, lvl)
}

func TestPatterns_Dlist(t *testing.T) {
	m := patterns.dlist.FindStringSubmatch("Term:: Definition")
	if assert.NotNil(t, m) {
		assert.Equal(t, "Term", m[1])
		assert.Equal(t, "::", m[2])
		assert.Equal(t, "Definition", m[3])
	}
}
