package asciidoctor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_TwoLineHeadingExactLength(t *testing.T) {
	title := "Introduction"
	src := title + "\n" + strings.Repeat("=", len(title)) + "\n\ntext"
	doc, err := Parse(src)
	require.NoError(t, err)
	// A level-0 section opening the document is promoted to the header.
	sec := doc.Header
	require.NotNil(t, sec)
	assert.Equal(t, "Introduction", sec.Name)
	assert.Equal(t, 0, sec.Level)
}

func TestSection_TwoLineHeadingToleratesOffByOne(t *testing.T) {
	title := "Introductions"
	underline := strings.Repeat("-", len(title)-1)
	doc, err := Parse(title + "\n" + underline + "\n\ntext")
	require.NoError(t, err)
	sec, ok := doc.Elements[0].(*Section)
	require.True(t, ok)
	assert.Equal(t, title, sec.Name)
	assert.Equal(t, 1, sec.Level)
}

func TestSection_TwoLineHeadingRejectsTooDifferentLength(t *testing.T) {
	// The underline is too short relative to the title to be recognized as a
	// heading at all, so the first line falls through to an ordinary
	// paragraph instead.
	doc, err := Parse("Introduction\n--\n\ntext")
	require.NoError(t, err)
	blk, ok := doc.Elements[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, ParagraphBlock, blk.Kind)
}

func TestSection_TwoLineHeadingEmbeddedAnchor(t *testing.T) {
	title := "Intro [[custom]]"
	underline := strings.Repeat("-", len(title))
	doc, err := Parse(title + "\n" + underline + "\n\ntext")
	require.NoError(t, err)
	sec, ok := doc.Elements[0].(*Section)
	require.True(t, ok)
	assert.Equal(t, "Intro", sec.Name)
	assert.Equal(t, "custom", sec.Anchor)
	assert.Equal(t, "[custom]", doc.References["custom"])
}

func TestSection_FencePassthroughHidesHeadingLookalike(t *testing.T) {
	doc, err := Parse("== Sec\n\n----\n== Not A Heading\n----\n\nafter")
	require.NoError(t, err)
	sec, ok := doc.Elements[0].(*Section)
	require.True(t, ok)
	require.Len(t, sec.Blocks, 2)

	listing, ok := sec.Blocks[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, ListingBlock, listing.Kind)
	assert.Equal(t, []string{"== Not A Heading\n"}, listing.Lines)

	para, ok := sec.Blocks[1].(*Block)
	require.True(t, ok)
	assert.Equal(t, ParagraphBlock, para.Kind)
}

func TestSection_SameLevelHeadingEndsPreviousBody(t *testing.T) {
	doc, err := Parse("== A\n\ntext\n\n== B\n\nmore")
	require.NoError(t, err)
	require.Len(t, doc.Elements, 2)

	a, ok := doc.Elements[0].(*Section)
	require.True(t, ok)
	require.Len(t, a.Blocks, 1)
	para, ok := a.Blocks[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, []string{"text\n"}, para.Lines)
}
