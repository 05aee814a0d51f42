package asciidoctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_OrderedWithExplicitNesting(t *testing.T) {
	doc, err := Parse(". a\n.. a1\n.. a2\n. b")
	require.NoError(t, err)
	blk, ok := doc.Elements[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, OrderedListBlock, blk.Kind)
	require.Len(t, blk.Items, 2)
	assert.Equal(t, "a", blk.Items[0].Content)
	require.Len(t, blk.Items[0].Blocks, 2)
}

func TestList_Callout(t *testing.T) {
	doc, err := Parse("<1> first step\n<2> second step")
	require.NoError(t, err)
	blk, ok := doc.Elements[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, CalloutListBlock, blk.Kind)
	require.Len(t, blk.Items, 2)
	assert.Equal(t, "first step", blk.Items[0].Content)
}

func TestList_DefinitionDoesNotMergeDifferentDelimiters(t *testing.T) {
	doc, err := Parse("Term:: Def\nSub::: NotMine")
	require.NoError(t, err)
	blk, ok := doc.Elements[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, DefinitionListBlock, blk.Kind)
	require.Len(t, blk.Items, 1)
	assert.Equal(t, "Term", blk.Items[0].Term)
	// The mismatched-delimiter term line stays inside the `::` item instead of
	// becoming a second item of this list; there it ends the item's leading
	// paragraph and forms a nested `:::` list of its own.
	assert.Equal(t, "Def", blk.Items[0].Content)
	require.Len(t, blk.Items[0].Blocks, 2)
	assert.Equal(t, DefinitionListBlock, blk.Items[0].Blocks[1].Kind)
}

func TestList_BlankLineAbsorbedBeforeContinuingItem(t *testing.T) {
	doc, err := Parse("* a\n\n* b")
	require.NoError(t, err)
	blk, ok := doc.Elements[0].(*Block)
	require.True(t, ok)
	require.Len(t, blk.Items, 2)
	assert.Equal(t, "a", blk.Items[0].Content)
	assert.Equal(t, "b", blk.Items[1].Content)
}

func TestList_LeadingDotEscapeStripped(t *testing.T) {
	doc, err := Parse("* .looks like a title\n")
	require.NoError(t, err)
	blk, ok := doc.Elements[0].(*Block)
	require.True(t, ok)
	assert.Equal(t, "looks like a title", blk.Items[0].Content)
}
