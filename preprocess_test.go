package asciidoctor

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPreprocess(t *testing.T, src string) ([]string, map[string]string, map[string]string) {
	t.Helper()
	pp := newPreprocessor(afero.NewMemMapFs())
	lines, attrs, refs, _, err := pp.run(splitKeepEOL(src))
	require.NoError(t, err)
	return lines, attrs, refs
}

func TestPreprocess_AttributeContinuation(t *testing.T) {
	// S2.
	_, attrs, _ := runPreprocess(t, ":foo: line1 +\n  line2\n\nbody")
	assert.Equal(t, "line1 line2", attrs["foo"])
}

func TestPreprocess_AttributeNameSanitized(t *testing.T) {
	_, attrs, _ := runPreprocess(t, ":My Weird-Name!: value\n")
	assert.Equal(t, "value", attrs["myweird-name"])
	for _, r := range "myweird-name" {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_')
	}
}

func TestPreprocess_ConditionalHidesWhenDefinedIfdef(t *testing.T) {
	// S3.
	lines, _, _ := runPreprocess(t, ":hide:\nifdef::hide[]\nX\nendif::hide[]\nY")
	assert.Equal(t, []string{"Y"}, lines)
}

func TestPreprocess_ConditionalIfndefInverse(t *testing.T) {
	lines, _, _ := runPreprocess(t, ":hide:\nifndef::hide[]\nX\nendif::hide[]\nY")
	assert.Equal(t, []string{"X\n", "Y"}, lines)
}

func TestPreprocess_ConditionalUndefinedAttribute(t *testing.T) {
	lines, _, _ := runPreprocess(t, "ifdef::missing[]\nX\nendif::missing[]\nY")
	assert.Equal(t, []string{"X\n", "Y"}, lines)
}

func TestPreprocess_CommentStripped(t *testing.T) {
	lines, _, _ := runPreprocess(t, "before\n// a comment\nafter")
	assert.Equal(t, []string{"before\n", "after"}, lines)
}

func TestPreprocess_Substitution(t *testing.T) {
	lines, _, _ := runPreprocess(t, ":name: Ferris\nHello {name?known}, {missing?unreached}!")
	assert.Equal(t, []string{"Hello known, !"}, lines)
}

func TestPreprocess_IncludeExpansion(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "included.adoc", []byte("inside\n"), 0o644))
	pp := newPreprocessor(fs)
	lines, _, _, _, err := pp.run(splitKeepEOL("before\ninclude::included.adoc[]\nafter"))
	require.NoError(t, err)
	assert.Equal(t, []string{"before\n", "inside\n", "after"}, lines)
}

func TestPreprocess_IncludeMissingIsFatal(t *testing.T) {
	pp := newPreprocessor(afero.NewMemMapFs())
	_, _, _, _, err := pp.run(splitKeepEOL("include::nope.adoc[]\n"))
	assert.Error(t, err)
}

func TestPreprocess_Bibliography(t *testing.T) {
	_, _, refs := runPreprocess(t, "- [[[ref1]]] First reference\n- [[[ref2,Author]]] Second reference\n")
	assert.Equal(t, "[ref1]", refs["ref1"])
	assert.Equal(t, "[ref2]", refs["ref2"])
}
