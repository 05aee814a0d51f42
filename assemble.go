package asciidoctor

import (
	"strings"

	"github.com/spf13/afero"
)

// Parse runs the full pipeline — Preprocessor, then the Block Dispatcher
// loop — over src using the local filesystem for any include:: resolution,
// and returns the resulting Document (§4.7, §6).
func Parse(src string) (*Document, error) {
	return ParseFS(nil, src)
}

// ParseFile reads path from the local filesystem and parses it.
func ParseFile(path string) (*Document, error) {
	fs := afero.NewOsFs()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return parseWithFS(fs, string(data))
}

// ParseFS runs Parse with an explicit include:: resolver; a nil fs defaults
// to the local filesystem (§6, §10.3). It exists mainly so tests and
// embedders can substitute afero.NewMemMapFs().
func ParseFS(fs afero.Fs, src string) (*Document, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return parseWithFS(fs, src)
}

func parseWithFS(fs afero.Fs, src string) (*Document, error) {
	rawLines := splitKeepEOL(src)

	pp := newPreprocessor(fs)
	lines, attrs, refs, diags, err := pp.run(rawLines)
	if err != nil {
		return nil, err
	}

	p := &parser{refs: refs, diags: diags}
	cur := newCursor(lines)
	elements := p.dispatchAll(cur, nil)

	doc := &Document{
		Elements:    elements,
		Attributes:  attrs,
		References:  p.refs,
		Source:      strings.Join(lines, ""),
		Diagnostics: p.diags,
	}

	// §4.7: a level-0 first section is promoted to the header, its own
	// blocks hoisted to precede the remaining top-level elements.
	if len(doc.Elements) > 0 {
		if header, ok := doc.Elements[0].(*Section); ok && header.Level == 0 {
			doc.Header = header
			hoisted := header.Blocks
			header.Blocks = nil
			doc.Elements = append(append([]DocElement{}, hoisted...), doc.Elements[1:]...)
		}
	}

	return doc, nil
}

// splitKeepEOL splits src into lines, each retaining its original trailing
// newline (or lack of one, for a final unterminated line), matching the
// Line Cursor's documented "line fragments including trailing newline"
// contract (§4.2).
func splitKeepEOL(src string) []string {
	var out []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			out = append(out, src[start:i+1])
			start = i + 1
		}
	}
	if start < len(src) {
		out = append(out, src[start:])
	}
	return out
}
