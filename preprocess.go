package asciidoctor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/sahwar/asciidoctor/internal/adocutil"
	"github.com/sahwar/asciidoctor/internal/lineio"
)

var (
	attrDefPattern  = regexp.MustCompile(`^:([^:]+):\s*(.*)$`)
	condSubstPattern = regexp.MustCompile(`\{([A-Za-z0-9_-]+)\?([^{}]*)\}`)
)

// preprocessor runs the Preprocessor (§4.3): it expands one level of file
// inclusions, evaluates conditional directives, collects attribute
// definitions (with continuation handling), substitutes attribute
// references, strips comments, and runs the bibliography pass.
type preprocessor struct {
	fs    afero.Fs
	arena lineio.Arena

	diags []Diagnostic
}

// newPreprocessor builds a preprocessor that resolves include:: targets
// against fs. A nil fs defaults to the local filesystem (§6, §10.3).
func newPreprocessor(fs afero.Fs) *preprocessor {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &preprocessor{fs: fs}
}

// run executes the full preprocessing pipeline over rawLines, returning the
// resulting lines, the final attribute map, the bibliography references
// collected along the way, and any non-fatal diagnostics. A non-nil error
// indicates one or more include:: targets could not be read, aggregated via
// multierror (§7, §10.1); when non-nil, the other return values are zeroed.
func (p *preprocessor) run(rawLines []string) (lines []string, attrs map[string]string, refs map[string]string, diags []Diagnostic, err error) {
	expanded, err := p.expandIncludes(rawLines)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	lines, attrs = p.evaluate(expanded)
	refs = p.collectBibliography(lines)
	diags = p.diags
	return lines, attrs, refs, diags, nil
}

// expandIncludes performs the one-pass, non-recursive include expansion
// described by §4.3 step 1.
func (p *preprocessor) expandIncludes(rawLines []string) ([]string, error) {
	var out []string
	var errs *multierror.Error
	for _, line := range rawLines {
		name, target, args, ok := adocutil.Directive(trimEOL(line))
		if !ok || name != "include" {
			out = append(out, line)
			continue
		}
		_ = args // no attribute-list handling beyond recognizing the brackets

		data, err := afero.ReadFile(p.fs, target)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("include::%s[]: %w", target, err))
			continue
		}
		out = append(out, lineio.Lines(&p.arena, data)...)
	}
	if errs.ErrorOrNil() != nil {
		return nil, errs.ErrorOrNil()
	}
	return out, nil
}

// evaluate runs the combined, single-pass attribute-definition and
// conditional-evaluation scan described by §4.3 steps 2-5. A single pass is
// required because conditionals must see the attribute map exactly as it
// stands at their position in the input (§5's ordering guarantee), which a
// separate attribute-collection pass followed by a separate conditional
// pass could not provide.
func (p *preprocessor) evaluate(src []string) (out []string, attrs map[string]string) {
	attrs = map[string]string{}
	cur := newCursor(src)

	var (
		inConditional bool
		conditionalOf string
		skipping      bool
	)

	lineNo := 0
	for !cur.empty() {
		lineNo++
		line := cur.pop()
		trimmed := trimEOL(line)

		if name, target, _, ok := adocutil.Directive(trimmed); ok {
			switch {
			case (name == "ifdef" || name == "ifndef") && !inConditional:
				// Nesting is unsupported (§9): only a non-conditional
				// position opens a new region.
				inConditional = true
				conditionalOf = target
				_, defined := attrs[sanitizeAttrName(target)]
				if name == "ifdef" {
					skipping = defined
				} else {
					skipping = !defined
				}
				continue

			case name == "endif" && inConditional && target == conditionalOf:
				inConditional = false
				skipping = false
				continue
			}
			// Any other directive-shaped line (including a nested
			// ifdef/ifndef, or an endif that doesn't match the open
			// region) falls through and is treated as ordinary text.
		}

		if skipping {
			continue
		}

		if m := attrDefPattern.FindStringSubmatch(trimmed); m != nil {
			p.readAttrDef(cur, attrs, m[1], m[2])
			continue
		}

		if patterns.comment.MatchString(trimmed) {
			continue
		}

		line = p.substitute(line, attrs)
		out = append(out, line)
	}

	if inConditional {
		p.diags = append(p.diags, Diagnostic{
			Kind: "unterminated-conditional", Line: lineNo,
			Message: fmt.Sprintf("missing endif::%s[]", conditionalOf),
		})
	}

	return out, attrs
}

// readAttrDef stores one `:NAME: VALUE` definition, absorbing any
// continuation lines per §4.3 step 3.
func (p *preprocessor) readAttrDef(cur *cursor, attrs map[string]string, name, value string) {
	value = strings.TrimRight(value, " \t")
	cont := patterns.attrContinue.MatchString(value)
	if cont {
		value = strings.TrimSuffix(strings.TrimRight(value, " \t"), "+")
		value = strings.TrimRight(value, " \t")
	}

	for cont {
		if cur.empty() {
			break
		}
		next := cur.pop()
		m := patterns.litPar.FindStringSubmatch(trimEOL(next))
		if m == nil {
			cur.unshift(next)
			break
		}
		frag := strings.TrimRight(m[2], " \t")
		cont = patterns.attrContinue.MatchString(frag)
		if cont {
			frag = strings.TrimSuffix(strings.TrimRight(frag, " \t"), "+")
			frag = strings.TrimRight(frag, " \t")
		}
		value = value + " " + frag
	}

	attrs[sanitizeAttrName(name)] = value
}

// substitute rewrites every `{NAME?VALUE}` occurrence in line, repeating
// until no match remains (§4.3 step 4).
func (p *preprocessor) substitute(line string, attrs map[string]string) string {
	for {
		loc := condSubstPattern.FindStringSubmatchIndex(line)
		if loc == nil {
			return line
		}
		name := line[loc[2]:loc[3]]
		value := line[loc[4]:loc[5]]
		var repl string
		if _, defined := attrs[sanitizeAttrName(name)]; defined {
			repl = value
		}
		line = line[:loc[0]] + repl + line[loc[1]:]
	}
}

// collectBibliography runs the second, dedicated scan of §4.3 step 6.
func (p *preprocessor) collectBibliography(lines []string) map[string]string {
	refs := map[string]string{}
	for _, line := range lines {
		m := patterns.biblio.FindStringSubmatch(trimEOL(line))
		if m == nil {
			continue
		}
		id := m[1]
		refs[id] = "[" + id + "]"
	}
	return refs
}

// sanitizeAttrName implements §4.3 step 3's NAME sanitization: strip every
// character outside {alphanumerics, '-', '_'} and lowercase the rest.
func sanitizeAttrName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		}
	}
	return b.String()
}
