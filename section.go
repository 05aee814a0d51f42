package asciidoctor

import (
	"regexp"

	"github.com/shurcooL/sanitized_anchor_name"
)

// embeddedAnchor matches a trailing `[[id]]` folded into a two-line
// heading's title text, e.g. "Introduction [[intro]]".
var embeddedAnchor = regexp.MustCompile(`^(.*\S)\s+\[\[([^\[\]]+)\]\]\s*$`)

// detectHeading peeks (never consumes) at the cursor front to recognize a
// one-line or two-line heading per §4.6, returning its level, name, and any
// embedded anchor id extracted from the title text.
func detectHeading(cur *cursor) (level int, name string, anchor string, ok bool) {
	t1 := trimEOL(cur.peek(0))
	if t1 == "" {
		return 0, "", "", false
	}

	if m := patterns.levelTitle.FindStringSubmatch(t1); m != nil {
		level = len(m[1]) - 1
		if level < 0 {
			level = 0
		}
		return level, m[2], "", true
	}

	if !patterns.name.MatchString(t1) {
		return 0, "", "", false
	}
	t2 := trimEOL(cur.peek(1))
	if t2 == "" || !patterns.line.MatchString(t2) {
		return 0, "", "", false
	}
	if diff := len(t1) - len(t2); diff < -1 || diff > 1 {
		return 0, "", "", false
	}

	level = headingLevel(t2[0])
	name = t1
	if m := embeddedAnchor.FindStringSubmatch(name); m != nil {
		name, anchor = m[1], m[2]
	}
	return level, name, anchor, true
}

// buildSection implements the Section Builder (§4.6): it consumes the
// heading line(s) already identified by detectHeading, resolves the
// section's anchor into the reference table, collects the section's body up
// to the next same-or-higher-level heading (or end of input), and
// recursively dispatches that body into the section's elements.
func (p *parser) buildSection(cur *cursor, parent blockParent, level int, name string, inlineAnchor, externalAnchor string) *Section {
	if patterns.levelTitle.MatchString(trimEOL(cur.peek(0))) {
		cur.pop() // one-line form: only L1.
	} else {
		cur.pop() // two-line form: title...
		cur.pop() // ...and underline.
	}

	sec := &Section{Name: name, Level: level}
	if parentSec, ok := parent.(*Section); ok {
		sec.Parent = parentSec
	}

	// Priority: an anchor embedded in the heading text itself, then one
	// captured from a preceding `[[id]]` line (rule 1's "steals it"),
	// then a default slug derived from the heading text.
	switch {
	case inlineAnchor != "":
		sec.Anchor = inlineAnchor
	case externalAnchor != "":
		sec.Anchor = externalAnchor
	default:
		sec.Anchor = sanitized_anchor_name.Create(name)
	}
	p.refs[sec.Anchor] = "[" + sec.Anchor + "]"

	body := p.collectSectionBody(cur, level)
	sec.Blocks = p.dispatchAll(newCursor(body), sec)
	return sec
}

// collectSectionBody gathers lines until a heading of level <= the current
// section's level is found (pushing it, and any anchor line that
// immediately preceded it, back onto cur) or the cursor is exhausted.
// Listing and example fences are passed through verbatim, closing fence
// included, without their contents being checked for heading shape.
func (p *parser) collectSectionBody(cur *cursor, level int) []string {
	var body []string
	for !cur.empty() {
		line := cur.peek(0)
		if isBlankLine(line) {
			body = append(body, cur.pop())
			continue
		}

		t := trimEOL(line)
		if patterns.listing.MatchString(t) || patterns.example.MatchString(t) {
			fence := cur.pop()
			body = append(body, fence)
			for !cur.empty() {
				l := cur.pop()
				body = append(body, l)
				if trimEOL(l) == t {
					break
				}
			}
			continue
		}

		if lvl, _, _, ok := detectHeading(cur); ok && lvl <= level {
			if n := len(body); n > 0 && patterns.anchor.MatchString(trimEOL(body[n-1])) {
				cur.unshift(body[n-1])
				body = body[:n-1]
			}
			break
		}

		body = append(body, cur.pop())
	}
	return body
}
