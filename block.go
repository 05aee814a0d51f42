package asciidoctor

import (
	"fmt"
	"strings"
)

// parser carries the state shared across one Parse/ParseFile call that isn't
// itself the cursor: the reference table being populated by anchors and
// section ids, and the diagnostics slice. A single parser is threaded by
// pointer through the Block Dispatcher, List Segmenter, and Section Builder.
type parser struct {
	refs  map[string]string
	diags []Diagnostic
}

// dispatchAll drives next_block in a loop until the cursor is exhausted,
// collecting every top-level element produced. It's the shared loop behind
// the Document Assembler, an oblock's recursive dispatch, and a quote
// block's recursive dispatch.
func (p *parser) dispatchAll(cur *cursor, parent blockParent) []DocElement {
	var out []DocElement
	for {
		elem, ok := p.nextBlock(cur, parent)
		if !ok {
			break
		}
		out = append(out, elem)
	}
	return out
}

// dispatchBlocksOnly is dispatchAll for contexts the data model types as
// []*Block (list item content): a Section produced here has no modeled
// place to go, so it's dropped rather than panicking on the type assertion.
func (p *parser) dispatchBlocksOnly(cur *cursor, parent blockParent) []*Block {
	var out []*Block
	for _, elem := range p.dispatchAll(cur, parent) {
		if b, ok := elem.(*Block); ok {
			out = append(out, b)
		}
	}
	return out
}

// nextBlock implements the Block Dispatcher (§4.4): next_block(cursor,
// parent) → Block | None. It returns (nil, false) iff the cursor is empty
// after blank-skipping; otherwise it consumes at least one line and returns
// a fully-constructed element parented to parent.
func (p *parser) nextBlock(cur *cursor, parent blockParent) (DocElement, bool) {
	var pendingAnchor, pendingTitle, pendingCaption, pendingSource string
	haveAnchor := false

	// Rules 1-5: a run of marker lines accumulates pending state and is
	// itself never the returned block; only the element after it is.
	for {
		cur.skipBlank()
		if cur.empty() {
			if haveAnchor {
				p.diags = append(p.diags, Diagnostic{
					Kind:    "dropped-anchor",
					Message: fmt.Sprintf("[[%s]] at end of input was never attached to a block", pendingAnchor),
				})
			}
			return nil, false
		}

		t1 := trimEOL(cur.peek(0))

		switch {
		case patterns.anchor.MatchString(t1):
			m := patterns.anchor.FindStringSubmatch(t1)
			cur.pop()
			pendingAnchor, haveAnchor = m[1], true
			p.refs[m[1]] = "[" + m[1] + "]"
			continue

		case patterns.comment.MatchString(t1):
			cur.pop()
			continue

		case patterns.title.MatchString(t1):
			m := patterns.title.FindStringSubmatch(t1)
			cur.pop()
			pendingTitle = m[1]
			continue

		case patterns.listingSource.MatchString(t1):
			m := patterns.listingSource.FindStringSubmatch(t1)
			cur.pop()
			pendingSource = m[1]
			continue

		case patterns.caption.MatchString(t1):
			m := patterns.caption.FindStringSubmatch(t1)
			cur.pop()
			pendingCaption = m[1]
			continue
		}
		break
	}

	// Rule 6: a section heading steals the pending anchor/title outright
	// and is handed to the Section Builder without consuming L1/L2 here.
	if level, name, inlineAnchor, ok := detectHeading(cur); ok {
		external := ""
		if haveAnchor {
			external = pendingAnchor
		}
		sec := p.buildSection(cur, parent, level, name, inlineAnchor, external)
		if sec.Title == "" {
			sec.Title = pendingTitle
		}
		return sec, true
	}

	t1 := trimEOL(cur.peek(0))
	var blk *Block

	switch {
	case patterns.oblock.MatchString(t1):
		// Rule 7.
		_, body, closed := consumeFence(cur)
		if !closed {
			p.diags = append(p.diags, Diagnostic{Kind: "unterminated-fence", Message: "-- open block never closed"})
		}
		body = stripTrailingBlank(body)
		blk = &Block{Kind: OpenBlock, Parent: parent}
		blk.Children = p.dispatchAll(newCursor(body), blk)

	case patterns.olist.MatchString(t1):
		// Rule 8 (olist half).
		blk = p.buildOlist(cur, parent)

	case patterns.colist.MatchString(t1):
		// Rule 8 (colist half).
		blk = p.buildColist(cur, parent)

	case patterns.ulist.MatchString(t1):
		// Rule 9.
		blk = p.buildUlist(cur, parent)

	case patterns.dlist.MatchString(t1):
		// Rule 10.
		blk = p.buildDlist(cur, parent)

	case patterns.verse.MatchString(t1):
		// Rule 11.
		cur.pop()
		blk = &Block{Kind: VerseBlock, Parent: parent, Lines: collectUntilBlank(cur)}

	case patterns.note.MatchString(t1):
		// Rule 12.
		cur.pop()
		blk = &Block{Kind: NoteBlock, Parent: parent, Lines: collectUntilBlank(cur)}

	case patterns.listing.MatchString(t1):
		// Rule 13 (listing half).
		_, body, closed := consumeFence(cur)
		if !closed {
			p.diags = append(p.diags, Diagnostic{Kind: "unterminated-fence", Message: "---- listing block never closed"})
		}
		blk = &Block{Kind: ListingBlock, Parent: parent, Lines: body}

	case patterns.example.MatchString(t1):
		// Rule 13 (example half).
		_, body, closed := consumeFence(cur)
		if !closed {
			p.diags = append(p.diags, Diagnostic{Kind: "unterminated-fence", Message: "==== example block never closed"})
		}
		blk = &Block{Kind: ExampleBlock, Parent: parent, Lines: body}

	case patterns.quote.MatchString(t1):
		// Rule 14.
		_, body, closed := consumeFence(cur)
		if !closed {
			p.diags = append(p.diags, Diagnostic{Kind: "unterminated-fence", Message: "____ quote block never closed"})
		}
		blk = &Block{Kind: QuoteBlock, Parent: parent}
		blk.Children = p.dispatchAll(newCursor(body), blk)

	case patterns.litBlk.MatchString(t1):
		// Rule 15.
		_, body, closed := consumeFence(cur)
		if !closed {
			p.diags = append(p.diags, Diagnostic{Kind: "unterminated-fence", Message: ".... literal block never closed"})
		}
		blk = &Block{Kind: LiteralBlock, Parent: parent, Lines: body}

	case patterns.litPar.MatchString(t1):
		// Rule 16: indentation alone opens it, no fence.
		blk = &Block{Kind: LiteralBlock, Parent: parent, Lines: collectLitPar(cur)}

	case patterns.sidebarBlk.MatchString(t1):
		// Rule 17.
		_, body, closed := consumeFence(cur)
		if !closed {
			p.diags = append(p.diags, Diagnostic{Kind: "unterminated-fence", Message: "**** sidebar block never closed"})
		}
		blk = &Block{Kind: SidebarBlock, Parent: parent, Lines: body}

	default:
		// Rule 18: the paragraph fallback.
		blk = p.buildParagraph(cur, parent, pendingSource)
	}

	if blk.Anchor == "" && haveAnchor {
		blk.Anchor = pendingAnchor
		p.refs[pendingAnchor] = "[" + pendingAnchor + "]"
	}
	if blk.Title == "" {
		blk.Title = pendingTitle
	}
	if blk.Caption == "" {
		blk.Caption = pendingCaption
	}
	if blk.SourceType == "" && blk.Kind == ListingBlock {
		blk.SourceType = pendingSource
	}

	return blk, true
}

// buildParagraph implements rule 18: a contiguous run of non-blank lines.
// The first line was already routed here because it matched none of rules
// 1-17; every subsequent line is held to the same test; the paragraph stops
// (pushing the triggering line back) the moment one of them would itself
// start a new block — most notably a listing or oblock fence appearing
// mid-paragraph, but equally a list item, a heading, or any other recognized
// marker that a blank-line-free run of text happens to run into.
func (p *parser) buildParagraph(cur *cursor, parent blockParent, pendingSource string) *Block {
	var lines []string
	first := true
	for !cur.empty() {
		line := cur.peek(0)
		if isBlankLine(line) {
			break
		}
		if !first && startsNewBlock(cur) {
			break
		}
		lines = append(lines, cur.pop())
		first = false
	}

	blk := &Block{Kind: ParagraphBlock, Parent: parent, Lines: lines}
	if len(lines) > 0 {
		firstLine := trimEOL(lines[0])
		switch {
		case strings.HasPrefix(firstLine, "NOTE: "):
			blk.Kind = NoteBlock
			rest := strings.TrimPrefix(lines[0], "NOTE: ")
			blk.Lines = append([]string{rest}, lines[1:]...)
		case pendingSource != "":
			blk.Kind = ListingBlock
			blk.SourceType = pendingSource
		}
	}
	return blk
}

// startsNewBlock reports whether the cursor's current front line matches any
// rule-1-through-17 pattern, i.e. whether a paragraph accumulator must stop
// rather than absorb it.
func startsNewBlock(cur *cursor) bool {
	t := trimEOL(cur.peek(0))
	if _, _, _, ok := detectHeading(cur); ok {
		return true
	}
	switch {
	case patterns.anchor.MatchString(t),
		patterns.comment.MatchString(t),
		patterns.title.MatchString(t),
		patterns.listingSource.MatchString(t),
		patterns.caption.MatchString(t),
		patterns.oblock.MatchString(t),
		patterns.olist.MatchString(t),
		patterns.colist.MatchString(t),
		patterns.ulist.MatchString(t),
		patterns.dlist.MatchString(t),
		patterns.verse.MatchString(t),
		patterns.note.MatchString(t),
		patterns.listing.MatchString(t),
		patterns.example.MatchString(t),
		patterns.quote.MatchString(t),
		patterns.litBlk.MatchString(t),
		patterns.litPar.MatchString(t),
		patterns.sidebarBlk.MatchString(t):
		return true
	}
	return false
}

// collectUntilBlank grabs lines up to (not including) the next blank line or
// end of input — the shared shape of verse and note bodies (rules 11, 12).
func collectUntilBlank(cur *cursor) []string {
	var out []string
	for !cur.empty() && !isBlankLine(cur.peek(0)) {
		out = append(out, cur.pop())
	}
	return out
}

// collectLitPar grabs the run of lines matching lit_par, leaving the first
// non-matching line on the cursor (rule 16). Per §9, trailing blank lines
// inside the run are not specially absorbed; the run simply stops at the
// first line that fails the leading-whitespace test.
func collectLitPar(cur *cursor) []string {
	var out []string
	for !cur.empty() && patterns.litPar.MatchString(trimEOL(cur.peek(0))) {
		out = append(out, cur.pop())
	}
	return out
}

// consumeFence pops the opening fence line (already confirmed to match its
// class by the caller), then pops lines up to and including a line that is
// the *same literal* (§6: "each opens and closes by the same literal" — a
// six-dash listing fence only closes on another six dashes, not any run of
// four or more), returning the lines strictly between the two fences.
// closed is false if the cursor ran out first (§4.4's best-effort failure
// semantics: no error, the fence just swallows the rest of the input).
func consumeFence(cur *cursor) (open string, body []string, closed bool) {
	open = cur.pop()
	literal := trimEOL(open)
	for !cur.empty() {
		line := cur.pop()
		if trimEOL(line) == literal {
			return open, body, true
		}
		body = append(body, line)
	}
	return open, body, false
}

// stripTrailingBlank drops any run of blank lines at the end of lines.
func stripTrailingBlank(lines []string) []string {
	i := len(lines)
	for i > 0 && isBlankLine(lines[i-1]) {
		i--
	}
	return lines[:i]
}
