package asciidoctor

import (
	"strconv"
	"strings"
)

// listItemMatcher reports whether a line is one of this list's own item
// markers and, if so, at what nesting level. It's the concrete stand-in for
// §4.5's `list_types`/level-indicator concept: every list kind supplies one,
// and the List Segmenter uses it for both of the spec's two boundary
// conditions (rule 2's alt_ending and rule 3's shallower-level stop),
// unified below as "stop at any line whose level is <= the current item's".
type listItemMatcher func(line string) (level int, ok bool)

// collectItemLines implements the List Segmenter (§4.5): it extracts the
// lines of the *current* list item, including continuation and nested
// content, leaving the boundary line (if any) on the cursor.
//
//   - A deeper-level item of the same matcher is absorbed into the current
//     item's lines verbatim; the recursive dispatch over those lines is what
//     turns it into a nested child list (the "attached to the preceding
//     sibling" behaviour falls out naturally from that recursion).
//   - A same-or-shallower-level item ends the segment. Any other non-blank
//     line, whether or not it matches the matcher, is absorbed.
//   - A blank line ends the segment unless the next non-blank line is a
//     deeper item of this list, in which case the intervening blanks are
//     absorbed and collection continues. Blanks running to end of input, or
//     followed by a same-level sibling, stay on the cursor.
//   - Open-block (`--`) and listing (`----`) fences suspend every stop
//     condition until their matching close.
func collectItemLines(cur *cursor, isItem listItemMatcher, level int) []string {
	var seg []string
	var inOblock, inListing bool

	for !cur.empty() {
		line := cur.peek(0)
		t := trimEOL(line)

		switch {
		case patterns.oblock.MatchString(t):
			inOblock = !inOblock
			seg = append(seg, cur.pop())
			continue
		case patterns.listing.MatchString(t):
			inListing = !inListing
			seg = append(seg, cur.pop())
			continue
		}
		if inOblock || inListing {
			seg = append(seg, cur.pop())
			continue
		}

		if isBlankLine(line) {
			k := 0
			for k < cur.remaining() && isBlankLine(cur.peek(k)) {
				k++
			}
			if k >= cur.remaining() {
				break // nothing but blanks to end of input
			}
			if lvl, ok := isItem(trimEOL(cur.peek(k))); ok && lvl > level {
				for i := 0; i < k; i++ {
					seg = append(seg, cur.pop())
				}
				continue
			}
			break
		}

		if lvl, ok := isItem(t); ok {
			if lvl <= level {
				break
			}
			// Deeper item: absorbed, becomes nested-list content on
			// recursive dispatch of this item's buffer.
		}

		seg = append(seg, cur.pop())
	}
	return seg
}

// peekContinuingItem looks past a run of blank lines (without consuming
// them) for another same-level item of this list. It's what lets the
// top-level list-building loops treat a single blank line between two
// same-level items as still one list, rather than splitting into two: a
// blank line only ends collection of the *current item's* lines (see
// collectItemLines); whether it also ends the *list* is a separate question
// answered here.
func peekContinuingItem(cur *cursor, isItem listItemMatcher, level int) (skip int, ok bool) {
	k := 0
	for k < cur.remaining() && isBlankLine(cur.peek(k)) {
		k++
	}
	if k == 0 || k >= cur.remaining() {
		return 0, false
	}
	lvl, itemOK := isItem(trimEOL(cur.peek(k)))
	if !itemOK || lvl != level {
		return 0, false
	}
	return k, true
}

// buildListItem consumes one item's marker line plus its segment and
// recursively dispatches the result into the item's child blocks, flattening
// a leading paragraph/literal into Content per §4.5.
func (p *parser) buildListItem(cur *cursor, list *Block, isItem listItemMatcher, level int, contentOf func(string) (content string, ok bool)) *ListItem {
	marker := cur.pop()
	content, _ := contentOf(trimEOL(marker))
	content = strings.TrimPrefix(content, ".") // leading-dot escape strip

	rest := collectItemLines(cur, isItem, level)
	segLines := append([]string{content + "\n"}, rest...)

	item := &ListItem{}
	item.Blocks = p.dispatchBlocksOnly(newCursor(segLines), list)
	if len(item.Blocks) > 0 {
		first := item.Blocks[0]
		if first.Kind == ParagraphBlock || first.Kind == LiteralBlock {
			var flat []string
			for _, l := range first.Lines {
				flat = append(flat, strings.TrimSpace(l))
			}
			item.Content = strings.Join(flat, "\n")
		}
	}
	return item
}

func ulistLevel(t string) (int, bool) {
	m := patterns.ulist.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}
	if m[1] == "-" {
		return 1, true
	}
	return len(m[1]), true
}

func (p *parser) buildUlist(cur *cursor, parent blockParent) *Block {
	blk := &Block{Kind: UnorderedListBlock, Parent: parent}
	level := 0
	for !cur.empty() {
		lvl, ok := ulistLevel(trimEOL(cur.peek(0)))
		if !ok {
			if level == 0 {
				break
			}
			skip, cont := peekContinuingItem(cur, ulistLevel, level)
			if !cont {
				break
			}
			for i := 0; i < skip; i++ {
				cur.pop()
			}
			continue
		}
		if level == 0 {
			level = lvl
		}
		if lvl != level {
			break
		}
		item := p.buildListItem(cur, blk, ulistLevel, level, func(t string) (string, bool) {
			m := patterns.ulist.FindStringSubmatch(t)
			if m == nil {
				return "", false
			}
			return m[2], true
		})
		item.Level = level
		blk.Items = append(blk.Items, item)
	}
	return blk
}

func olistLevel(t string) (int, bool) {
	m := patterns.olist.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}
	marker := m[1]
	if _, err := strconv.Atoi(strings.TrimSuffix(marker, ".")); err == nil {
		return 1, true
	}
	return len(marker), true
}

func (p *parser) buildOlist(cur *cursor, parent blockParent) *Block {
	blk := &Block{Kind: OrderedListBlock, Parent: parent}
	level := 0
	for !cur.empty() {
		lvl, ok := olistLevel(trimEOL(cur.peek(0)))
		if !ok {
			if level == 0 {
				break
			}
			skip, cont := peekContinuingItem(cur, olistLevel, level)
			if !cont {
				break
			}
			for i := 0; i < skip; i++ {
				cur.pop()
			}
			continue
		}
		if level == 0 {
			level = lvl
		}
		if lvl != level {
			break
		}
		item := p.buildListItem(cur, blk, olistLevel, level, func(t string) (string, bool) {
			m := patterns.olist.FindStringSubmatch(t)
			if m == nil {
				return "", false
			}
			return m[2], true
		})
		item.Level = level
		blk.Items = append(blk.Items, item)
	}
	return blk
}

func colistLevel(t string) (int, bool) {
	if patterns.colist.MatchString(t) {
		return 1, true
	}
	return 0, false
}

func (p *parser) buildColist(cur *cursor, parent blockParent) *Block {
	blk := &Block{Kind: CalloutListBlock, Parent: parent}
	for !cur.empty() {
		if !patterns.colist.MatchString(trimEOL(cur.peek(0))) {
			if len(blk.Items) == 0 {
				break
			}
			skip, cont := peekContinuingItem(cur, colistLevel, 1)
			if !cont {
				break
			}
			for i := 0; i < skip; i++ {
				cur.pop()
			}
			continue
		}
		item := p.buildListItem(cur, blk, colistLevel, 1, func(t string) (string, bool) {
			m := patterns.colist.FindStringSubmatch(t)
			if m == nil {
				return "", false
			}
			return m[2], true
		})
		blk.Items = append(blk.Items, item)
	}
	return blk
}

// buildDlist implements rule 10: the term delimiter captured from this
// list's own first line parameterizes every subsequent item check, so a
// `::` list never absorbs a `:::` term as one of its own items.
func (p *parser) buildDlist(cur *cursor, parent blockParent) *Block {
	blk := &Block{Kind: DefinitionListBlock, Parent: parent}
	first := patterns.dlist.FindStringSubmatch(trimEOL(cur.peek(0)))
	if first == nil {
		return blk
	}
	delim := first[2]

	isItem := func(t string) (int, bool) {
		m := patterns.dlist.FindStringSubmatch(t)
		if m == nil || m[2] != delim {
			return 0, false
		}
		return 1, true
	}

	for !cur.empty() {
		if _, ok := isItem(trimEOL(cur.peek(0))); !ok {
			if len(blk.Items) == 0 {
				break
			}
			skip, cont := peekContinuingItem(cur, isItem, 1)
			if !cont {
				break
			}
			for i := 0; i < skip; i++ {
				cur.pop()
			}
			continue
		}
		marker := cur.pop()
		m := patterns.dlist.FindStringSubmatch(trimEOL(marker))
		term, def := m[1], m[3]

		rest := collectItemLines(cur, isItem, 1)
		segLines := rest
		if def != "" {
			segLines = append([]string{strings.TrimPrefix(def, ".") + "\n"}, rest...)
		}

		item := &ListItem{Term: term}
		item.Blocks = p.dispatchBlocksOnly(newCursor(segLines), blk)
		if len(item.Blocks) > 0 {
			first := item.Blocks[0]
			if first.Kind == ParagraphBlock || first.Kind == LiteralBlock {
				var flat []string
				for _, l := range first.Lines {
					flat = append(flat, strings.TrimSpace(l))
				}
				item.Content = strings.Join(flat, "\n")
			}
		}
		blk.Items = append(blk.Items, item)
	}
	return blk
}
