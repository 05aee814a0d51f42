package asciidoctor

import "regexp"

// patternRegistry is the named, read-only table of line-classification
// patterns used throughout the parser. It is built once (see patterns) and
// shared read-only across every parse.
type patternRegistry struct {
	anchor        *regexp.Regexp
	title         *regexp.Regexp
	levelTitle    *regexp.Regexp
	name          *regexp.Regexp
	line          *regexp.Regexp
	oblock        *regexp.Regexp
	listing       *regexp.Regexp
	litBlk        *regexp.Regexp
	sidebarBlk    *regexp.Regexp
	quote         *regexp.Regexp
	verse         *regexp.Regexp
	note          *regexp.Regexp
	example       *regexp.Regexp
	listingSource *regexp.Regexp
	ulist         *regexp.Regexp
	olist         *regexp.Regexp
	colist        *regexp.Regexp
	dlist         *regexp.Regexp
	litPar        *regexp.Regexp
	comment       *regexp.Regexp
	caption       *regexp.Regexp
	biblio        *regexp.Regexp
	attrContinue  *regexp.Regexp
}

// patterns is the process-wide pattern registry, compiled once and never
// mutated; every lookup below is a read against already-compiled regexps.
var patterns = &patternRegistry{
	anchor:     regexp.MustCompile(`^\[\[([^\[\]]+)\]\]\s*$`),
	title:      regexp.MustCompile(`^\.([^\s.].*)$`),
	levelTitle: regexp.MustCompile(`^(=+)\s+(.*)$`),
	name:       regexp.MustCompile(`^(\S.*)$`),
	// A heading underline never mixes characters: each alternative enforces
	// a single repeated rune, so no backreference is needed.
	line:          regexp.MustCompile(`^(?:=+|-+|~+|\^+|\++)\s*$`),
	oblock:        regexp.MustCompile(`^--\s*$`),
	listing:       regexp.MustCompile(`^-{4,}\s*$`),
	litBlk:        regexp.MustCompile(`^\.{4,}\s*$`),
	sidebarBlk:    regexp.MustCompile(`^\*{4,}\s*$`),
	quote:         regexp.MustCompile(`^_{4,}\s*$`),
	verse:         regexp.MustCompile(`^\[verse\]\s*$`),
	note:          regexp.MustCompile(`^\[NOTE\]\s*$`),
	example:       regexp.MustCompile(`^={4,}\s*$`),
	listingSource: regexp.MustCompile(`^\[source(?:,\s*([^\]]*))?\]\s*$`),
	ulist:         regexp.MustCompile(`^(-|\*{1,5})\s+(\S.*)$`),
	olist:         regexp.MustCompile(`^(\d+\.|\.{1,5})\s+(\S.*)$`),
	colist:        regexp.MustCompile(`^<(\d+)>\s+(\S.*)$`),
	dlist:         regexp.MustCompile(`^(\S.*?)(:{2,4})(?:\s+(\S.*))?\s*$`),
	litPar:        regexp.MustCompile(`^(\s+)(\S.*)$`),
	comment:       regexp.MustCompile(`^//.*$`),
	caption:       regexp.MustCompile(`^\[caption="(.*)"\]\s*$`),
	biblio:        regexp.MustCompile(`^-\s+\[\[\[([^,\]]+)(?:,[^\]]*)?\]\]\]\s*(.*)$`),
	attrContinue:  regexp.MustCompile(`\s\+\s*$`),
}

// headingLevel maps an underline/leading-equals rune to its section level.
func headingLevel(delim byte) int {
	switch delim {
	case '=':
		return 0
	case '-':
		return 1
	case '~':
		return 2
	case '^':
		return 3
	case '+':
		return 4
	default:
		return 0
	}
}
