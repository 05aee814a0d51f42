package asciidoctor

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a verbose "<Kind attr=value...>" form when
// formatted with `%+v`, a terse "Kind" form otherwise.
func (b *Block) Format(f fmt.State, _ rune) {
	if b == nil {
		io.WriteString(f, "<nil Block>")
		return
	}
	if f.Flag('+') {
		fmt.Fprintf(f, "<%v", b.Kind)
		if b.Anchor != "" {
			fmt.Fprintf(f, " anchor=%q", b.Anchor)
		}
		if b.Title != "" {
			fmt.Fprintf(f, " title=%q", b.Title)
		}
		if b.Caption != "" {
			fmt.Fprintf(f, " caption=%q", b.Caption)
		}
		if b.SourceType != "" {
			fmt.Fprintf(f, " source=%q", b.SourceType)
		}
		switch {
		case b.Kind.isListKind():
			fmt.Fprintf(f, " items=%v", len(b.Items))
		case b.Kind.isContainerKind():
			fmt.Fprintf(f, " children=%v", len(b.Children))
		default:
			fmt.Fprintf(f, " lines=%v", len(b.Lines))
		}
		io.WriteString(f, ">")
		return
	}
	fmt.Fprint(f, b.Kind)
}

// Format writes a terse "Section(level) \"name\"" form, or a multi-line
// indented dump of the section's subtree when formatted with `%+v`.
func (s *Section) Format(f fmt.State, _ rune) {
	if s == nil {
		io.WriteString(f, "<nil Section>")
		return
	}
	if !f.Flag('+') {
		fmt.Fprintf(f, "Section(%v) %q", s.Level, s.Name)
		return
	}
	fmt.Fprintf(f, "Section(%v) %q anchor=%q", s.Level, s.Name, s.Anchor)
	for _, e := range s.Blocks {
		io.WriteString(f, "\n  ")
		writeIndented(f, e)
	}
}

// writeIndented formats e verbosely, indenting every line after the first so
// nested dumps read as a tree.
func writeIndented(f fmt.State, e DocElement) {
	text := fmt.Sprintf("%+v", e)
	for i, line := range splitLinesNoEOL(text) {
		if i > 0 {
			io.WriteString(f, "\n  ")
		}
		io.WriteString(f, line)
	}
}

func splitLinesNoEOL(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
