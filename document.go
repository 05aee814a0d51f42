// Package asciidoctor implements the parsing engine of a lightweight markup
// language: a line-oriented preprocessor, a recursive block dispatcher, a
// section hierarchy builder, and a list-segmentation subroutine, all sharing
// a single mutable line cursor. It produces a read-only tree of document
// nodes; rendering that tree (to HTML or anything else) is deliberately left
// to external collaborators via the Renderer extension point.
package asciidoctor

// BlockKind is the closed, small set of context tags a Block can carry. The
// tag is immutable after construction and determines the concrete shape of
// the Block's buffer (see Block's doc comment).
type BlockKind int

// The block kinds named by the specification's data model.
const (
	InvalidBlock BlockKind = iota
	ParagraphBlock
	LiteralBlock
	ListingBlock
	ExampleBlock
	QuoteBlock
	VerseBlock
	NoteBlock
	SidebarBlock
	OpenBlock
	UnorderedListBlock
	OrderedListBlock
	CalloutListBlock
	DefinitionListBlock
)

func (k BlockKind) String() string {
	switch k {
	case ParagraphBlock:
		return "paragraph"
	case LiteralBlock:
		return "literal"
	case ListingBlock:
		return "listing"
	case ExampleBlock:
		return "example"
	case QuoteBlock:
		return "quote"
	case VerseBlock:
		return "verse"
	case NoteBlock:
		return "note"
	case SidebarBlock:
		return "sidebar"
	case OpenBlock:
		return "oblock"
	case UnorderedListBlock:
		return "ulist"
	case OrderedListBlock:
		return "olist"
	case CalloutListBlock:
		return "colist"
	case DefinitionListBlock:
		return "dlist"
	default:
		return "invalid"
	}
}

// isListKind reports whether k's buffer is a sequence of ListItems rather
// than raw lines or child blocks.
func (k BlockKind) isListKind() bool {
	switch k {
	case UnorderedListBlock, OrderedListBlock, CalloutListBlock, DefinitionListBlock:
		return true
	default:
		return false
	}
}

// isContainerKind reports whether k's buffer is child Blocks produced by a
// recursive dispatch, rather than raw lines.
func (k BlockKind) isContainerKind() bool {
	switch k {
	case OpenBlock, QuoteBlock:
		return true
	default:
		return false
	}
}

// DocElement is implemented by the two things that can appear directly in a
// Document's top-level element sequence: *Block and *Section.
type DocElement interface {
	isDocElement()

	// elementTitle and elementName back Document.Title's derivation without
	// exposing a type switch at every call site.
	elementTitle() string
	elementName() string
}

// blockParent is implemented by whatever a Block's parent back-reference
// points at: a *Section when the block is one of a section's direct
// children, or another *Block when it was produced by a recursive dispatch
// inside an open/quote block. It exists purely for ancestor lookups; nothing
// ever walks "up" through it to mutate state.
type blockParent interface {
	isBlockParent()
}

// Block is a contiguous region of the document classified by a single
// BlockKind. Exactly one of Lines, Children, or Items is populated,
// according to Kind:
//
//   - ParagraphBlock, LiteralBlock, ListingBlock, ExampleBlock, VerseBlock,
//     NoteBlock, SidebarBlock: Lines holds the raw buffer.
//   - OpenBlock, QuoteBlock: Children holds the recursively-dispatched
//     child blocks.
//   - UnorderedListBlock, OrderedListBlock, CalloutListBlock,
//     DefinitionListBlock: Items holds the list's items.
type Block struct {
	Kind   BlockKind
	Parent blockParent

	Lines    []string
	Children []DocElement
	Items    []*ListItem

	Title      string
	Caption    string
	Anchor     string
	SourceType string
}

func (*Block) isDocElement()       {}
func (*Block) isBlockParent()      {}
func (b *Block) elementTitle() string {
	return b.Title
}
func (b *Block) elementName() string {
	return "" // Blocks have no Name; only Sections do.
}

// ListItem is one item of a UnorderedListBlock, OrderedListBlock,
// CalloutListBlock, or DefinitionListBlock.
type ListItem struct {
	// Level is the nesting depth captured from the marker: for ulist "-" and
	// "*" = 1, "**" = 2, ... up to 5; for olist a numbered "N." or "." = 1,
	// ".." = 2, ... up to 5. Callout and definition list items leave it 0.
	Level int

	// Term holds the term text for DefinitionListBlock items; empty for
	// every other kind.
	Term string

	// Content is the item's leading inline text, derived by flattening a
	// leading paragraph or literal child (§4.5); empty if the item's first
	// child block was of some other kind, or had no children at all.
	Content string

	Blocks []*Block
	Anchor string
}

// Section represents one heading-delimited region of the document: either a
// one-line (`= Title`) or two-line (underlined) heading, together with every
// line collected until a same-or-higher-level heading or end of input.
type Section struct {
	Name   string
	Level  int
	Anchor string
	Title  string
	Blocks []DocElement
	Parent *Section
}

func (*Section) isDocElement() {}
func (*Section) isBlockParent() {}
func (s *Section) elementTitle() string {
	return s.Title
}
func (s *Section) elementName() string {
	return s.Name
}

// Reference is one entry of the Reference Table: a mapping from an anchor,
// section, or bibliography identifier to its display form.
type Reference struct {
	ID      string
	Display string
}

// Diagnostic is a non-fatal, best-effort recovery note recorded by the
// Preprocessor or Block Dispatcher. Nothing in the parser ever branches on
// Diagnostics; it exists purely for callers who want visibility into what
// was silently recovered from (§7, §10.1).
type Diagnostic struct {
	Kind    string
	Line    int
	Message string
}

// Document is the top-level, frozen-after-construction result of a parse.
// All of its fields are populated once, during Parse/ParseFile, and are
// safe to read concurrently thereafter.
type Document struct {
	// Header is the promoted level-0 section, if the document started with
	// one; its own Blocks are hoisted into Elements and this field's Blocks
	// slice is left empty once promotion has run (§4.7).
	Header *Section

	// Elements is the ordered, top-level sequence of blocks and sections
	// remaining after any header promotion.
	Elements []DocElement

	// Attributes is the key→value attribute map collected and substituted
	// by the Preprocessor (the specification's "defines").
	Attributes map[string]string

	// References is the identifier→display-form reference table populated
	// by bibliography entries, anchors, and section IDs.
	References map[string]string

	// Source is the original input text after preprocessing (include
	// expansion, conditional evaluation, attribute substitution, and
	// comment stripping), rejoined.
	Source string

	// Diagnostics accumulates non-fatal, best-effort recovery notes; see
	// Diagnostic's doc comment.
	Diagnostics []Diagnostic
}

// Defines returns the document's attribute map, matching the
// specification's `defines` accessor name.
func (d *Document) Defines() map[string]string {
	return d.Attributes
}

// Title derives the document title: the first non-empty of header.Title,
// header.Name, the first element's title, or the first element's name.
func (d *Document) Title() string {
	if d.Header != nil {
		if d.Header.Title != "" {
			return d.Header.Title
		}
		if d.Header.Name != "" {
			return d.Header.Name
		}
	}
	if len(d.Elements) > 0 {
		e := d.Elements[0]
		if t := e.elementTitle(); t != "" {
			return t
		}
		if n := e.elementName(); n != "" {
			return n
		}
	}
	return ""
}

// Renderer is the extension point external rendering backends implement.
// The core ships no implementation of it: walking the tree to produce HTML
// (or any other output) is explicitly out of scope (§1, §6).
type Renderer interface {
	Render(doc *Document) ([]byte, error)
}
