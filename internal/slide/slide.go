// Package slide defines the in-memory deck model produced by the compiler
// and consumed by rendering backends.
package slide

// Deck is a compiled presentation.
type Deck struct {
	Title    string   // Deck title (from the first slide or the source filename)
	Slides   []*Slide // Slides in source order
	Warnings []string // Non-fatal issues collected during compilation
}

// Slide is one parsed and laid-out slide.
type Slide struct {
	Title string       // Slide title from a leading # or ## heading (may be empty)
	Body  []BodyItem   // Content blocks in exact source order
	Notes string       // Speaker notes from HTML comments, blank-line separated
	Flow  []Positioned // Body with assigned vertical geometry (set by layout)
}

// BodyItem is one typed content block within a slide. It is a closed set:
// Heading, Paragraph, List, Table, CodeBlock and Image. Consumers dispatch
// with a type switch.
type BodyItem interface {
	isBodyItem()
}

// Heading is a content heading (###..######). Slide titles (# and ##) are
// carried on Slide.Title, never in the body.
type Heading struct {
	Level int    // 3..6
	Text  string // Raw text; inline formatting resolved at render time
}

// Paragraph is a run of consecutive plain lines joined with single spaces.
type Paragraph struct {
	Text string
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
	Items   []string // Item text with markers stripped, continuations joined
}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Table is a parsed pipe table. Headers, Alignments and every row all have
// the same length.
type Table struct {
	HasHeader  bool
	Headers    []string
	Rows       [][]string
	Alignments []Alignment
}

// CodeBlock is a fenced code block with original indentation preserved.
type CodeBlock struct {
	Language string
	Code     string
}

// Image is an image reference. The path is carried as written; resolution
// against the document directory happens in the images collaborator, which
// also fills the pixel dimensions so layout can size the image.
type Image struct {
	Path string
	Alt  string

	// Probed pixel dimensions; zero when the file is missing or undecodable.
	Width  int64
	Height int64
}

func (*Heading) isBodyItem()   {}
func (*Paragraph) isBodyItem() {}
func (*List) isBodyItem()      {}
func (*Table) isBodyItem()     {}
func (*CodeBlock) isBodyItem() {}
func (*Image) isBodyItem()     {}

// Positioned is a body item with assigned vertical geometry, in inches.
type Positioned struct {
	Item   BodyItem
	Top    float64
	Height float64
}

// StyledRun is a fragment of text with inline formatting applied. Runs are
// derived on demand from raw text; they are never stored on body items.
type StyledRun struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

// TokenKind classifies a code token for syntax coloring.
type TokenKind int

const (
	TokenDefault TokenKind = iota
	TokenKeyword
	TokenString
	TokenComment
	TokenNumber
)

func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	case TokenComment:
		return "comment"
	case TokenNumber:
		return "number"
	}
	return "default"
}

// CodeToken is a fragment of code text with its syntax classification.
// Concatenating the Text of all tokens reconstructs the original code.
type CodeToken struct {
	Text string
	Kind TokenKind
}
