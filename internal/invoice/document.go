// Package invoice turns a loaded order into a printable invoice.
//
// Layout and rendering are split: Build produces a Document, a flat
// sequence of drawing commands with resolved page breaks, and a
// backend (RenderPDF) executes those commands. The split keeps the
// layout arithmetic pure and testable without a PDF reader.
package invoice

// Align positions a text run relative to its X anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Op is a single drawing command.
type Op interface {
	op()
}

// Text is one text run at an absolute position, in millimetres from
// the top-left page corner.
type Text struct {
	X, Y  float64
	Size  float64
	Bold  bool
	Align Align
	Value string
}

func (Text) op() {}

// Rect is a filled rectangle, used for the table header band.
type Rect struct {
	X, Y, W, H float64
}

func (Rect) op() {}

// Page is one rendered page in order.
type Page struct {
	Ops []Op
}

// Document is the complete invoice as drawing commands.
type Document struct {
	Pages []Page
}
