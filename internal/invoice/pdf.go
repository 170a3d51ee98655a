package invoice

import (
	"bytes"

	"github.com/go-faster/errors"
	"github.com/go-pdf/fpdf"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
)

// RenderPDF executes a Document's drawing commands into PDF bytes.
// The whole artifact is produced in memory; on any failure nothing is
// handed to the caller.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	// Amounts carry the ₦ glyph; translate to the core-font codepage.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch v := op.(type) {
			case Rect:
				pdf.SetFillColor(235, 235, 235)
				pdf.Rect(v.X, v.Y, v.W, v.H, "F")
			case Text:
				style := ""
				if v.Bold {
					style = "B"
				}
				pdf.SetFont("Helvetica", style, v.Size)
				s := tr(v.Value)
				x := v.X
				switch v.Align {
				case AlignRight:
					x -= pdf.GetStringWidth(s)
				case AlignCenter:
					x -= pdf.GetStringWidth(s) / 2
				}
				pdf.Text(x, v.Y, s)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}
	return buf.Bytes(), nil
}

// Generate builds and renders the invoice for an order, returning the
// conventional filename alongside the artifact.
func Generate(o *order.Order) (string, []byte, error) {
	doc, err := Build(o)
	if err != nil {
		return "", nil, err
	}
	data, err := RenderPDF(doc)
	if err != nil {
		return "", nil, err
	}
	return Filename(o.ID), data, nil
}
