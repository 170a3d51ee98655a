package invoice

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
)

// A4, millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0

	marginLeft  = 14.0
	marginRight = pageWidth - 14.0
	contentTop  = 20.0
	// Rows never start below this line; the footer zone stays clear.
	tableFloor = 270.0

	rowHeight    = 8.0
	rowBaseline  = 5.5 // text baseline offset inside a row band
	bodyFontSize = 9.0

	// Column anchors. Description is left-aligned; money and qty
	// columns are right-aligned at their anchors.
	colDescX  = marginLeft + 2
	colPriceX = 140.0
	colQtyX   = 160.0
	colTotalX = marginRight - 2
)

// Static issuer identity printed on every invoice.
var issuerLines = []string{
	"WareLink Commerce Ltd.",
	"12 Adeola Odeku Street",
	"Victoria Island, Lagos",
	"support@warelink.ng",
}

const footerLine = "Thank you for your business!"

// Build lays out the complete invoice for an order. It is pure: same
// order in, same document out. A panic from malformed data (the order
// is backend input, not trusted) is converted into an error so the
// caller never sees a partial document.
func Build(o *order.Order) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = errors.Errorf("build invoice: %v", r)
		}
	}()
	if o == nil {
		return nil, errors.New("no order")
	}

	b := &builder{}
	b.newPage()

	b.title(o)
	b.issuerAndMeta(o)
	b.billTo(o)
	b.shipTo(o)
	endY := b.itemsTable(o)
	b.summary(o.TotalPrice, endY)
	b.footer()

	return &Document{Pages: b.pages}, nil
}

type builder struct {
	pages []Page
}

func (b *builder) newPage() {
	b.pages = append(b.pages, Page{})
}

func (b *builder) add(ops ...Op) {
	last := len(b.pages) - 1
	b.pages[last].Ops = append(b.pages[last].Ops, ops...)
}

func (b *builder) title(o *order.Order) {
	b.add(
		Text{X: marginLeft, Y: contentTop, Size: 18, Bold: true, Value: "INVOICE"},
		Text{X: marginLeft, Y: contentTop + 7, Size: 11, Value: "Order #" + o.ID},
	)
}

func (b *builder) issuerAndMeta(o *order.Order) {
	y := 38.0
	for _, line := range issuerLines {
		b.add(Text{X: marginLeft, Y: y, Size: bodyFontSize, Value: line})
		y += 5
	}

	meta := []string{
		"Date: " + FormatLongDate(o.CreatedAt),
		"Status: " + strings.ToUpper(string(o.Status)),
		"Payment: " + o.PaymentInfo,
	}
	y = 38.0
	for _, line := range meta {
		b.add(Text{X: marginRight, Y: y, Size: bodyFontSize, Align: AlignRight, Value: line})
		y += 5
	}
}

func (b *builder) billTo(o *order.Order) {
	b.add(
		Text{X: marginLeft, Y: 64, Size: 10, Bold: true, Value: "Bill To"},
		Text{X: marginLeft, Y: 70, Size: bodyFontSize, Value: o.Customer.FullName()},
		Text{X: marginLeft, Y: 75, Size: bodyFontSize, Value: o.Customer.Email},
	)
}

func (b *builder) shipTo(o *order.Order) {
	b.add(
		Text{X: marginLeft, Y: 85, Size: 10, Bold: true, Value: "Ship To"},
		Text{X: marginLeft, Y: 91, Size: bodyFontSize, Value: o.Address.Line1},
		Text{X: marginLeft, Y: 96, Size: bodyFontSize, Value: o.Address.City + ", " + o.Address.State},
		Text{X: marginLeft, Y: 101, Size: bodyFontSize, Value: "Phone: " + o.Address.Phone},
	)
}

func (b *builder) tableHeader(y float64) {
	b.add(Rect{X: marginLeft, Y: y, W: marginRight - marginLeft, H: rowHeight})
	base := y + rowBaseline
	b.add(
		Text{X: colDescX, Y: base, Size: bodyFontSize, Bold: true, Value: "Description"},
		Text{X: colPriceX, Y: base, Size: bodyFontSize, Bold: true, Align: AlignRight, Value: "Unit Price"},
		Text{X: colQtyX, Y: base, Size: bodyFontSize, Bold: true, Align: AlignRight, Value: "Qty"},
		Text{X: colTotalX, Y: base, Size: bodyFontSize, Bold: true, Align: AlignRight, Value: "Total"},
	)
}

// itemsTable flows one row per item across as many pages as needed,
// repeating the header band on each page. It returns the Y where the
// table ended so the summary can anchor below it.
func (b *builder) itemsTable(o *order.Order) float64 {
	y := 110.0
	b.tableHeader(y)
	y += rowHeight

	for _, item := range o.Items {
		if y+rowHeight > tableFloor {
			b.newPage()
			y = contentTop
			b.tableHeader(y)
			y += rowHeight
		}
		base := y + rowBaseline
		b.add(
			Text{X: colDescX, Y: base, Size: bodyFontSize, Value: item.Product.Name},
			Text{X: colPriceX, Y: base, Size: bodyFontSize, Align: AlignRight, Value: FormatNaira(item.Product.Price)},
			Text{X: colQtyX, Y: base, Size: bodyFontSize, Align: AlignRight, Value: strconv.Itoa(item.Quantity)},
			Text{X: colTotalX, Y: base, Size: bodyFontSize, Align: AlignRight, Value: FormatNaira(item.Total)},
		)
		y += rowHeight
	}
	return y
}

// summary renders subtotal, shipping and the emphasized grand total,
// anchored below the table's end; it breaks to a fresh page when the
// remaining space cannot hold it.
func (b *builder) summary(total decimal.Decimal, tableEnd float64) {
	const summaryHeight = 26.0
	y := tableEnd + 8
	if y+summaryHeight > tableFloor {
		b.newPage()
		y = contentTop
	}

	b.add(
		Text{X: colQtyX, Y: y, Size: 10, Align: AlignRight, Value: "Subtotal"},
		Text{X: colTotalX, Y: y, Size: 10, Align: AlignRight, Value: FormatNaira(total)},
		Text{X: colQtyX, Y: y + 6, Size: 10, Align: AlignRight, Value: "Shipping"},
		Text{X: colTotalX, Y: y + 6, Size: 10, Align: AlignRight, Value: FormatNaira(decimal.Zero)},
		Text{X: colQtyX, Y: y + 14, Size: 12, Bold: true, Align: AlignRight, Value: "Total"},
		Text{X: colTotalX, Y: y + 14, Size: 12, Bold: true, Align: AlignRight, Value: FormatNaira(total)},
	)
}

func (b *builder) footer() {
	b.add(Text{X: pageWidth / 2, Y: pageHeight - 10, Size: bodyFontSize, Align: AlignCenter, Value: footerLine})
}
