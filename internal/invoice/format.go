package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// currencyGlyph prefixes every amount on the invoice.
const currencyGlyph = "₦"

// FormatNaira renders an amount with thousands separators and the
// currency glyph. The decimal's own precision is preserved; no
// rounding happens here.
func FormatNaira(d decimal.Decimal) string {
	return currencyGlyph + groupThousands(d.String())
}

// groupThousands inserts comma separators into the integer part of a
// plain decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	if lead > len(intPart) {
		lead = len(intPart)
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatLongDate renders the metadata date in unambiguous long month
// form, e.g. "January 2, 2006".
func FormatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Filename returns the download name for an order's invoice.
func Filename(orderID string) string {
	return fmt.Sprintf("invoice_%s.pdf", orderID)
}
