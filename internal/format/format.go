package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price is a monetary amount split for display: the currency symbol, the
// integer part and the cents are rendered as separate fragments.
type Price struct {
	Integer  string
	Decimals string
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice rounds amount to two places and groups the integer part with
// pt-BR thousands separators. Absent or zero amounts yield {"0", "00"}.
// Example: FormatPrice(1234.5) => {"1.234", "50"}
func FormatPrice(amount *decimal.Decimal) Price {
	if amount == nil || amount.IsZero() {
		return Price{Integer: "0", Decimals: "00"}
	}

	fixed := amount.StringFixed(2)
	integer, decimals, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(integer, 10, 64)
	if err != nil {
		// Out of int64 range, keep the digits ungrouped.
		return Price{Integer: integer, Decimals: decimals}
	}

	return Price{Integer: Integer(n), Decimals: decimals}
}

// Amount renders a full pt-BR amount with two decimals, e.g. "1.299,90".
func Amount(amount decimal.Decimal) string {
	p := FormatPrice(&amount)
	return p.Integer + "," + p.Decimals
}

// Integer groups n with pt-BR thousands separators.
func Integer(n int64) string {
	return printer.Sprintf("%d", n)
}
