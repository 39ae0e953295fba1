// Package finance computes document totals and formats monetary values for
// display. Parsing is deliberately lenient: malformed numeric input coerces
// to zero so a document always renders.
package finance

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one priced row of an itemized document.
type LineItem struct {
	Name     string
	Price    float64
	Quantity float64
	VAT      float64
}

// Totals is the computed money summary of a document.
type Totals struct {
	Subtotal  float64
	VATAmount float64
	Total     float64
}

// Itemized computes totals from line items. The subtotal is the exact sum of
// price times quantity. VAT applies the simple average of the per-line VAT
// percentages once to the aggregate subtotal rather than summing per-line
// VAT; downstream consumers depend on that exact behaviour.
func Itemized(items []LineItem) Totals {
	if len(items) == 0 {
		return Totals{}
	}
	subtotal := 0.0
	vatSum := 0.0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
		vatSum += item.VAT
	}
	avgVAT := vatSum / float64(len(items))
	vatAmount := subtotal * avgVAT / 100
	return Totals{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		Total:     subtotal + vatAmount,
	}
}

// Flat computes totals from a single amount and VAT percentage.
func Flat(amount, vatRate float64) Totals {
	vatAmount := amount * vatRate / 100
	return Totals{
		Subtotal:  amount,
		VATAmount: vatAmount,
		Total:     amount + vatAmount,
	}
}

// ParseAmount converts free-form numeric input to a float64, stripping
// currency symbols and digit separators. Anything unparsable becomes zero.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimLeft(cleaned, "£$€ ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatMoney renders a monetary value with the currency symbol and exactly
// two decimal places, rounding half up.
func FormatMoney(symbol string, value float64) string {
	if symbol == "" {
		symbol = "£"
	}
	return symbol + decimal.NewFromFloat(value).Round(2).StringFixed(2)
}

// FormatRate renders a VAT percentage, trimming a trailing ".0" for whole
// rates.
func FormatRate(value float64) string {
	text := decimal.NewFromFloat(value).Round(2).String()
	return text + "%"
}
