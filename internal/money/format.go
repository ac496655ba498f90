// Package money renders decimal amounts as locale-aware currency strings.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults match the Indian rupee display the ledger started with.
const (
	DefaultSymbol = "₹"
	DefaultLocale = "en-IN"
)

// Formatter turns amounts into display strings like "-₹1,234.50".
type Formatter struct {
	printer *message.Printer
	symbol  string
	point   string
}

// NewFormatter builds a formatter for a BCP 47 locale and currency symbol.
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	printer := message.NewPrinter(tag)
	return &Formatter{
		printer: printer,
		symbol:  symbol,
		point:   decimalPoint(printer),
	}, nil
}

// Default returns the en-IN rupee formatter.
func Default() *Formatter {
	f, _ := NewFormatter(DefaultLocale, DefaultSymbol)
	return f
}

// Format renders amount with two decimals, locale grouping, and a leading
// minus sign for negative values. Only the integer part goes through the
// locale printer so no digits are lost to floating point.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	if rounded.LessThan(maxGrouped) {
		whole = f.printer.Sprintf("%d", rounded.IntPart())
	}
	return sign + f.symbol + whole + f.point + frac
}

// maxGrouped bounds amounts whose integer part fits an int64; larger ones are
// printed without grouping.
var maxGrouped = decimal.New(1, 18)

// decimalPoint returns the locale's decimal separator.
func decimalPoint(p *message.Printer) string {
	s := []rune(p.Sprintf("%.1f", 1.5))
	if len(s) != 3 {
		return "."
	}
	return string(s[1])
}

// Symbol returns the currency symbol in use.
func (f *Formatter) Symbol() string {
	return f.symbol
}
