package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter renders headline amounts in the business currency
type MoneyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewMoneyFormatter creates a formatter for an ISO 4217 code and a BCP 47 locale
func NewMoneyFormatter(currencyCode, locale string) (*MoneyFormatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	return &MoneyFormatter{
		symbol:  p.Sprint(currency.Symbol(unit)),
		printer: p,
	}, nil
}

// Format renders v with two decimals and locale grouping. The sign leads
// the symbol, as in "-₪ 600.00".
func (f *MoneyFormatter) Format(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}
	return sign + f.symbol + " " + f.printer.Sprint(number.Decimal(v.InexactFloat64(), number.Scale(2)))
}
