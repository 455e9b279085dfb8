package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders monetary amounts for the configured locale and
// currency, e.g. cs-CZ / CZK. Every amount shown to the operator goes
// through the same formatter so reports and cart views agree.
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewCurrencyFormatter builds a formatter from a BCP 47 locale tag and an
// ISO 4217 currency code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, err
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

// Format renders the amount with the currency symbol and the locale's
// digit separators.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(v)))
}
