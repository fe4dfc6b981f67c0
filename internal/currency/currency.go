package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// BRL is the local currency all dashboard figures are reported in.
	BRL = "BRL"
	// USD is the ad platform's billing currency.
	USD = "USD"
)

// Zero-decimal currencies per ISO 4217: no minor units (e.g. KRW, JPY)
var zeroDecimalCurrencies = map[string]bool{
	"CLP": true, "JPY": true, "KRW": true, "PYG": true,
	"VND": true, "XAF": true, "XOF": true,
}

var symbols = map[string]string{
	BRL: "R$",
	USD: "US$",
}

// IsZeroDecimal returns true for currencies with no decimal places (KRW, JPY, etc.)
func IsZeroDecimal(c string) bool {
	return zeroDecimalCurrencies[strings.ToUpper(c)]
}

// DecimalPlaces returns the number of decimal places for the currency.
func DecimalPlaces(c string) int32 {
	if IsZeroDecimal(c) {
		return 0
	}
	return 2
}

// Round rounds amount to the appropriate precision for the currency.
func Round(amount decimal.Decimal, c string) decimal.Decimal {
	return amount.Round(DecimalPlaces(c))
}

// Round2 rounds a ratio or percentage to two decimal places.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// Format renders amount the way Brazilian users read money: "R$ 1.234,56".
func Format(amount decimal.Decimal, c string) string {
	places := DecimalPlaces(c)
	s := amount.Abs().StringFixed(places)

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}

	sign := ""
	if amount.IsNegative() && !amount.Round(places).IsZero() {
		sign = "-"
	}
	sym, ok := symbols[strings.ToUpper(c)]
	if !ok {
		sym = strings.ToUpper(c)
	}
	return sign + sym + " " + b.String()
}
