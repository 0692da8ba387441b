package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CanonicalCurrency is the ledger currency every money field on an itinerary
// is expressed in.
const CanonicalCurrency = "INR"

// defaultRates maps a currency code to how many canonical units one unit of
// it is worth. Static table; the USD rate can be overridden via config.
var defaultRates = map[string]string{
	"USD": "83.25",
	"EUR": "90.50",
	"GBP": "105.75",
	"INR": "1",
	"JPY": "0.56",
	"AUD": "54.20",
	"CAD": "61.35",
}

// CurrencyConverter converts between traveler-facing currencies and the
// canonical ledger currency using a fixed-point rate table.
type CurrencyConverter struct {
	rates map[string]decimal.Decimal
}

// NewCurrencyConverter builds a converter from the static rate table.
// usdRate overrides the USD entry when positive.
func NewCurrencyConverter(usdRate float64) *CurrencyConverter {
	rates := make(map[string]decimal.Decimal, len(defaultRates))
	for code, rate := range defaultRates {
		rates[code] = decimal.RequireFromString(rate)
	}
	if usdRate > 0 {
		rates["USD"] = decimal.NewFromFloat(usdRate)
	}
	return &CurrencyConverter{rates: rates}
}

// Supports reports whether the converter has a rate for the given currency.
func (c *CurrencyConverter) Supports(currency string) bool {
	_, ok := c.rates[currency]
	return ok
}

// Rate returns how many canonical units one unit of the currency is worth.
func (c *CurrencyConverter) Rate(currency string) (float64, error) {
	rate, ok := c.rates[currency]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", currency)
	}
	f, _ := rate.Float64()
	return f, nil
}

// ToCanonical converts an amount in the given currency to whole canonical
// units, rounding to the nearest unit.
func (c *CurrencyConverter) ToCanonical(amount float64, from string) (int64, error) {
	rate, ok := c.rates[from]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", from)
	}
	return decimal.NewFromFloat(amount).Mul(rate).Round(0).IntPart(), nil
}

// FromCanonical converts whole canonical units back to the given currency,
// rounded to two decimal places. Round-tripping an amount through ToCanonical
// and back lands within one canonical unit of the original.
func (c *CurrencyConverter) FromCanonical(amount int64, to string) (float64, error) {
	rate, ok := c.rates[to]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", to)
	}
	f, _ := decimal.NewFromInt(amount).Div(rate).Round(2).Float64()
	return f, nil
}
