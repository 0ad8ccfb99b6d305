package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FilterRates keeps only the rates whose symbol appears in allowed.
// An empty allowed list returns rates unchanged.
func FilterRates(rates map[string]decimal.Decimal, allowed []string) map[string]decimal.Decimal {
	if len(allowed) == 0 {
		return rates
	}

	set := make(map[string]struct{}, len(allowed))
	for _, symbol := range allowed {
		set[strings.ToUpper(symbol)] = struct{}{}
	}

	filtered := make(map[string]decimal.Decimal, len(set))
	for symbol, rate := range rates {
		if _, ok := set[strings.ToUpper(symbol)]; ok {
			filtered[symbol] = rate
		}
	}
	return filtered
}
