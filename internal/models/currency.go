package models

import "strings"

// Currency describes a supported currency and how the upstream price API names it.
type Currency struct {
	Symbol   string // Display symbol, e.g. BTC
	SourceID string // Upstream coin identifier used when the currency is the source
	QuoteID  string // Upstream quote identifier used when the currency is a target
}

// SupportedCurrencies is the closed registry of currencies the service accepts.
var SupportedCurrencies = []Currency{
	{Symbol: "BTC", SourceID: "bitcoin", QuoteID: "btc"},
	{Symbol: "ETH", SourceID: "ethereum", QuoteID: "eth"},
	{Symbol: "USD", SourceID: "usd", QuoteID: "usd"},
	{Symbol: "USDT", SourceID: "tether", QuoteID: "usdt"},
}

// FindCurrency looks a currency up by its display symbol, ignoring case.
func FindCurrency(symbol string) (Currency, bool) {
	for _, c := range SupportedCurrencies {
		if strings.EqualFold(c.Symbol, symbol) {
			return c, true
		}
	}
	return Currency{}, false
}

// QuoteIDs returns the quote identifiers of every supported currency in registry order.
func QuoteIDs() []string {
	ids := make([]string, 0, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		ids = append(ids, c.QuoteID)
	}
	return ids
}
