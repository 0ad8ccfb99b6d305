package models

import "github.com/shopspring/decimal"

// CurrencyRatesResponse represents the rates of a source currency against its targets
// swagger:model CurrencyRatesResponse
type CurrencyRatesResponse struct {
	// Source currency symbol
	// example: BTC
	Source string `json:"source"`

	// Rates keyed by target symbol
	Rates map[string]decimal.Decimal `json:"rates"`
}
