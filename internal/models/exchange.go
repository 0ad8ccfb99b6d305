package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and rates are rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ExchangeRequest represents the JSON body for a multi-target currency exchange
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Source currency symbol
	// required: true
	// example: BTC
	From string `json:"from"`

	// Target currency symbols
	// required: true
	// example: ["ETH","USDT"]
	To []string `json:"to"`

	// Amount to exchange, at least 1
	// required: true
	// example: 100
	Amount decimal.Decimal `json:"amount"`
}

// ExchangeResult holds the conversion of the requested amount into one target currency
// swagger:model ExchangeResult
type ExchangeResult struct {
	// Rate used for the conversion
	// example: 10
	Rate decimal.Decimal `json:"rate"`

	// Original amount before the fee
	// example: 100
	Amount decimal.Decimal `json:"amount"`

	// Converted amount after the fee
	// example: 990
	Result decimal.Decimal `json:"result"`

	// Fee deducted from the amount
	// example: 1
	Fee decimal.Decimal `json:"fee"`
}

// ExchangeResponse represents a successful exchange; targets without a rate are omitted
// swagger:model ExchangeResponse
type ExchangeResponse struct {
	// Source currency symbol
	// example: BTC
	From string `json:"from"`

	// Conversions keyed by target symbol
	Conversions map[string]ExchangeResult `json:"conversions"`
}

var minAmount = decimal.NewFromInt(1)

// Validate checks the request fields and returns a message per invalid field.
// An empty map means the request is valid.
func (r ExchangeRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.From) == "" {
		errs["from"] = "Source currency 'from' cannot be empty"
	}

	if len(r.To) == 0 {
		errs["to"] = "'to' list cannot be empty"
	} else {
		for _, symbol := range r.To {
			if strings.TrimSpace(symbol) == "" {
				errs["to"] = "'to' entries cannot be empty"
				break
			}
		}
	}

	if r.Amount.LessThan(minAmount) {
		errs["amount"] = "Amount must be at least 1"
	}

	return errs
}
