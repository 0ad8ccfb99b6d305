package models

import "github.com/shopspring/decimal"

// ExchangeEvent is published to Kafka after a successful exchange.
type ExchangeEvent struct {
	EventID     string                    `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp   int64                     `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) of the exchange.
	From        string                    `json:"from"`        // From is the uppercased source symbol.
	Amount      decimal.Decimal           `json:"amount"`      // Amount is the requested amount before fees.
	Conversions map[string]ExchangeResult `json:"conversions"` // Conversions are the resolved targets.
}
