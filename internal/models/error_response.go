package models

import "time"

// ErrorResponse is returned for not-found and unexpected errors
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Time the error was produced
	Timestamp time.Time `json:"timestamp"`

	// Error message
	// example: Currency data not found for: bitcoin
	Message string `json:"message"`

	// Request path
	// example: /currencies/BTC
	Path string `json:"path"`

	// HTTP status code
	// example: 404
	Status int `json:"status"`
}
