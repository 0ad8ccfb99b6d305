package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCurrency is matched by every UnsupportedCurrencyError.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrRateDataNotFound is returned when the upstream API has no data for the requested source.
	ErrRateDataNotFound = errors.New("currency data not found")
	// ErrInvalidRateValue is returned when the upstream API quotes a non-numeric rate.
	ErrInvalidRateValue = errors.New("non-numeric rate value received from API")
)

// UnsupportedCurrencyError reports a symbol that is not in the registry.
type UnsupportedCurrencyError struct {
	Symbol string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency symbol: %s", e.Symbol)
}

// Is lets errors.Is match the error against ErrUnsupportedCurrency.
func (e *UnsupportedCurrencyError) Is(target error) bool {
	return target == ErrUnsupportedCurrency
}
