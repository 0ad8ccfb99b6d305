package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCurrency(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   Currency
		found  bool
	}{
		{name: "upper", symbol: "BTC", want: Currency{Symbol: "BTC", SourceID: "bitcoin", QuoteID: "btc"}, found: true},
		{name: "lower", symbol: "usdt", want: Currency{Symbol: "USDT", SourceID: "tether", QuoteID: "usdt"}, found: true},
		{name: "mixed", symbol: "eTh", want: Currency{Symbol: "ETH", SourceID: "ethereum", QuoteID: "eth"}, found: true},
		{name: "unknown", symbol: "DOGE", found: false},
		{name: "empty", symbol: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindCurrency(tt.symbol)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteIDs(t *testing.T) {
	assert.Equal(t, []string{"btc", "eth", "usd", "usdt"}, QuoteIDs())
}

func TestUnsupportedCurrencyError(t *testing.T) {
	var err error = &UnsupportedCurrencyError{Symbol: "XYZ"}
	wrapped := fmt.Errorf("mapping: %w", err)

	assert.True(t, errors.Is(wrapped, ErrUnsupportedCurrency))
	assert.False(t, errors.Is(wrapped, ErrRateDataNotFound))
	assert.Contains(t, err.Error(), "XYZ")

	var target *UnsupportedCurrencyError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "XYZ", target.Symbol)
}

func TestExchangeResult_MarshalsNumbers(t *testing.T) {
	b, err := json.Marshal(ExchangeResult{
		Rate:   decimal.NewFromInt(10),
		Amount: decimal.NewFromInt(100),
		Result: decimal.NewFromInt(990),
		Fee:    decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rate":10,"amount":100,"result":990,"fee":1}`, string(b))
}
