package services

import (
	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
)

// MapSymbolToID translates a display symbol into the upstream identifier for its role.
// Sources map to the coin id, targets to the quote id.
func MapSymbolToID(symbol string, isSource bool) (string, error) {
	currency, ok := models.FindCurrency(symbol)
	if !ok {
		logger.Log.Warnw("unknown currency symbol received", "symbol", symbol)
		return "", &models.UnsupportedCurrencyError{Symbol: symbol}
	}
	if isSource {
		return currency.SourceID, nil
	}
	return currency.QuoteID, nil
}
