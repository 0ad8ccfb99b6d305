package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
)

//go:generate mockgen -source=rates.go -destination=mock_rates.go -package=handlers

// RatesGetter defines the interface that the service must implement.
type RatesGetter interface {
	GetFilteredRates(ctx context.Context, symbol string, filters []string) (*models.CurrencyRatesResponse, error)
}

// NewGetRatesHandler returns an HTTP handler reporting the rates of a currency.
// @Summary Get currency rates
// @Description Returns rates of the currency against every supported currency, or against the filter[] symbols only
// @Tags currencies
// @Produce json
// @Param currency path string true "Source currency symbol" example(BTC)
// @Param filter[] query []string false "Target symbols to keep" collectionFormat(multi)
// @Success 200 {object} models.CurrencyRatesResponse "Currency rates"
// @Failure 404 {object} models.ErrorResponse "Unsupported currency or no rate data"
// @Failure 500 {object} models.ErrorResponse "Unexpected error"
// @Router /currencies/{currency} [get]
func NewGetRatesHandler(svc RatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency := chi.URLParam(r, "currency")
		filters := r.URL.Query()["filter[]"]
		logger.Log.Infow("received rates request", "currency", currency, "filters", filters)

		resp, err := svc.GetFilteredRates(r.Context(), currency, filters)
		if err != nil {
			renderError(w, r, err)
			return
		}

		logger.Log.Infow("returning rates", "currency", resp.Source, "rates", resp.Rates)
		render.Status(r, http.StatusOK)
		render.JSON(w, r, resp)
	}
}
