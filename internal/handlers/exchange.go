package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=exchange.go -destination=mock_exchange.go -package=handlers

// Exchanger defines the interface that the service must implement.
type Exchanger interface {
	Exchange(ctx context.Context, from string, to []string, amount decimal.Decimal) (*models.ExchangeResponse, error)
}

// NewExchangeHandler handles fee-adjusted currency exchange requests.
// @Summary Exchange currency
// @Description Converts the amount into every target currency after deducting the fee. Targets without a quoted rate are omitted.
// @Tags currencies
// @Accept json
// @Produce json
// @Param request body models.ExchangeRequest true "Exchange Request"
// @Success 200 {object} models.ExchangeResponse "Exchange result"
// @Failure 400 {object} map[string]string "Validation errors by field"
// @Failure 404 {object} models.ErrorResponse "Unsupported currency or no rate data"
// @Failure 500 {object} models.ErrorResponse "Unexpected error"
// @Router /currencies/exchange [post]
func NewExchangeHandler(exchanger Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ExchangeRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Log.Warnw("failed to decode exchange request", "error", err)
			renderValidationErrors(w, r, map[string]string{"body": msgMalformedBody})
			return
		}

		if errs := req.Validate(); len(errs) > 0 {
			renderValidationErrors(w, r, errs)
			return
		}
		logger.Log.Infow("received exchange request", "from", req.From, "to", req.To, "amount", req.Amount)

		resp, err := exchanger.Exchange(r.Context(), req.From, req.To, req.Amount)
		if err != nil {
			renderError(w, r, err)
			return
		}

		logger.Log.Infow("exchange request processed", "from", resp.From, "conversions", len(resp.Conversions))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, resp)
	}
}
