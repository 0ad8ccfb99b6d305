package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
)

const (
	msgUnexpected    = "An unexpected error occurred"
	msgMalformedBody = "Malformed request body"
)

// renderError translates a service error into a not-found or internal error response.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrUnsupportedCurrency),
		errors.Is(err, models.ErrRateDataNotFound),
		errors.Is(err, models.ErrInvalidRateValue):
		logger.Log.Warnw("resource not found", "path", r.URL.Path, "error", err)
		renderErrorResponse(w, r, http.StatusNotFound, err.Error())
	default:
		logger.Log.Errorw("internal server error", "path", r.URL.Path, "error", err)
		renderErrorResponse(w, r, http.StatusInternalServerError, msgUnexpected)
	}
}

func renderErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, models.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Path:      r.URL.Path,
		Status:    status,
	})
}

// renderValidationErrors writes a field to message mapping with status 400.
func renderValidationErrors(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	logger.Log.Warnw("validation error", "path", r.URL.Path, "errors", errs)
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errs)
}
