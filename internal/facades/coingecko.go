package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/metrics"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public CoinGecko API root.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DefaultTimeout bounds a single upstream round trip.
	DefaultTimeout = 5 * time.Second

	apiKeyHeader = "x-cg-demo-api-key"
	pricePath    = "/simple/price"
)

// UpstreamObserver records the latency and outcome of upstream calls.
type UpstreamObserver interface {
	ObserveUpstream(outcome string, d time.Duration)
}

// CoinGeckoFacade fetches rates from the CoinGecko simple price API.
type CoinGeckoFacade struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	observer UpstreamObserver
}

// NewCoinGeckoFacade creates a facade for the API rooted at baseURL.
// A non-positive timeout falls back to DefaultTimeout; observer may be nil.
func NewCoinGeckoFacade(baseURL, apiKey string, timeout time.Duration, observer UpstreamObserver) *CoinGeckoFacade {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CoinGeckoFacade{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		observer: observer,
	}
}

// GetRates fetches the rates of sourceID against targetIDs in one request.
// Empty targetIDs means every supported quote currency.
// Keys of the result are the uppercased target identifiers.
func (f *CoinGeckoFacade) GetRates(ctx context.Context, sourceID string, targetIDs []string) (rates map[string]decimal.Decimal, err error) {
	if len(targetIDs) == 0 {
		targetIDs = models.QuoteIDs()
	}
	vsCurrencies := strings.Join(targetIDs, ",")
	logger.Log.Debugw("fetching rates", "source", sourceID, "vs", vsCurrencies)

	start := time.Now()
	defer func() {
		if f.observer != nil {
			f.observer.ObserveUpstream(outcomeOf(err), time.Since(start))
		}
	}()

	q := url.Values{}
	q.Set("ids", sourceID)
	q.Set("vs_currencies", vsCurrencies)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+pricePath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set(apiKeyHeader, f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("upstream request failed", "source", sourceID, "error", err)
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("upstream returned unexpected status", "source", sourceID, "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var payload map[string]map[string]interface{}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}

	quotes, ok := payload[sourceID]
	if !ok || quotes == nil {
		logger.Log.Warnw("no data returned from API", "source", sourceID)
		return nil, fmt.Errorf("%w for: %s", models.ErrRateDataNotFound, sourceID)
	}

	rates = make(map[string]decimal.Decimal, len(quotes))
	for target, value := range quotes {
		number, ok := value.(json.Number)
		if !ok {
			logger.Log.Errorw("API returned a non-numeric value", "source", sourceID, "target", target, "value", value)
			return nil, fmt.Errorf("%w: %s=%v", models.ErrInvalidRateValue, target, value)
		}
		rate, err := decimal.NewFromString(number.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%s", models.ErrInvalidRateValue, target, number)
		}
		rates[strings.ToUpper(target)] = rate
	}

	logger.Log.Debugw("converted rates", "source", sourceID, "rates", rates)
	return rates, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, models.ErrRateDataNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, models.ErrInvalidRateValue):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
