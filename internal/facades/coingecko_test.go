package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/metrics"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUpstream starts a fake price API answering every request with status and body.
func newUpstream(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCoinGeckoFacade_GetRates_Success(t *testing.T) {
	var gotPath, gotIDs, gotVs, gotKey string
	srv := newUpstream(t, http.StatusOK, `{"bitcoin": {"usd": 20000.0, "eth": 10.0}}`, func(r *http.Request) {
		gotPath = r.URL.Path
		gotIDs = r.URL.Query().Get("ids")
		gotVs = r.URL.Query().Get("vs_currencies")
		gotKey = r.Header.Get("x-cg-demo-api-key")
	})

	facade := NewCoinGeckoFacade(srv.URL, "secret", time.Second, nil)

	rates, err := facade.GetRates(context.Background(), "bitcoin", []string{"usd", "eth"})
	require.NoError(t, err)

	assert.Equal(t, "/simple/price", gotPath)
	assert.Equal(t, "bitcoin", gotIDs)
	assert.Equal(t, "usd,eth", gotVs)
	assert.Equal(t, "secret", gotKey)

	require.Len(t, rates, 2)
	assert.True(t, decimal.NewFromInt(20000).Equal(rates["USD"]))
	assert.True(t, decimal.NewFromInt(10).Equal(rates["ETH"]))
}

func TestCoinGeckoFacade_GetRates_DefaultTargets(t *testing.T) {
	var gotVs string
	srv := newUpstream(t, http.StatusOK, `{"tether": {"usd": 1.0001}}`, func(r *http.Request) {
		gotVs = r.URL.Query().Get("vs_currencies")
	})

	facade := NewCoinGeckoFacade(srv.URL+"/", "", time.Second, nil)

	rates, err := facade.GetRates(context.Background(), "tether", nil)
	require.NoError(t, err)
	assert.Equal(t, "btc,eth,usd,usdt", gotVs)
	assert.True(t, decimal.RequireFromString("1.0001").Equal(rates["USD"]))
}

func TestCoinGeckoFacade_GetRates_NoAPIKeyHeader(t *testing.T) {
	var hasKey bool
	srv := newUpstream(t, http.StatusOK, `{"bitcoin": {"usd": 1}}`, func(r *http.Request) {
		_, hasKey = r.Header["X-Cg-Demo-Api-Key"]
	})

	_, err := NewCoinGeckoFacade(srv.URL, "", time.Second, nil).GetRates(context.Background(), "bitcoin", []string{"usd"})
	require.NoError(t, err)
	assert.False(t, hasKey)
}

func TestCoinGeckoFacade_GetRates_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "empty_object", status: http.StatusOK, body: `{}`, wantErr: models.ErrRateDataNotFound},
		{name: "empty_body", status: http.StatusOK, body: ``, wantErr: models.ErrRateDataNotFound},
		{name: "missing_source", status: http.StatusOK, body: `{"ethereum": {"usd": 1}}`, wantErr: models.ErrRateDataNotFound},
		{name: "null_source", status: http.StatusOK, body: `{"bitcoin": null}`, wantErr: models.ErrRateDataNotFound},
		{name: "non_numeric", status: http.StatusOK, body: `{"bitcoin": {"usd": "non-numeric"}}`, wantErr: models.ErrInvalidRateValue},
		{name: "null_rate", status: http.StatusOK, body: `{"bitcoin": {"usd": null}}`, wantErr: models.ErrInvalidRateValue},
		{name: "bool_rate", status: http.StatusOK, body: `{"bitcoin": {"usd": 1, "eth": true}}`, wantErr: models.ErrInvalidRateValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, tt.status, tt.body, nil)
			facade := NewCoinGeckoFacade(srv.URL, "", time.Second, nil)

			rates, err := facade.GetRates(context.Background(), "bitcoin", []string{"usd"})
			assert.Nil(t, rates)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCoinGeckoFacade_GetRates_UnexpectedFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server_error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "rate_limited", status: http.StatusTooManyRequests, body: `{}`},
		{name: "malformed_json", status: http.StatusOK, body: `{"bitcoin": `},
		{name: "source_not_object", status: http.StatusOK, body: `{"bitcoin": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, tt.status, tt.body, nil)
			facade := NewCoinGeckoFacade(srv.URL, "", time.Second, nil)

			_, err := facade.GetRates(context.Background(), "bitcoin", []string{"usd"})
			require.Error(t, err)
			assert.False(t, errors.Is(err, models.ErrRateDataNotFound))
			assert.False(t, errors.Is(err, models.ErrInvalidRateValue))
		})
	}
}

func TestCoinGeckoFacade_GetRates_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	facade := NewCoinGeckoFacade(srv.URL, "", 50*time.Millisecond, nil)

	start := time.Now()
	_, err := facade.GetRates(context.Background(), "bitcoin", []string{"usd"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCoinGeckoFacade_GetRates_ObservesOutcome(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	ok := newUpstream(t, http.StatusOK, `{"bitcoin": {"usd": 1}}`, nil)
	empty := newUpstream(t, http.StatusOK, `{}`, nil)

	_, err := NewCoinGeckoFacade(ok.URL, "", time.Second, m).GetRates(context.Background(), "bitcoin", []string{"usd"})
	require.NoError(t, err)
	_, err = NewCoinGeckoFacade(empty.URL, "", time.Second, m).GetRates(context.Background(), "bitcoin", []string{"usd"})
	require.Error(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(m.UpstreamRequestDuration))
}

func TestNewCoinGeckoFacade_Defaults(t *testing.T) {
	facade := NewCoinGeckoFacade("", "", 0, nil)
	assert.Equal(t, DefaultBaseURL, facade.baseURL)
	assert.Equal(t, DefaultTimeout, facade.client.Timeout)
}
