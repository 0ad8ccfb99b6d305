package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=exchange.go -destination=mock_exchange.go -package=services

// DefaultWorkers is used when the service is built with a non-positive worker count.
const DefaultWorkers = 8

// RateFetcher fetches rates of a source currency against a list of targets
// in a single upstream call. Keys of the result are uppercase target symbols.
type RateFetcher interface {
	GetRates(ctx context.Context, sourceID string, targetIDs []string) (map[string]decimal.Decimal, error)
}

// ConversionRecorder counts per-target conversion outcomes.
type ConversionRecorder interface {
	ConversionResolved(from, to string)
	ConversionSkipped(from, to string)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ExchangeService reports rates and performs fee-adjusted conversions.
type ExchangeService struct {
	fetcher       RateFetcher
	feePercentage decimal.Decimal
	workers       int
	recorder      ConversionRecorder
	kafkaWriter   KafkaWriter
}

// NewExchangeService creates a new ExchangeService.
// recorder and kafkaWriter may be nil.
func NewExchangeService(
	fetcher RateFetcher,
	feePercentage decimal.Decimal,
	workers int,
	recorder ConversionRecorder,
	kafkaWriter KafkaWriter,
) *ExchangeService {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &ExchangeService{
		fetcher:       fetcher,
		feePercentage: feePercentage,
		workers:       workers,
		recorder:      recorder,
		kafkaWriter:   kafkaWriter,
	}
}

// FeePercentage returns the fraction of every exchanged amount kept as a fee.
func (s *ExchangeService) FeePercentage() decimal.Decimal {
	return s.feePercentage
}

// GetFilteredRates returns the rates of symbol against the filter symbols,
// or against every supported currency when filters is empty.
func (s *ExchangeService) GetFilteredRates(ctx context.Context, symbol string, filters []string) (*models.CurrencyRatesResponse, error) {
	sourceID, err := MapSymbolToID(symbol, true)
	if err != nil {
		return nil, err
	}

	var targetIDs []string
	for _, f := range filters {
		id, err := MapSymbolToID(f, false)
		if err != nil {
			return nil, err
		}
		targetIDs = append(targetIDs, id)
	}
	logger.Log.Debugw("fetching filtered rates", "currency", symbol, "filters", filters)

	rates, err := s.fetcher.GetRates(ctx, sourceID, targetIDs)
	if err != nil {
		logger.Log.Warnw("failed to fetch rates", "currency", symbol, "error", err)
		return nil, err
	}

	return &models.CurrencyRatesResponse{
		Source: strings.ToUpper(symbol),
		Rates:  FilterRates(rates, filters),
	}, nil
}

// Exchange converts amount of fromSymbol into every symbol of toSymbols.
// Rates are fetched once; the per-target math runs concurrently and targets
// without a quoted rate are left out of the response.
func (s *ExchangeService) Exchange(
	ctx context.Context,
	fromSymbol string,
	toSymbols []string,
	amount decimal.Decimal,
) (*models.ExchangeResponse, error) {
	logger.Log.Infow("starting currency exchange", "from", fromSymbol, "to", toSymbols, "amount", amount)

	sourceID, err := MapSymbolToID(fromSymbol, true)
	if err != nil {
		return nil, err
	}
	targetIDs := make([]string, len(toSymbols))
	for i, symbol := range toSymbols {
		if targetIDs[i], err = MapSymbolToID(symbol, false); err != nil {
			return nil, err
		}
	}

	rates, err := s.fetcher.GetRates(ctx, sourceID, targetIDs)
	if err != nil {
		logger.Log.Warnw("failed to fetch rates for exchange", "from", fromSymbol, "error", err)
		return nil, err
	}
	logger.Log.Debugw("rates retrieved", "rates", rates, "feePercentage", s.feePercentage)

	from := strings.ToUpper(fromSymbol)

	// Each worker owns exactly one slot.
	results := make([]*models.ExchangeResult, len(toSymbols))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range toSymbols {
		i := i
		g.Go(func() error {
			results[i] = s.convert(from, strings.ToUpper(toSymbols[i]), strings.ToUpper(targetIDs[i]), rates, amount)
			return nil
		})
	}
	_ = g.Wait()

	conversions := make(map[string]models.ExchangeResult, len(results))
	for i, res := range results {
		if res != nil {
			conversions[strings.ToUpper(toSymbols[i])] = *res
		}
	}

	resp := &models.ExchangeResponse{From: from, Conversions: conversions}
	logger.Log.Infow("exchange completed",
		"from", from,
		"requested", len(toSymbols),
		"resolved", len(conversions),
	)

	s.publishExchange(ctx, amount, resp)

	return resp, nil
}

// convert computes one conversion. It returns nil when no rate was quoted for the target.
func (s *ExchangeService) convert(from, to, rateKey string, rates map[string]decimal.Decimal, amount decimal.Decimal) *models.ExchangeResult {
	rate, ok := rates[rateKey]
	if !ok {
		logger.Log.Warnw("no rate found for conversion", "from", from, "to", to)
		if s.recorder != nil {
			s.recorder.ConversionSkipped(from, to)
		}
		return nil
	}

	fee := amount.Mul(s.feePercentage)
	amountAfterFee := amount.Sub(fee)
	result := amountAfterFee.Mul(rate)

	logger.Log.Debugw("calculated exchange",
		"from", from,
		"to", to,
		"rate", rate,
		"fee", fee,
		"amountAfterFee", amountAfterFee,
		"result", result,
	)
	if s.recorder != nil {
		s.recorder.ConversionResolved(from, to)
	}

	return &models.ExchangeResult{
		Rate:   rate,
		Amount: amount,
		Result: result,
		Fee:    fee,
	}
}

// publishExchange publishes a completed exchange to Kafka.
func (s *ExchangeService) publishExchange(ctx context.Context, amount decimal.Decimal, resp *models.ExchangeResponse) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "from", resp.From)
		return
	}

	event := models.ExchangeEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		From:        resp.From,
		Amount:      amount,
		Conversions: resp.Conversions,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal exchange event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.From),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish exchange event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Exchange event published to Kafka", "event_id", event.EventID, "from", event.From)
	}
}
