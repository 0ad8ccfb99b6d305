package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-crypto-exchange/docs"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/facades"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/handlers"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/logger"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/metrics"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/middlewares"
	"github.com/sbilibin2017/gw-crypto-exchange/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read at startup. It is never reloaded.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	upstreamBaseURL string
	upstreamAPIKey  string
	upstreamTimeout time.Duration

	feePercentage decimal.Decimal
	workers       int

	kafkaBrokers []string
	kafkaTopic   string
}

// @title gw-crypto-exchange API
// @version 1.0.0
// @description Cryptocurrency rates and fee-adjusted currency exchange
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, upstream API, fee and Kafka configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Upstream price API config
	cfg.upstreamBaseURL = getEnv("UPSTREAM_BASE_URL", facades.DefaultBaseURL)
	cfg.upstreamAPIKey = getEnv("UPSTREAM_API_KEY", "")
	timeoutSec, err := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECOND", "5"))
	if err != nil {
		return cfg, fmt.Errorf("UPSTREAM_TIMEOUT_SECOND: %w", err)
	}
	if timeoutSec <= 0 {
		return cfg, fmt.Errorf("UPSTREAM_TIMEOUT_SECOND must be positive, got %d", timeoutSec)
	}
	cfg.upstreamTimeout = time.Duration(timeoutSec) * time.Second

	// Exchange config
	if cfg.feePercentage, err = decimal.NewFromString(getEnv("FEE_PERCENTAGE", "0.01")); err != nil {
		return cfg, fmt.Errorf("FEE_PERCENTAGE: %w", err)
	}
	if cfg.feePercentage.IsNegative() || cfg.feePercentage.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return cfg, fmt.Errorf("FEE_PERCENTAGE must be in [0, 1), got %s", cfg.feePercentage)
	}
	if cfg.workers, err = strconv.Atoi(getEnv("EXCHANGE_WORKERS", "8")); err != nil {
		return cfg, fmt.Errorf("EXCHANGE_WORKERS: %w", err)
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
			}
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "exchanges")

	return cfg, nil
}

// newRouter wires the middleware chain and every route.
func newRouter(svc *services.ExchangeService, m *metrics.Metrics, gatherer prometheus.Gatherer, swaggerURL string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(m))

	r.Route("/currencies", func(r chi.Router) {
		r.Post("/exchange", handlers.NewExchangeHandler(svc))
		r.Get("/{currency}", handlers.NewGetRatesHandler(svc))
	})

	r.Handle("/metrics", metrics.Handler(gatherer))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg config) *kafka.Writer {
	if len(cfg.kafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.kafkaBrokers...),
		Topic:        cfg.kafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Kafka async write failed", "messages", len(messages), "error", err)
			}
		},
	}
}

// run initializes the logger, metrics, upstream facade, optional Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Upstream price API
	fetcher := facades.NewCoinGeckoFacade(cfg.upstreamBaseURL, cfg.upstreamAPIKey, cfg.upstreamTimeout, m)
	logger.Log.Infow("Upstream price API configured", "base_url", cfg.upstreamBaseURL, "timeout", cfg.upstreamTimeout)

	// Kafka exchange events
	var publisher services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		publisher = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	svc := services.NewExchangeService(fetcher, cfg.feePercentage, cfg.workers, m, publisher)
	logger.Log.Infow("Exchange service configured", "fee_percentage", cfg.feePercentage, "workers", cfg.workers)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort)
	r := newRouter(svc, m, reg, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
