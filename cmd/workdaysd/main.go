// Command workdaysd serves the Australian working-days HTTP API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	"github.com/jonwraymond/workdays/api"
	"github.com/jonwraymond/workdays/auth"
	"github.com/jonwraymond/workdays/cache"
	"github.com/jonwraymond/workdays/config"
	"github.com/jonwraymond/workdays/health"
	"github.com/jonwraymond/workdays/holiday"
	"github.com/jonwraymond/workdays/observe"
	"github.com/jonwraymond/workdays/workday"
)

const (
	serviceName     = "workdays"
	serviceVersion  = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: serviceName,
		Version:     serviceVersion,
		Tracing: observe.TracingConfig{
			Enabled:   cfg.TraceExporter != "none",
			Exporter:  cfg.TraceExporter,
			SamplePct: cfg.TraceSamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  cfg.MetricsExporter != "none",
			Exporter: cfg.MetricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   cfg.LogLevel,
		},
	})
	if err != nil {
		log.Fatalf("setup observability: %v", err)
	}

	logger := obs.Logger().With(observe.String("service", serviceName))

	source, closeSource, err := buildSource(ctx, cfg)
	if err != nil {
		log.Fatalf("setup holiday source: %v", err)
	}
	defer closeSource()

	counts := cache.NewLRU(cfg.CacheCapacity)
	engine := workday.NewEngine(source, counts, cache.NewDefaultKeyer(), workday.EngineConfig{
		FirstYear: cfg.FirstYear,
		LastYear:  cfg.LastYear,
	})

	agg := health.NewAggregator()
	agg.Register(health.NewOracleChecker(source))
	agg.Register(health.NewCacheChecker(counts))

	metrics, err := observe.NewQueryMetrics(obs.Meter())
	if err != nil {
		log.Fatalf("setup metrics: %v", err)
	}
	if err := observe.RegisterCacheMetrics(obs.Meter(), counts.Stats); err != nil {
		log.Fatalf("setup cache metrics: %v", err)
	}

	routerCfg := api.RouterConfig{
		Observer:       obs,
		Metrics:        metrics,
		Authenticators: buildAuthenticators(cfg),
		Health:         agg,
	}
	if cfg.RateLimit > 0 {
		routerCfg.RateLimit = &api.RateLimitConfig{Rate: cfg.RateLimit, Burst: cfg.RateBurst}
	}
	if cfg.MetricsExporter == "prometheus" {
		routerCfg.MetricsHandler = promhttp.Handler()
	}

	router := api.NewRouter(api.NewHandler(engine, logger), routerCfg)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening",
			observe.String("addr", cfg.Addr),
			observe.String("holiday_source", cfg.HolidaySource),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info(shutdownCtx, "shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server shutdown", observe.Err(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "observer shutdown", observe.Err(err))
	}
}

func buildSource(ctx context.Context, cfg config.Config) (workday.HolidaySource, func(), error) {
	switch cfg.HolidaySource {
	case config.SourceSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := holiday.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return holiday.NewSQLite(db), func() { _ = db.Close() }, nil
	default:
		return holiday.NewCalendar(), func() {}, nil
	}
}

func buildAuthenticators(cfg config.Config) []auth.Authenticator {
	var auths []auth.Authenticator
	if len(cfg.APIKeys) > 0 {
		auths = append(auths, auth.NewAPIKeyAuthenticator(auth.APIKeyConfig{}, cfg.APIKeys))
	}
	if cfg.JWTSecret != "" {
		auths = append(auths, auth.NewJWTAuthenticator(auth.JWTConfig{
			Secret:   []byte(cfg.JWTSecret),
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
		}))
	}
	return auths
}
