package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/guttosm/maxminpulse/config"
	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/api"
	"github.com/guttosm/maxminpulse/internal/domain/models"
	"github.com/guttosm/maxminpulse/internal/logger"
	"github.com/guttosm/maxminpulse/internal/market"
	"github.com/guttosm/maxminpulse/internal/service"
	"github.com/guttosm/maxminpulse/internal/storage"
)

// Pipeline is everything a CLI run or the API needs: the configured
// DistanceService, the fetcher behind it and a cleanup hook.
type Pipeline struct {
	Service service.DistanceService
	Fetcher market.Fetcher
	// DB is set only for MARKET_PROVIDER=postgres.
	DB      *sql.DB
	Cleanup func()
}

// BuildPipeline wires the market data provider selected by cfg, wraps it in
// the fetch cache and builds the DistanceService on top.
//
// Returns:
//   - *Pipeline: ready-to-use service plus cleanup (closes the DB, if any).
//   - error: unknown provider, unreachable database or cache setup failure.
func BuildPipeline(cfg config.Config) (*Pipeline, error) {
	// no periodic cache statistics in the log
	logx.DisableStat()

	provider, err := market.ParseProvider(cfg.Market.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, cfg.Market.Provider)
	}

	p := &Pipeline{Cleanup: func() {}}
	var fetcher market.Fetcher
	switch provider {
	case market.ProviderYahoo:
		fetcher = market.NewYahooFetcher(cfg.Market.Location())
	case market.ProviderAlpaca:
		fetcher = alpacaCtor(market.AlpacaOptions{
			APIKey:    cfg.Alpaca.APIKey,
			APISecret: cfg.Alpaca.SecretKey,
			Feed:      cfg.Alpaca.Feed,
		}, cfg.Market.Location())
	case market.ProviderPostgres:
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		repo := storage.NewPriceRepository(db)
		logCoverage(repo, cfg.Market.Tickers)
		fetcher = storeFetcher{repo: repo}
		p.DB = db
		p.Cleanup = func() { _ = db.Close() }
	}

	cached, err := market.NewCachedFetcher(fetcher, cfg.Cache.Limit, cfg.Cache.TTL)
	if err != nil {
		p.Cleanup()
		return nil, err
	}
	p.Fetcher = cached
	p.Service = service.NewDistanceService(cached, service.Options{
		Tickers:  cfg.Market.Tickers,
		TopN:     cfg.Analysis.TopN,
		Parallel: cfg.Market.Parallel,
	})
	return p, nil
}

// storeFetcher serves stored daily bars as a market.Fetcher.
type storeFetcher struct {
	repo storage.PriceRepository
}

func (s storeFetcher) Name() string { return market.ProviderPostgres }

func (s storeFetcher) Fetch(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error) {
	return s.repo.GetDailyPrices(ctx, ticker, start, end)
}

// alpacaCtor is an indirection for unit testing.
var alpacaCtor = func(opts market.AlpacaOptions, loc *time.Location) market.Fetcher {
	return market.NewAlpacaFetcher(opts, loc)
}

// logCoverage warns about configured tickers that have no stored prices.
func logCoverage(repo storage.PriceRepository, tickers []string) {
	counts, err := repo.CountByTicker(context.Background(), tickers)
	if err != nil {
		logger.L().Warn().Err(err).Msg("could not check stored price coverage")
		return
	}
	for _, t := range tickers {
		if counts[t] == 0 {
			logger.L().Warn().Str("ticker", t).Msg("no stored prices for ticker")
		}
	}
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the pipeline (provider, cache, DistanceService) via BuildPipeline.
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes (readiness pings Postgres when
//     that provider is active).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	p, err := BuildPipeline(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(p.Service, api.HandlerOptions{
		Location:    cfg.Market.Location(),
		DefaultMode: analysis.Percentage,
		Watermark:   cfg.Analysis.ChartWatermark,
	})
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		RequestTimeout:     cfg.Server.RequestTimeout,
	})

	var ping func(ctx context.Context) error
	if p.DB != nil {
		ping = p.DB.PingContext
	}
	api.NewHealthHandler(p.Fetcher.Name(), ping).Register(router)

	return router, p.Cleanup, nil
}
