package market

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// barsClient is satisfied by *marketdata.Client.
type barsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaOptions configures the Alpaca market data client.
type AlpacaOptions struct {
	APIKey    string
	APISecret string
	// Feed is "iex" (free plans) or "sip".
	Feed string
}

// AlpacaFetcher reads daily bars from the Alpaca market data v2 API.
type AlpacaFetcher struct {
	client barsClient
	feed   string
	loc    *time.Location
}

// NewAlpacaFetcher creates a provider backed by a real marketdata.Client.
func NewAlpacaFetcher(opts AlpacaOptions, loc *time.Location) *AlpacaFetcher {
	client := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    opts.APIKey,
		APISecret: opts.APISecret,
	})
	return newAlpacaFetcher(client, opts.Feed, loc)
}

func newAlpacaFetcher(client barsClient, feed string, loc *time.Location) *AlpacaFetcher {
	if loc == nil {
		loc = time.UTC
	}
	if feed == "" {
		feed = "iex"
	}
	return &AlpacaFetcher{client: client, feed: feed, loc: loc}
}

func (a *AlpacaFetcher) Name() string { return ProviderAlpaca }

// Fetch implements Fetcher.
func (a *AlpacaFetcher) Fetch(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, a.loc)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, a.loc).AddDate(0, 0, 1).Add(-time.Second)

	bars, err := a.client.GetBars(ticker, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     from,
		End:       to,
		Feed:      marketdata.Feed(a.feed),
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca bars %s: %w", ticker, err)
	}

	out := make([]models.PriceRecord, 0, len(bars))
	for _, b := range bars {
		out = append(out, models.PriceRecord{
			Date:   analysis.DayIn(b.Timestamp, a.loc),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		})
	}
	return clip(out, start, end), nil
}
