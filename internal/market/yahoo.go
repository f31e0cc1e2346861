package market

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// barIterator is the subset of *chart.Iter used by the Yahoo provider.
type barIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// chartGet is an indirection for unit testing; defaults to the finance-go chart API.
var chartGet = func(p *chart.Params) barIterator { return chart.Get(p) }

// YahooFetcher reads daily bars from the Yahoo Finance chart endpoint.
type YahooFetcher struct {
	loc *time.Location
}

// NewYahooFetcher builds a Yahoo provider. Bar timestamps are converted to
// trading days in loc (nil means UTC).
func NewYahooFetcher(loc *time.Location) *YahooFetcher {
	if loc == nil {
		loc = time.UTC
	}
	return &YahooFetcher{loc: loc}
}

func (y *YahooFetcher) Name() string { return ProviderYahoo }

// Fetch implements Fetcher. The chart API excludes its upper bound, so the
// request runs to the day after end.
func (y *YahooFetcher) Fetch(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, y.loc)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, y.loc).AddDate(0, 0, 1)

	iter := chartGet(&chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&from),
		End:      datetime.New(&to),
		Interval: datetime.OneDay,
	})

	var out []models.PriceRecord
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bar := iter.Bar()
		if bar == nil {
			continue
		}
		out = append(out, models.PriceRecord{
			Date:   analysis.DayIn(time.Unix(int64(bar.Timestamp), 0), y.loc),
			Open:   bar.Open.InexactFloat64(),
			High:   bar.High.InexactFloat64(),
			Low:    bar.Low.InexactFloat64(),
			Close:  bar.Close.InexactFloat64(),
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, err)
	}
	return clip(out, start, end), nil
}
