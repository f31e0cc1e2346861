package market

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// Provider names accepted by MARKET_PROVIDER.
const (
	ProviderYahoo    = "yahoo"
	ProviderAlpaca   = "alpaca"
	ProviderPostgres = "postgres"
)

// ErrUnknownProvider is returned by ParseProvider for unsupported names.
var ErrUnknownProvider = errors.New("unknown market data provider")

// Fetcher retrieves daily bars for one ticker.
//
// The window [start, end] is inclusive on both ends and expressed in calendar
// days. Implementations return bars ordered by date, with dates normalized to
// midnight UTC. An empty slice with a nil error means the provider had no data.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error)
}

// ParseProvider validates a provider name.
func ParseProvider(name string) (string, error) {
	switch name {
	case ProviderYahoo, ProviderAlpaca, ProviderPostgres:
		return name, nil
	case "":
		return ProviderYahoo, nil
	default:
		return "", ErrUnknownProvider
	}
}

// clip keeps bars inside [start, end], drops bars without a high/low pair and
// sorts the rest by date. Providers whose APIs treat the upper bound as
// exclusive ask for one extra day and rely on clip to trim it.
func clip(records []models.PriceRecord, start, end time.Time) []models.PriceRecord {
	from, to := analysis.DayOf(start), analysis.DayOf(end)
	out := make([]models.PriceRecord, 0, len(records))
	for _, r := range records {
		if r.High == 0 && r.Low == 0 {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
