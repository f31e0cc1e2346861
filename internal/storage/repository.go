package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// PriceRepository defines the read contract for stored daily bars.
type PriceRepository interface {
	GetDailyPrices(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error)
	CountByTicker(ctx context.Context, tickers []string) (map[string]int, error)
}

type priceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return &priceRepository{db: db}
}

// GetDailyPrices returns the bars of ticker with trade_date in [start, end],
// ordered by date. Rows missing high or low are skipped by the query.
func (r *priceRepository) GetDailyPrices(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT trade_date, open_price, high_price, low_price, close_price, volume
		FROM daily_prices
		WHERE ticker = $1
		  AND trade_date BETWEEN $2 AND $3
		  AND high_price IS NOT NULL
		  AND low_price IS NOT NULL
		ORDER BY trade_date
	`, ticker, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily prices for %s: %w", ticker, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.PriceRecord
	for rows.Next() {
		var (
			date        time.Time
			open, close sql.NullFloat64
			high, low   float64
			volume      sql.NullInt64
		)
		if err := rows.Scan(&date, &open, &high, &low, &close, &volume); err != nil {
			return nil, fmt.Errorf("scan daily price: %w", err)
		}
		out = append(out, models.PriceRecord{
			Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Open:   open.Float64,
			High:   high,
			Low:    low,
			Close:  close.Float64,
			Volume: volume.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily prices: %w", err)
	}
	return out, nil
}

// CountByTicker reports how many stored bars each of tickers has. Tickers
// with no rows are absent from the map.
func (r *priceRepository) CountByTicker(ctx context.Context, tickers []string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ticker, COUNT(*)
		FROM daily_prices
		WHERE ticker = ANY($1)
		GROUP BY ticker
	`, pq.Array(tickers))
	if err != nil {
		return nil, fmt.Errorf("count daily prices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int, len(tickers))
	for rows.Next() {
		var (
			ticker string
			n      int
		)
		if err := rows.Scan(&ticker, &n); err != nil {
			return nil, err
		}
		out[ticker] = n
	}
	return out, rows.Err()
}
