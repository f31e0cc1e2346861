package analysis

import (
	"sort"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// RankDay filters the combined table to one date and returns the top k tickers
// by distance, highest first (k <= 0 keeps all). Rows with equal distance keep
// their table order. A nil result means there is no data for that date.
func RankDay(c CombinedTable, day time.Time, k int) []models.TickerRanking {
	want := DayOf(day)
	var rows []models.DistanceRecord
	for _, r := range c.rows {
		if !r.Date.IsZero() && DayOf(r.Date).Equal(want) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Distance > rows[j].Distance })
	if k > 0 && len(rows) > k {
		rows = rows[:k]
	}
	return Project(rows)
}

// Project drops the date column.
func Project(rows []models.DistanceRecord) []models.TickerRanking {
	out := make([]models.TickerRanking, len(rows))
	for i, r := range rows {
		out[i] = models.TickerRanking{
			Ticker:   r.Ticker,
			Close:    r.Close,
			High:     r.High,
			Low:      r.Low,
			Distance: r.Distance,
		}
	}
	return out
}
