package analysis

import (
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// SnapshotWindow returns the fetch window used by single-date mode: the day
// before through the day after.
func SnapshotWindow(day time.Time) (start, end time.Time) {
	d := DayOf(day)
	return d.AddDate(0, 0, -1), d.AddDate(0, 0, 1)
}

// SelectDay returns the record whose date is exactly day.
func SelectDay(records []models.PriceRecord, day time.Time) (models.PriceRecord, bool) {
	want := DayOf(day)
	for _, r := range records {
		if !r.Date.IsZero() && DayOf(r.Date).Equal(want) {
			return r, true
		}
	}
	return models.PriceRecord{}, false
}

// SnapshotRow builds the single-date row for a ticker using the absolute distance.
func SnapshotRow(ticker string, r models.PriceRecord) models.TickerRanking {
	return models.TickerRanking{
		Ticker:   ticker,
		Close:    r.Close,
		High:     r.High,
		Low:      r.Low,
		Distance: AbsoluteDistance(r.High, r.Low),
	}
}
