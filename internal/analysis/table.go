package analysis

import "github.com/guttosm/maxminpulse/internal/domain/models"

// BuildTable turns one ticker's raw bars into distance rows.
//
// Bars whose distance is undefined under mode are dropped without notice; the
// only trace is the shorter table. Dates are normalized with DayOf. An empty
// input yields an empty (nil) table.
func BuildTable(ticker string, records []models.PriceRecord, mode Mode) []models.DistanceRecord {
	if len(records) == 0 {
		return nil
	}
	out := make([]models.DistanceRecord, 0, len(records))
	for _, r := range records {
		dist, ok := mode.Distance(r.High, r.Low)
		if !ok {
			continue
		}
		date := r.Date
		if !date.IsZero() {
			date = DayOf(date)
		}
		out = append(out, models.DistanceRecord{
			Date:     date,
			Ticker:   ticker,
			Close:    r.Close,
			High:     r.High,
			Low:      r.Low,
			Distance: dist,
		})
	}
	return out
}
