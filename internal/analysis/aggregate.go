package analysis

import (
	"errors"
	"sort"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// ErrMissingDate is returned when a row of the combined table has no date,
// which makes grouping by date impossible.
var ErrMissingDate = errors.New("date missing from combined table")

// CombinedTable is the concatenation of all per-ticker tables for one run.
// It is never mutated after Combine returns.
type CombinedTable struct {
	rows []models.DistanceRecord
}

// Combine folds per-ticker tables into one table, preserving argument order.
// Empty tables contribute nothing.
func Combine(tables ...[]models.DistanceRecord) CombinedTable {
	n := 0
	for _, t := range tables {
		n += len(t)
	}
	rows := make([]models.DistanceRecord, 0, n)
	for _, t := range tables {
		rows = append(rows, t...)
	}
	return CombinedTable{rows: rows}
}

// Len is the number of rows.
func (c CombinedTable) Len() int { return len(c.rows) }

// Empty reports whether no ticker contributed rows.
func (c CombinedTable) Empty() bool { return len(c.rows) == 0 }

// Rows returns a copy of the rows.
func (c CombinedTable) Rows() []models.DistanceRecord {
	out := make([]models.DistanceRecord, len(c.rows))
	copy(out, c.rows)
	return out
}

// Median returns the statistical median of values: the middle element, or the
// mean of the two middle elements for an even count. It returns 0 for no values.
// values is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	s := make([]float64, n)
	copy(s, values)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// RankDates groups the table by date, computes the median distance per date
// and returns the dates ordered by that median, highest first, truncated to k
// entries (k <= 0 keeps all). Ties keep ascending date order.
func RankDates(c CombinedTable, k int) ([]models.DateRanking, error) {
	groups := make(map[time.Time][]float64)
	var dates []time.Time
	for _, r := range c.rows {
		if r.Date.IsZero() {
			return nil, ErrMissingDate
		}
		d := DayOf(r.Date)
		if _, ok := groups[d]; !ok {
			dates = append(dates, d)
		}
		groups[d] = append(groups[d], r.Distance)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	ranking := make([]models.DateRanking, 0, len(dates))
	for _, d := range dates {
		ranking = append(ranking, models.DateRanking{Date: d, MedianDistance: Median(groups[d])})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].MedianDistance > ranking[j].MedianDistance
	})

	if k > 0 && len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking, nil
}

// Aggregate combines the per-ticker tables and ranks dates by median distance.
// An empty combined table is not an error: the ranking is simply empty and the
// caller reports "no data".
func Aggregate(tables [][]models.DistanceRecord, k int) ([]models.DateRanking, CombinedTable, error) {
	combined := Combine(tables...)
	if combined.Empty() {
		return nil, combined, nil
	}
	ranking, err := RankDates(combined, k)
	if err != nil {
		return nil, combined, err
	}
	return ranking, combined, nil
}
