package analysis

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

func row(d time.Time, ticker string, dist float64) models.DistanceRecord {
	return models.DistanceRecord{Date: d, Ticker: ticker, Distance: dist}
}

func TestMedian_TableDriven(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "empty", in: nil, want: 0},
		{name: "single", in: []float64{4}, want: 4},
		{name: "odd", in: []float64{9, 5, 7}, want: 7},
		{name: "even", in: []float64{1, 4, 2, 3}, want: 2.5},
		{name: "duplicates", in: []float64{2, 2, 2, 8}, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Median(tc.in); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("want %v got %v", tc.want, got)
			}
		})
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_ = Median(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestAggregate_MedianPerDate(t *testing.T) {
	d := day(2024, 1, 1)
	tables := [][]models.DistanceRecord{
		{row(d, "T1", 5)},
		{row(d, "T2", 7)},
		{row(d, "T3", 9)},
	}
	ranking, combined, err := Aggregate(tables, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if combined.Len() != 3 {
		t.Fatalf("combined rows: want 3 got %d", combined.Len())
	}
	if len(ranking) != 1 || !ranking[0].Date.Equal(d) || ranking[0].MedianDistance != 7 {
		t.Fatalf("unexpected ranking: %+v", ranking)
	}
}

func TestAggregate_SortedDescendingAndTruncated(t *testing.T) {
	var tables [][]models.DistanceRecord
	for i, ticker := range []string{"A", "B", "C"} {
		var tbl []models.DistanceRecord
		for dd := 1; dd <= 15; dd++ {
			tbl = append(tbl, row(day(2024, 2, dd), ticker, float64((dd*7+i*3)%11)))
		}
		tables = append(tables, tbl)
	}

	ranking, _, err := Aggregate(tables, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranking) != 10 {
		t.Fatalf("want 10 entries got %d", len(ranking))
	}
	for i := 0; i+1 < len(ranking); i++ {
		if ranking[i].MedianDistance < ranking[i+1].MedianDistance {
			t.Fatalf("not descending at %d: %+v", i, ranking)
		}
	}
}

func TestRankDates_TiesKeepDateOrder(t *testing.T) {
	c := Combine(
		[]models.DistanceRecord{row(day(2024, 1, 3), "A", 1), row(day(2024, 1, 1), "A", 1), row(day(2024, 1, 2), "A", 5)},
	)
	ranking, err := RankDates(c, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []time.Time{day(2024, 1, 2), day(2024, 1, 1), day(2024, 1, 3)}
	for i, w := range want {
		if !ranking[i].Date.Equal(w) {
			t.Fatalf("position %d: want %v got %v", i, w, ranking[i].Date)
		}
	}
}

func TestAggregate_EmptyIsNotAnError(t *testing.T) {
	ranking, combined, err := Aggregate([][]models.DistanceRecord{nil, {}}, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranking) != 0 || !combined.Empty() {
		t.Fatalf("expected empty outputs, got ranking=%v rows=%d", ranking, combined.Len())
	}
}

func TestAggregate_MissingDate(t *testing.T) {
	tables := [][]models.DistanceRecord{{row(time.Time{}, "A", 1)}}
	if _, _, err := Aggregate(tables, 10); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("want ErrMissingDate got %v", err)
	}
}

func TestCombinedTable_RowsIsACopy(t *testing.T) {
	c := Combine([]models.DistanceRecord{row(day(2024, 1, 1), "A", 1)})
	rows := c.Rows()
	rows[0].Distance = 99
	if c.Rows()[0].Distance != 1 {
		t.Fatal("combined table was mutated through Rows()")
	}
}
