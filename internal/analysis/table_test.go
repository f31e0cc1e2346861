package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildTable_DropsZeroLowInPercentageMode(t *testing.T) {
	recs := []models.PriceRecord{
		{Date: day(2024, 1, 1), High: 11, Low: 10, Close: 10.5},
		{Date: day(2024, 1, 2), High: 4, Low: 0, Close: 2},
		{Date: day(2024, 1, 3), High: 12, Low: 10, Close: 11},
	}

	out := BuildTable("GGAL", recs, Percentage)
	if len(out) != 2 {
		t.Fatalf("want 2 rows got %d", len(out))
	}
	for _, r := range out {
		if r.Date.Equal(day(2024, 1, 2)) {
			t.Fatalf("row with zero low must be dropped: %+v", r)
		}
		if r.Ticker != "GGAL" {
			t.Fatalf("ticker not set: %+v", r)
		}
	}
	if math.Abs(out[1].Distance-20) > 1e-9 {
		t.Fatalf("want 20 got %v", out[1].Distance)
	}
}

func TestBuildTable_AbsoluteKeepsEveryRow(t *testing.T) {
	recs := []models.PriceRecord{
		{Date: day(2024, 1, 1), High: 11, Low: 10},
		{Date: day(2024, 1, 2), High: 4, Low: 0},
	}
	out := BuildTable("YPF", recs, Absolute)
	if len(out) != 2 {
		t.Fatalf("want 2 rows got %d", len(out))
	}
	if out[1].Distance != 4 {
		t.Fatalf("want 4 got %v", out[1].Distance)
	}
}

func TestBuildTable_EmptyInput(t *testing.T) {
	if out := BuildTable("PAM", nil, Percentage); len(out) != 0 {
		t.Fatalf("want empty table, got %d rows", len(out))
	}
}

func TestBuildTable_NormalizesDates(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	recs := []models.PriceRecord{{Date: time.Date(2024, 3, 5, 9, 30, 0, 0, ny), High: 2, Low: 1}}
	out := BuildTable("TEO", recs, Percentage)
	if !out[0].Date.Equal(day(2024, 3, 5)) || out[0].Date.Location() != time.UTC {
		t.Fatalf("date not normalized: %v", out[0].Date)
	}
}
