package report

import (
	"fmt"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// DefaultWatermark is stamped on every chart unless configured otherwise.
const DefaultWatermark = "maxminpulse"

// BuildChart describes a bar chart of rows: one bar per ticker, height and
// color given by the distance. Row order is kept.
func BuildChart(title string, rows []models.TickerRanking, watermark string) models.ChartSpec {
	if watermark == "" {
		watermark = DefaultWatermark
	}
	spec := models.ChartSpec{
		Title:     title,
		XField:    "ticker",
		YField:    "distance",
		YLabel:    "Distance",
		Points:    make([]models.ChartPoint, 0, len(rows)),
		Watermark: watermark,
		ColorScale: models.ColorScale{
			Field:  "distance",
			Scheme: "viridis",
		},
	}
	for i, r := range rows {
		spec.Points = append(spec.Points, models.ChartPoint{Ticker: r.Ticker, Distance: r.Distance})
		if i == 0 || r.Distance < spec.ColorScale.Min {
			spec.ColorScale.Min = r.Distance
		}
		if i == 0 || r.Distance > spec.ColorScale.Max {
			spec.ColorScale.Max = r.Distance
		}
	}
	return spec
}

// DayChart is the chart of one drill-down table.
func DayChart(day models.DayTable, mode, watermark string) models.ChartSpec {
	title := fmt.Sprintf("Max-min distance (%s) on %s", mode, day.Date.Format(time.DateOnly))
	return BuildChart(title, day.Tickers, watermark)
}

// RangeCharts returns one DayChart per entry of rep.Days, in the same order.
func RangeCharts(rep *models.RangeReport, watermark string) []models.ChartSpec {
	charts := make([]models.ChartSpec, 0, len(rep.Days))
	for _, d := range rep.Days {
		charts = append(charts, DayChart(d, rep.Mode, watermark))
	}
	return charts
}

// SnapshotChart charts every ticker of rep, ordered by ticker name.
func SnapshotChart(rep *models.SnapshotReport, watermark string) models.ChartSpec {
	title := fmt.Sprintf("Max-min distance on %s", rep.Date.Format(time.DateOnly))
	return BuildChart(title, rep.ByTicker(), watermark)
}
