package dto

import (
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// DayRanking is one entry of the top-days ranking.
type DayRanking struct {
	Date           string  `json:"date" example:"2024-03-05"`
	MedianDistance float64 `json:"median_distance" example:"4.12"`
}

// DayDrilldown lists the top tickers of one date with a chart of them.
// Message is set when the date has no rows.
type DayDrilldown struct {
	Date    string                 `json:"date" example:"2024-03-05"`
	Tickers []models.TickerRanking `json:"tickers"`
	Chart   models.ChartSpec       `json:"chart"`
	NoData  bool                   `json:"no_data"`
	Message string                 `json:"message,omitempty" example:"no data for 2024-03-05"`
}

// TopDaysResponse is returned by GET /api/v1/distances/top-days.
type TopDaysResponse struct {
	Start    string           `json:"start" example:"2024-02-04"`
	End      string           `json:"end" example:"2024-03-05"`
	Mode     string           `json:"mode" example:"percentage"`
	TopDays  []DayRanking     `json:"top_days"`
	Days     []DayDrilldown   `json:"days"`
	Warnings []models.Warning `json:"warnings"`
}

// DayResponse is returned by GET /api/v1/distances/day.
type DayResponse struct {
	Start    string           `json:"start" example:"2024-02-04"`
	End      string           `json:"end" example:"2024-03-05"`
	Mode     string           `json:"mode" example:"percentage"`
	Day      DayDrilldown     `json:"day"`
	Warnings []models.Warning `json:"warnings"`
}

// SnapshotResponse is returned by GET /api/v1/distances/snapshot. Tickers are
// ordered by name.
type SnapshotResponse struct {
	Date     string                 `json:"date" example:"2024-03-05"`
	Tickers  []models.TickerRanking `json:"tickers"`
	Chart    models.ChartSpec       `json:"chart"`
	Warnings []models.Warning       `json:"warnings"`
}

// NewTopDaysResponse maps rep to the API shape. charts[i] is attached to
// rep.Days[i]; missing entries leave the chart empty.
func NewTopDaysResponse(rep *models.RangeReport, charts []models.ChartSpec) TopDaysResponse {
	resp := TopDaysResponse{
		Start:    formatDate(rep.Start),
		End:      formatDate(rep.End),
		Mode:     rep.Mode,
		TopDays:  make([]DayRanking, 0, len(rep.TopDays)),
		Days:     make([]DayDrilldown, 0, len(rep.Days)),
		Warnings: nonNil(rep.Warnings),
	}
	for _, d := range rep.TopDays {
		resp.TopDays = append(resp.TopDays, DayRanking{Date: formatDate(d.Date), MedianDistance: d.MedianDistance})
	}
	for i, d := range rep.Days {
		var chart models.ChartSpec
		if i < len(charts) {
			chart = charts[i]
		}
		resp.Days = append(resp.Days, newDayDrilldown(d, chart))
	}
	return resp
}

func NewDayResponse(rep *models.DayReport, chart models.ChartSpec) DayResponse {
	return DayResponse{
		Start:    formatDate(rep.Start),
		End:      formatDate(rep.End),
		Mode:     rep.Mode,
		Day:      newDayDrilldown(rep.Day, chart),
		Warnings: nonNil(rep.Warnings),
	}
}

func NewSnapshotResponse(rep *models.SnapshotReport, chart models.ChartSpec) SnapshotResponse {
	return SnapshotResponse{
		Date:     formatDate(rep.Date),
		Tickers:  rep.ByTicker(),
		Chart:    chart,
		Warnings: nonNil(rep.Warnings),
	}
}

func newDayDrilldown(d models.DayTable, chart models.ChartSpec) DayDrilldown {
	date := formatDate(d.Date)
	out := DayDrilldown{
		Date:    date,
		Tickers: d.Tickers,
		Chart:   chart,
		NoData:  d.NoData,
	}
	if out.Tickers == nil {
		out.Tickers = []models.TickerRanking{}
	}
	if d.NoData {
		out.Message = "no data for " + date
	}
	return out
}

func formatDate(t time.Time) string { return t.Format(time.DateOnly) }

func nonNil(ws []models.Warning) []models.Warning {
	if ws == nil {
		return []models.Warning{}
	}
	return ws
}
