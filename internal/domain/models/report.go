package models

import (
	"sort"
	"time"
)

// WarningKind classifies a per-ticker problem that excluded the ticker from a report.
type WarningKind string

const (
	// WarningFetchFailure means the provider returned an error for the ticker.
	WarningFetchFailure WarningKind = "fetch_failure"
	// WarningEmptyResult means the provider returned no bars for the window.
	WarningEmptyResult WarningKind = "empty_result"
	// WarningMissingDay means the window had bars but none on the requested date.
	WarningMissingDay WarningKind = "missing_day"
)

// Warning is surfaced to the viewer next to the report; it never aborts the run.
type Warning struct {
	Ticker  string      `json:"ticker"`
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// DayTable is the drill-down for one date: top tickers ordered by distance.
// NoData is set when no ticker has a row for Date.
type DayTable struct {
	Date    time.Time       `json:"date"`
	Tickers []TickerRanking `json:"tickers"`
	NoData  bool            `json:"no_data"`
}

// RangeReport is the result of the date-range pipeline.
//
// Fields:
//   - Start, End: inclusive window that was fetched.
//   - Mode: distance formula used ("percentage" or "absolute").
//   - TopDays: dates ranked by median distance, truncated to top N.
//   - Days: one drill-down table per entry of TopDays, in the same order.
//   - Warnings: per-ticker exclusions, in ticker-list order.
//   - NoData: true when no ticker produced usable rows.
type RangeReport struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Mode     string        `json:"mode"`
	TopDays  []DateRanking `json:"top_days"`
	Days     []DayTable    `json:"days"`
	Warnings []Warning     `json:"warnings"`
	NoData   bool          `json:"no_data"`
}

// DayReport is a single drill-down computed against a date range.
type DayReport struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Mode     string    `json:"mode"`
	Day      DayTable  `json:"day"`
	Warnings []Warning `json:"warnings"`
}

// SnapshotReport is the result of single-date mode: every ticker that had a bar
// on Date, with its absolute distance. It is not ranked nor truncated.
type SnapshotReport struct {
	Date     time.Time       `json:"date"`
	Tickers  []TickerRanking `json:"tickers"`
	Warnings []Warning       `json:"warnings"`
	NoData   bool            `json:"no_data"`
}

// ByTicker returns the rows ordered by ticker name. Tickers is not modified.
func (r *SnapshotReport) ByTicker() []TickerRanking {
	out := make([]TickerRanking, len(r.Tickers))
	copy(out, r.Tickers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}
