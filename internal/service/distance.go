package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/domain/models"
	"github.com/guttosm/maxminpulse/internal/logger"
	"github.com/guttosm/maxminpulse/internal/market"
)

// DefaultTopN is the size of both the top-days ranking and each day drill-down.
const DefaultTopN = 10

// DefaultLookbackDays is the width of the range used when none is given.
const DefaultLookbackDays = 30

// ErrInvalidRange is returned when the start date falls after the end date.
var ErrInvalidRange = errors.New("start date must not be after end date")

// DistanceService runs the fetch → distance → aggregate pipeline.
type DistanceService interface {
	// TopDays ranks the dates of [start, end] by median distance across tickers
	// and drills down into each of them.
	TopDays(ctx context.Context, start, end time.Time, mode analysis.Mode) (*models.RangeReport, error)
	// RankDay drills down into a single date using the data of [start, end].
	RankDay(ctx context.Context, start, end, day time.Time, mode analysis.Mode) (*models.DayReport, error)
	// Snapshot lists every ticker's absolute distance on day.
	Snapshot(ctx context.Context, day time.Time) (*models.SnapshotReport, error)
}

// Options configures the pipeline.
type Options struct {
	Tickers  []string
	TopN     int
	Parallel int
}

type distanceService struct {
	fetcher market.Fetcher
	opts    Options
}

func NewDistanceService(fetcher market.Fetcher, opts Options) DistanceService {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.Parallel <= 0 {
		opts.Parallel = 1
	}
	tickers := make([]string, len(opts.Tickers))
	copy(tickers, opts.Tickers)
	opts.Tickers = tickers
	return &distanceService{fetcher: fetcher, opts: opts}
}

// DefaultRange returns the last DefaultLookbackDays days ending on today.
func DefaultRange(today time.Time) (start, end time.Time) {
	end = analysis.DayOf(today)
	return end.AddDate(0, 0, -DefaultLookbackDays), end
}

// ResolveRange fills in omitted (zero) bounds. With both omitted it is
// DefaultRange(today); a lone end gets the DefaultLookbackDays days before
// it; a lone start runs through today.
func ResolveRange(today, start, end time.Time) (time.Time, time.Time) {
	switch {
	case start.IsZero() && end.IsZero():
		return DefaultRange(today)
	case start.IsZero():
		return DefaultRange(end)
	case end.IsZero():
		return start, analysis.DayOf(today)
	}
	return start, end
}

func (s *distanceService) TopDays(ctx context.Context, start, end time.Time, mode analysis.Mode) (*models.RangeReport, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	tables, warnings, err := s.buildTables(ctx, start, end, mode)
	if err != nil {
		return nil, err
	}

	ranking, combined, err := analysis.Aggregate(tables, s.opts.TopN)
	if err != nil {
		return nil, fmt.Errorf("aggregate distances: %w", err)
	}

	report := &models.RangeReport{
		Start:    start,
		End:      end,
		Mode:     string(mode),
		TopDays:  ranking,
		Days:     make([]models.DayTable, 0, len(ranking)),
		Warnings: warnings,
		NoData:   combined.Empty(),
	}
	for _, r := range ranking {
		report.Days = append(report.Days, dayTable(combined, r.Date, s.opts.TopN))
	}
	return report, nil
}

func (s *distanceService) RankDay(ctx context.Context, start, end, day time.Time, mode analysis.Mode) (*models.DayReport, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	tables, warnings, err := s.buildTables(ctx, start, end, mode)
	if err != nil {
		return nil, err
	}

	combined := analysis.Combine(tables...)
	for _, r := range combined.Rows() {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("rank day: %w", analysis.ErrMissingDate)
		}
	}

	return &models.DayReport{
		Start:    start,
		End:      end,
		Mode:     string(mode),
		Day:      dayTable(combined, day, s.opts.TopN),
		Warnings: warnings,
	}, nil
}

func (s *distanceService) Snapshot(ctx context.Context, day time.Time) (*models.SnapshotReport, error) {
	day = analysis.DayOf(day)
	start, end := analysis.SnapshotWindow(day)

	results := s.fetchAll(ctx, start, end)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &models.SnapshotReport{Date: day}
	for i, res := range results {
		ticker := s.opts.Tickers[i]
		if res.warning != nil {
			report.Warnings = append(report.Warnings, *res.warning)
			continue
		}
		rec, ok := analysis.SelectDay(res.records, day)
		if !ok {
			report.Warnings = append(report.Warnings, warn(ticker, models.WarningMissingDay,
				fmt.Sprintf("no bar on %s", day.Format(time.DateOnly)), nil))
			continue
		}
		report.Tickers = append(report.Tickers, analysis.SnapshotRow(ticker, rec))
	}
	report.NoData = len(report.Tickers) == 0
	return report, nil
}

// buildTables fetches every ticker and turns its bars into a distance table.
// Tables are returned in ticker-list order; excluded tickers leave no table.
func (s *distanceService) buildTables(ctx context.Context, start, end time.Time, mode analysis.Mode) ([][]models.DistanceRecord, []models.Warning, error) {
	results := s.fetchAll(ctx, start, end)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		tables   [][]models.DistanceRecord
		warnings []models.Warning
	)
	for i, res := range results {
		if res.warning != nil {
			warnings = append(warnings, *res.warning)
			continue
		}
		if tbl := analysis.BuildTable(s.opts.Tickers[i], res.records, mode); len(tbl) > 0 {
			tables = append(tables, tbl)
		}
	}
	return tables, warnings, nil
}

type fetchResult struct {
	records []models.PriceRecord
	warning *models.Warning
}

// fetchAll fetches every ticker with at most Options.Parallel calls in flight.
// Each ticker owns one slot of the result, so the outcome does not depend on
// completion order. A failing or empty ticker yields exactly one warning.
func (s *distanceService) fetchAll(ctx context.Context, start, end time.Time) []fetchResult {
	results := make([]fetchResult, len(s.opts.Tickers))

	var g errgroup.Group
	g.SetLimit(s.opts.Parallel)
	for i, ticker := range s.opts.Tickers {
		i, ticker := i, ticker
		g.Go(func() error {
			recs, err := s.fetcher.Fetch(ctx, ticker, start, end)
			switch {
			case err != nil:
				w := warn(ticker, models.WarningFetchFailure, "fetch failed: "+err.Error(), err)
				results[i].warning = &w
			case len(recs) == 0:
				w := warn(ticker, models.WarningEmptyResult,
					fmt.Sprintf("no data between %s and %s", start.Format(time.DateOnly), end.Format(time.DateOnly)), nil)
				results[i].warning = &w
			default:
				results[i].records = recs
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func warn(ticker string, kind models.WarningKind, msg string, err error) models.Warning {
	ev := logger.L().Warn().Str("ticker", ticker).Str("kind", string(kind))
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("ticker excluded")
	return models.Warning{Ticker: ticker, Kind: kind, Message: msg}
}

func dayTable(c analysis.CombinedTable, day time.Time, k int) models.DayTable {
	rows := analysis.RankDay(c, day, k)
	return models.DayTable{Date: analysis.DayOf(day), Tickers: rows, NoData: len(rows) == 0}
}

func normalizeRange(start, end time.Time) (time.Time, time.Time, error) {
	start, end = analysis.DayOf(start), analysis.DayOf(end)
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}
