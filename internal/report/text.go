package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

const dateLayout = time.DateOnly

// RenderRange writes the top-days table followed by one drill-down table per
// top day and the list of excluded tickers.
func RenderRange(w io.Writer, rep *models.RangeReport) error {
	p := &printer{w: w}
	if rep.NoData {
		p.printf("No valid data available between %s and %s.\n", rep.Start.Format(dateLayout), rep.End.Format(dateLayout))
		p.warnings(rep.Warnings)
		return p.err
	}

	p.printf("Top %d days by median max-min distance (%s) between %s and %s\n",
		len(rep.TopDays), rep.Mode, rep.Start.Format(dateLayout), rep.End.Format(dateLayout))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p.fprintf(tw, "DATE\tMEDIAN DISTANCE\n")
	for _, d := range rep.TopDays {
		p.fprintf(tw, "%s\t%s\n", d.Date.Format(dateLayout), formatDistance(d.MedianDistance, rep.Mode))
	}
	p.flush(tw)

	for _, day := range rep.Days {
		p.printf("\nDay: %s\n", day.Date.Format(dateLayout))
		p.dayTable(day, rep.Mode)
	}
	p.warnings(rep.Warnings)
	return p.err
}

// RenderDay writes a single drill-down table.
func RenderDay(w io.Writer, rep *models.DayReport) error {
	p := &printer{w: w}
	p.printf("Top tickers by max-min distance (%s) on %s\n", rep.Mode, rep.Day.Date.Format(dateLayout))
	p.dayTable(rep.Day, rep.Mode)
	p.warnings(rep.Warnings)
	return p.err
}

// RenderSnapshot writes every ticker's absolute distance for one date,
// ordered by ticker name.
func RenderSnapshot(w io.Writer, rep *models.SnapshotReport) error {
	p := &printer{w: w}
	if rep.NoData {
		p.printf("No valid data available for %s.\n", rep.Date.Format(dateLayout))
		p.warnings(rep.Warnings)
		return p.err
	}
	p.printf("Max-min distance on %s\n", rep.Date.Format(dateLayout))
	p.tickers(rep.ByTicker(), "absolute")
	p.warnings(rep.Warnings)
	return p.err
}

// printer remembers the first write error so render functions can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	p.fprintf(p.w, format, args...)
}

func (p *printer) fprintf(w io.Writer, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(w, format, args...)
}

func (p *printer) flush(tw *tabwriter.Writer) {
	if p.err != nil {
		return
	}
	p.err = tw.Flush()
}

func (p *printer) dayTable(day models.DayTable, mode string) {
	if day.NoData {
		p.printf("No data for %s.\n", day.Date.Format(dateLayout))
		return
	}
	p.tickers(day.Tickers, mode)
}

func (p *printer) tickers(rows []models.TickerRanking, mode string) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	p.fprintf(tw, "TICKER\tCLOSE\tHIGH\tLOW\tDISTANCE\t\n")
	for _, r := range rows {
		p.fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%s\t\n", r.Ticker, r.Close, r.High, r.Low, formatDistance(r.Distance, mode))
	}
	p.flush(tw)
}

func (p *printer) warnings(ws []models.Warning) {
	if len(ws) == 0 {
		return
	}
	p.printf("\nWarnings:\n")
	for _, w := range ws {
		p.printf("  %s (%s): %s\n", w.Ticker, w.Kind, w.Message)
	}
}

func formatDistance(v float64, mode string) string {
	if mode == "percentage" {
		return fmt.Sprintf("%.2f%%", v)
	}
	return fmt.Sprintf("%.2f", v)
}
