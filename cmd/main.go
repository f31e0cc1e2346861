package main

//
//  @title           maxminpulse API
//  @version         1.0
//  @description     Daily high/low distance ranking across a fixed ticker universe.
//  @termsOfService  https://github.com/guttosm/maxminpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/maxminpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        distances
//  @tag.description Top days by median distance, day drill-down and single-date snapshot
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/maxminpulse/config"
	_ "github.com/guttosm/maxminpulse/docs" // swagger docs
	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/app"
	"github.com/guttosm/maxminpulse/internal/domain/dto"
	"github.com/guttosm/maxminpulse/internal/logger"
	"github.com/guttosm/maxminpulse/internal/report"
	"github.com/guttosm/maxminpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// reportOptions carries the parsed CLI flags of the report modes.
type reportOptions struct {
	Mode      string
	Start     string
	End       string
	Date      string
	Format    string
	Distance  string
	Watermark string
	Location  *time.Location
	Now       time.Time
}

// runReport executes one pass of a report mode (range, day or snapshot) and
// writes the result to w as text tables or pretty JSON.
func runReport(ctx context.Context, svc service.DistanceService, opts reportOptions, w io.Writer) error {
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("unknown format %q", opts.Format)
	}
	today := analysis.DayIn(opts.Now, opts.Location)

	switch opts.Mode {
	case "range", "day":
		mode, err := analysis.ParseMode(opts.Distance, analysis.Percentage)
		if err != nil {
			return err
		}
		if opts.Mode == "range" {
			start, end, err := parseRange(opts, today)
			if err != nil {
				return err
			}
			rep, err := svc.TopDays(ctx, start, end, mode)
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return report.RenderJSON(w, dto.NewTopDaysResponse(rep, report.RangeCharts(rep, opts.Watermark)))
			}
			return report.RenderRange(w, rep)
		}

		if opts.Date == "" {
			return errors.New("--date is required in day mode")
		}
		day, err := time.Parse(time.DateOnly, opts.Date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		anchor := today
		if opts.Start == "" && opts.End == "" {
			anchor = day
		}
		start, end, err := parseRange(opts, anchor)
		if err != nil {
			return err
		}
		if day.Before(start) || day.After(end) {
			return fmt.Errorf("--date %s outside [%s, %s]", opts.Date, start.Format(time.DateOnly), end.Format(time.DateOnly))
		}
		rep, err := svc.RankDay(ctx, start, end, day, mode)
		if err != nil {
			return err
		}
		if opts.Format == "json" {
			return report.RenderJSON(w, dto.NewDayResponse(rep, report.DayChart(rep.Day, rep.Mode, opts.Watermark)))
		}
		return report.RenderDay(w, rep)

	case "snapshot":
		day := today
		if opts.Date != "" {
			d, err := time.Parse(time.DateOnly, opts.Date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			day = d
		}
		rep, err := svc.Snapshot(ctx, day)
		if err != nil {
			return err
		}
		if opts.Format == "json" {
			return report.RenderJSON(w, dto.NewSnapshotResponse(rep, report.SnapshotChart(rep, opts.Watermark)))
		}
		return report.RenderSnapshot(w, rep)
	}
	return fmt.Errorf("unknown mode %q", opts.Mode)
}

// parseRange resolves --start/--end; omitted bounds follow service.ResolveRange.
func parseRange(opts reportOptions, today time.Time) (time.Time, time.Time, error) {
	var start, end time.Time
	if opts.Start != "" {
		d, err := time.Parse(time.DateOnly, opts.Start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
		}
		start = d
	}
	if opts.End != "" {
		d, err := time.Parse(time.DateOnly, opts.End)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
		}
		end = d
	}
	start, end = service.ResolveRange(today, start, end)
	return start, end, nil
}

// main is the entry point of the maxminpulse application.
//
// Modes (selected via --mode flag):
//   - range:    Top days by median distance between --start and --end, each with its top tickers.
//   - day:      Top tickers of --date, computed within --start/--end.
//   - snapshot: Absolute distance of every ticker on --date (default: today).
//   - api:      Starts the REST API.
//
// Flags:
//   - --mode:     Execution mode. Default: "range".
//   - --start, --end: Inclusive window (YYYY-MM-DD). Default: the last 30 days.
//   - --date:     Day for the day and snapshot modes (YYYY-MM-DD).
//   - --distance: "percentage" or "absolute" for range and day modes. Default: "percentage".
//   - --format:   "text" or "json". Default: "text".
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "range", "Mode: range, day, snapshot or api")
	start := flag.String("start", "", "Range start (YYYY-MM-DD)")
	end := flag.String("end", "", "Range end (YYYY-MM-DD)")
	date := flag.String("date", "", "Day for day/snapshot modes (YYYY-MM-DD)")
	distance := flag.String("distance", string(analysis.Percentage), "Distance formula for range/day: percentage or absolute")
	format := flag.String("format", "text", "Output format: text or json")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	if *mode == "api" {
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)
		return
	}

	p, err := app.BuildPipeline(config.AppConfig)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("pipeline init error")
	}
	defer p.Cleanup()

	err = runReport(ctx, p.Service, reportOptions{
		Mode:      *mode,
		Start:     *start,
		End:       *end,
		Date:      *date,
		Format:    *format,
		Distance:  *distance,
		Watermark: config.AppConfig.Analysis.ChartWatermark,
		Location:  config.AppConfig.Market.Location(),
		Now:       time.Now(),
	}, os.Stdout)
	if err != nil {
		p.Cleanup()
		logger.L().Fatal().Err(err).Str("mode", *mode).Msg("report failed")
	}
}
