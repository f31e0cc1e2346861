package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/domain/dto"
	"github.com/guttosm/maxminpulse/internal/middleware"
	"github.com/guttosm/maxminpulse/internal/report"
	"github.com/guttosm/maxminpulse/internal/service"
)

const dateLayout = "2006-01-02"

// HandlerOptions configures request defaults.
type HandlerOptions struct {
	// Location decides what "today" is when a date is omitted.
	Location *time.Location
	// DefaultMode is used by range endpoints when ?mode is absent.
	DefaultMode analysis.Mode
	// Watermark is stamped on chart specifications.
	Watermark string
}

// Handler serves the distance endpoints.
//
// Responsibilities:
//   - Validate query parameters and apply date/mode defaults
//   - Call the DistanceService with the request context
//   - Map reports to response DTOs and service errors to status codes
type Handler struct {
	svc  service.DistanceService
	opts HandlerOptions
	now  func() time.Time
}

// NewHandler constructs a Handler. Zero-value options mean UTC, percentage
// distance and the default watermark.
func NewHandler(svc service.DistanceService, opts HandlerOptions) *Handler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultMode == "" {
		opts.DefaultMode = analysis.Percentage
	}
	return &Handler{svc: svc, opts: opts, now: time.Now}
}

// GetTopDays godoc
// @Summary      Top days by median max-min distance
// @Description  Ranks the dates of the window by the median high/low distance across all tickers and drills down into the top tickers of each date. Defaults to the last 30 days.
// @Tags         distances
// @Produce      json
// @Param        start  query     string  false  "Start date (YYYY-MM-DD), inclusive"  example(2024-02-04)
// @Param        end    query     string  false  "End date (YYYY-MM-DD), inclusive"    example(2024-03-05)
// @Param        mode   query     string  false  "percentage or absolute"              Enums(percentage, absolute)
// @Success      200    {object}  dto.TopDaysResponse
// @Failure      400    {object}  dto.ErrorResponse  "Invalid parameters or range"
// @Failure      404    {object}  dto.ErrorResponse  "No valid data"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/distances/top-days [get]
func (h *Handler) GetTopDays(c *gin.Context) {
	start, end, ok := h.parseRange(c, analysis.DayIn(h.now(), h.opts.Location))
	if !ok {
		return
	}
	mode, ok := h.parseMode(c)
	if !ok {
		return
	}

	rep, err := h.svc.TopDays(c.Request.Context(), start, end, mode)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if rep.NoData {
		middleware.AbortWithError(c, http.StatusNotFound, "no valid data",
			fmt.Errorf("no ticker has data between %s and %s", start.Format(dateLayout), end.Format(dateLayout)))
		return
	}

	c.JSON(http.StatusOK, dto.NewTopDaysResponse(rep, report.RangeCharts(rep, h.opts.Watermark)))
}

// GetDay godoc
// @Summary      Day drill-down
// @Description  Top 10 tickers by max-min distance on one date. A date without rows is reported with no_data=true.
// @Tags         distances
// @Produce      json
// @Param        date   query     string  true   "Date to drill into (YYYY-MM-DD)"  example(2024-03-05)
// @Param        start  query     string  false  "Start date (YYYY-MM-DD)"          example(2024-02-04)
// @Param        end    query     string  false  "End date (YYYY-MM-DD)"            example(2024-03-05)
// @Param        mode   query     string  false  "percentage or absolute"           Enums(percentage, absolute)
// @Success      200    {object}  dto.DayResponse
// @Failure      400    {object}  dto.ErrorResponse  "Invalid parameters or range"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/distances/day [get]
func (h *Handler) GetDay(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "date is required", nil)
		return
	}
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", err)
		return
	}

	anchor := analysis.DayIn(h.now(), h.opts.Location)
	if c.Query("start") == "" && c.Query("end") == "" {
		anchor = day
	}
	start, end, ok := h.parseRange(c, anchor)
	if !ok {
		return
	}
	if day.Before(start) || day.After(end) {
		middleware.AbortWithError(c, http.StatusBadRequest, "date must fall inside [start, end]", nil)
		return
	}
	mode, ok := h.parseMode(c)
	if !ok {
		return
	}

	rep, err := h.svc.RankDay(c.Request.Context(), start, end, day, mode)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDayResponse(rep, report.DayChart(rep.Day, rep.Mode, h.opts.Watermark)))
}

// GetSnapshot godoc
// @Summary      Single-date distances
// @Description  Absolute max-min distance of every ticker that traded on the date, ordered by ticker, with a chart specification. Defaults to today.
// @Tags         distances
// @Produce      json
// @Param        date  query     string  false  "Date (YYYY-MM-DD)"  example(2024-03-05)
// @Success      200   {object}  dto.SnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse  "Invalid date"
// @Failure      404   {object}  dto.ErrorResponse  "No valid data"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/distances/snapshot [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	day := analysis.DayIn(h.now(), h.opts.Location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", err)
			return
		}
		day = parsed
	}

	rep, err := h.svc.Snapshot(c.Request.Context(), day)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if rep.NoData {
		middleware.AbortWithError(c, http.StatusNotFound, "no valid data",
			fmt.Errorf("no ticker has a bar on %s", day.Format(dateLayout)))
		return
	}
	c.JSON(http.StatusOK, dto.NewSnapshotResponse(rep, report.SnapshotChart(rep, h.opts.Watermark)))
}

// parseRange reads ?start and ?end. Missing bounds are filled by
// service.ResolveRange around today.
func (h *Handler) parseRange(c *gin.Context, today time.Time) (time.Time, time.Time, bool) {
	var start, end time.Time

	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid start format, expected YYYY-MM-DD", err)
			return time.Time{}, time.Time{}, false
		}
		start = parsed
	}
	if s := c.Query("end"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid end format, expected YYYY-MM-DD", err)
			return time.Time{}, time.Time{}, false
		}
		end = parsed
	}
	start, end = service.ResolveRange(today, start, end)
	if start.After(end) {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date range", service.ErrInvalidRange)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) parseMode(c *gin.Context) (analysis.Mode, bool) {
	mode, err := analysis.ParseMode(c.Query("mode"), h.opts.DefaultMode)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid mode, expected percentage or absolute", err)
		return "", false
	}
	return mode, true
}

func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRange):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date range", err)
	case errors.Is(err, analysis.ErrMissingDate):
		middleware.AbortWithError(c, http.StatusInternalServerError, "date column missing from data", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute distances", err)
	}
}
