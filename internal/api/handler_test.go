package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maxminpulse/internal/analysis"
	"github.com/guttosm/maxminpulse/internal/domain/dto"
	"github.com/guttosm/maxminpulse/internal/domain/models"
	"github.com/guttosm/maxminpulse/internal/service"
)

type mockDistanceService struct {
	rangeRep *models.RangeReport
	dayRep   *models.DayReport
	snapRep  *models.SnapshotReport
	err      error

	gotStart, gotEnd, gotDay time.Time
	gotMode                  analysis.Mode
}

func (m *mockDistanceService) TopDays(_ context.Context, start, end time.Time, mode analysis.Mode) (*models.RangeReport, error) {
	m.gotStart, m.gotEnd, m.gotMode = start, end, mode
	return m.rangeRep, m.err
}

func (m *mockDistanceService) RankDay(_ context.Context, start, end, day time.Time, mode analysis.Mode) (*models.DayReport, error) {
	m.gotStart, m.gotEnd, m.gotDay, m.gotMode = start, end, day, mode
	return m.dayRep, m.err
}

func (m *mockDistanceService) Snapshot(_ context.Context, day time.Time) (*models.SnapshotReport, error) {
	m.gotDay = day
	return m.snapRep, m.err
}

var _ service.DistanceService = (*mockDistanceService)(nil)

var fixedNow = time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setupRouterWithMock(s service.DistanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, HandlerOptions{Watermark: "wm"})
	h.now = func() time.Time { return fixedNow }
	r := gin.New()
	v1 := r.Group("/api/v1/distances")
	v1.GET("/top-days", h.GetTopDays)
	v1.GET("/day", h.GetDay)
	v1.GET("/snapshot", h.GetSnapshot)
	return r
}

func okRange() *models.RangeReport {
	d := date(2024, 3, 5)
	return &models.RangeReport{
		Start: date(2024, 3, 1), End: date(2024, 3, 31), Mode: "percentage",
		TopDays: []models.DateRanking{{Date: d, MedianDistance: 4.2}},
		Days:    []models.DayTable{{Date: d, Tickers: []models.TickerRanking{{Ticker: "GGAL", Distance: 5}}}},
	}
}

func TestGetTopDays_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockDistanceService
		query  string
		status int
		assert func(t *testing.T, m *mockDistanceService, body []byte)
	}{
		{
			name:   "defaults to the last 30 days in percentage mode",
			svc:    &mockDistanceService{rangeRep: okRange()},
			query:  "/api/v1/distances/top-days",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockDistanceService, body []byte) {
				if !m.gotStart.Equal(date(2024, 3, 1)) || !m.gotEnd.Equal(date(2024, 3, 31)) || m.gotMode != analysis.Percentage {
					t.Fatalf("unexpected call start=%v end=%v mode=%v", m.gotStart, m.gotEnd, m.gotMode)
				}
				var out dto.TopDaysResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.TopDays) != 1 || out.TopDays[0].Date != "2024-03-05" || out.Days[0].Chart.Watermark != "wm" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "explicit range and mode",
			svc:    &mockDistanceService{rangeRep: okRange()},
			query:  "/api/v1/distances/top-days?start=2024-01-01&end=2024-01-31&mode=abs",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockDistanceService, _ []byte) {
				if !m.gotStart.Equal(date(2024, 1, 1)) || !m.gotEnd.Equal(date(2024, 1, 31)) || m.gotMode != analysis.Absolute {
					t.Fatalf("unexpected call start=%v end=%v mode=%v", m.gotStart, m.gotEnd, m.gotMode)
				}
			},
		},
		{
			name:   "lone end looks back 30 days",
			svc:    &mockDistanceService{rangeRep: okRange()},
			query:  "/api/v1/distances/top-days?end=2024-03-05",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockDistanceService, _ []byte) {
				if !m.gotStart.Equal(date(2024, 2, 4)) || !m.gotEnd.Equal(date(2024, 3, 5)) {
					t.Fatalf("unexpected call start=%v end=%v", m.gotStart, m.gotEnd)
				}
			},
		},
		{
			name:   "lone start runs through today",
			svc:    &mockDistanceService{rangeRep: okRange()},
			query:  "/api/v1/distances/top-days?start=2024-03-10",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockDistanceService, _ []byte) {
				if !m.gotStart.Equal(date(2024, 3, 10)) || !m.gotEnd.Equal(date(2024, 3, 31)) {
					t.Fatalf("unexpected call start=%v end=%v", m.gotStart, m.gotEnd)
				}
			},
		},
		{name: "invalid start", svc: &mockDistanceService{}, query: "/api/v1/distances/top-days?start=2024/01/01", status: http.StatusBadRequest},
		{name: "start after end", svc: &mockDistanceService{}, query: "/api/v1/distances/top-days?start=2024-02-01&end=2024-01-01", status: http.StatusBadRequest},
		{name: "unknown mode", svc: &mockDistanceService{}, query: "/api/v1/distances/top-days?mode=median", status: http.StatusBadRequest},
		{
			name:   "no data",
			svc:    &mockDistanceService{rangeRep: &models.RangeReport{NoData: true}},
			query:  "/api/v1/distances/top-days",
			status: http.StatusNotFound,
		},
		{
			name:   "missing date column",
			svc:    &mockDistanceService{err: analysis.ErrMissingDate},
			query:  "/api/v1/distances/top-days",
			status: http.StatusInternalServerError,
		},
		{
			name:   "service invalid range",
			svc:    &mockDistanceService{err: service.ErrInvalidRange},
			query:  "/api/v1/distances/top-days",
			status: http.StatusBadRequest,
		},
		{
			name:   "unexpected error",
			svc:    &mockDistanceService{err: errors.New("boom")},
			query:  "/api/v1/distances/top-days",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, _ *mockDistanceService, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil || out.ErrorDetails != "boom" {
					t.Fatalf("unexpected error body %s", body)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestGetDay_TableDriven(t *testing.T) {
	dayRep := &models.DayReport{Mode: "percentage", Day: models.DayTable{Date: date(2024, 3, 5), NoData: true}}
	cases := []struct {
		name   string
		query  string
		status int
	}{
		{name: "missing date", query: "/api/v1/distances/day", status: http.StatusBadRequest},
		{name: "bad date", query: "/api/v1/distances/day?date=5-3-2024", status: http.StatusBadRequest},
		{name: "lone end before date", query: "/api/v1/distances/day?date=2024-03-05&end=2024-03-01", status: http.StatusBadRequest},
		{name: "date outside range", query: "/api/v1/distances/day?date=2024-03-05&start=2024-01-01&end=2024-01-31", status: http.StatusBadRequest},
		{name: "empty day is not an error", query: "/api/v1/distances/day?date=2024-03-05", status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockDistanceService{dayRep: dayRep}
			r := setupRouterWithMock(svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.status == http.StatusOK {
				var out dto.DayResponse
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || !out.Day.NoData {
					t.Fatalf("unexpected body %s", w.Body.String())
				}
				if !svc.gotEnd.Equal(date(2024, 3, 5)) || !svc.gotDay.Equal(date(2024, 3, 5)) {
					t.Fatalf("default window should end on the requested date, got %v", svc.gotEnd)
				}
			}
		})
	}
}

func TestGetSnapshot_TableDriven(t *testing.T) {
	okSnap := &models.SnapshotReport{
		Date:    date(2024, 3, 5),
		Tickers: []models.TickerRanking{{Ticker: "YPF", Distance: 1}, {Ticker: "BMA", Distance: 2}},
	}
	cases := []struct {
		name    string
		svc     *mockDistanceService
		query   string
		status  int
		wantDay time.Time
	}{
		{name: "defaults to today", svc: &mockDistanceService{snapRep: okSnap}, query: "/api/v1/distances/snapshot", status: http.StatusOK, wantDay: date(2024, 3, 31)},
		{name: "explicit date", svc: &mockDistanceService{snapRep: okSnap}, query: "/api/v1/distances/snapshot?date=2024-03-05", status: http.StatusOK, wantDay: date(2024, 3, 5)},
		{name: "bad date", svc: &mockDistanceService{}, query: "/api/v1/distances/snapshot?date=yesterday", status: http.StatusBadRequest},
		{name: "no data", svc: &mockDistanceService{snapRep: &models.SnapshotReport{NoData: true}}, query: "/api/v1/distances/snapshot?date=2024-03-09", status: http.StatusNotFound, wantDay: date(2024, 3, 9)},
		{name: "error", svc: &mockDistanceService{err: errors.New("boom")}, query: "/api/v1/distances/snapshot", status: http.StatusInternalServerError, wantDay: date(2024, 3, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if !tc.wantDay.IsZero() && !tc.svc.gotDay.Equal(tc.wantDay) {
				t.Fatalf("want day %v got %v", tc.wantDay, tc.svc.gotDay)
			}
			if tc.status == http.StatusOK {
				var out dto.SnapshotResponse
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Tickers[0].Ticker != "BMA" || len(out.Chart.Points) != 2 {
					t.Fatalf("unexpected body %+v", out)
				}
			}
		})
	}
}
