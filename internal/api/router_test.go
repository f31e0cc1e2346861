package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maxminpulse/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockDistanceService{snapRep: &models.SnapshotReport{
		Date:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Tickers: []models.TickerRanking{{Ticker: "GGAL", Distance: 1.2}},
	}}
	r := NewRouter(NewHandler(svc, HandlerOptions{}), RouterOptions{RateLimitPerMinute: 2})

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/distances/snapshot?date=2024-03-05", nil))
		if w.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i, want, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected X-Request-ID header to be set")
		}
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockDistanceService{}, HandlerOptions{}), RouterOptions{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/aggregate", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
