package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maxminpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions tunes the global middlewares.
type RouterOptions struct {
	// RateLimitPerMinute caps requests per client IP; 0 disables the limiter.
	RateLimitPerMinute int
	// RequestTimeout bounds each request context (default 30s). Fetching
	// every ticker from a remote provider can take several seconds.
	RequestTimeout time.Duration
}

// NewRouter creates a Gin engine with the distance routes.
//
// Middlewares, outermost first: RequestID, RequestLogger, RecoveryMiddleware,
// ErrorHandler, rate limiter, request timeout. Health and readiness probes are
// registered by app.InitializeApp.
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.NewRateLimiter(opts.RateLimitPerMinute, time.Minute),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1/distances")
	{
		v1.GET("/top-days", handler.GetTopDays)
		v1.GET("/day", handler.GetDay)
		v1.GET("/snapshot", handler.GetSnapshot)
	}

	return router
}
