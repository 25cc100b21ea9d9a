package http

import (
	"lendhub-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewEcho builds the server with the shared middleware chain.
func NewEcho(log *zap.Logger, allowOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	// outside Recover so panicking requests are still counted as 500s
	e.Use(middleware.Metrics())
	e.Use(echomw.Recover())
	if len(allowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: allowOrigins,
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization,
				middleware.HeaderIdempotencyKey,
			},
		}))
	}
	return e
}

type Routes struct {
	Health  *Handler
	Leads   *LeadHandler
	Lenders *LenderHandler

	// Auth guards /admin/api; Idempotency wraps admin mutations when set.
	Auth        echo.MiddlewareFunc
	Idempotency echo.MiddlewareFunc
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	pub := e.Group("/api")
	pub.POST("/leads", r.Leads.CreatePublicLead)
	pub.GET("/lenders", r.Lenders.ListActive)
	pub.GET("/lenders/:slug", r.Lenders.GetBySlug)

	admin := e.Group("/admin/api", r.Auth)
	admin.GET("/leads", r.Leads.ListLeads)
	admin.GET("/leads/statistics", r.Leads.Statistics)
	admin.GET("/leads/:id", r.Leads.GetLead)
	admin.GET("/lenders/:id", r.Lenders.GetByID)

	var mut []echo.MiddlewareFunc
	if r.Idempotency != nil {
		mut = append(mut, r.Idempotency)
	}
	admin.POST("/leads", r.Leads.CreateLead, mut...)
	admin.PUT("/leads/:id/status", r.Leads.UpdateStatus, mut...)
	admin.PUT("/leads/:id/assign", r.Leads.Assign, mut...)
	admin.POST("/leads/:id/notes", r.Leads.AddNote, mut...)
}
