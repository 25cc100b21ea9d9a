package middleware

import (
	"strconv"
	"time"

	"lendhub-backend/internal/infrastructure/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records count and latency per route template, not per raw path,
// so /admin/api/leads/:id stays one series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			metrics.RequestStarted()
			defer metrics.RequestFinished()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			metrics.ObserveRequest(c.Request().Method, route, status, time.Since(start).Seconds())
			return nil
		}
	}
}
