package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"warehouse-service/internal/metrics"
)

// Metrics adds prometheus metrics to track HTTP requests
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()

		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		metrics.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)

		return err
	}
}
