package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
)

// Metrics serves the Prometheus exposition of m.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
}

// Health answers liveness checks with 200 "ok".
func Health() fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.SendString("ok")
	}
}
