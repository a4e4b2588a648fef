// Package service contains business logic and integrations backing HTTP handlers.
package service

import (
	"log/slog"

	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
)

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}
