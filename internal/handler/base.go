// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"errors"
	"log/slog"

	"github.com/nulln0ne/maniswap-estimator/internal/service"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

func (h *BaseHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, maniswap.ErrInvalidInputToken):
		return ErrInvalidInputToken
	case errors.Is(err, maniswap.ErrSameToken):
		return ErrSameToken
	case errors.Is(err, maniswap.ErrInvalidReserve):
		return ErrInvalidReserve
	case errors.Is(err, maniswap.ErrInvalidAmount):
		return ErrInvalidAmount
	case errors.Is(err, maniswap.ErrDegenerateResult):
		return ErrDegenerateResult
	case errors.Is(err, service.ErrNotPair):
		return ErrNotPair
	case errors.Is(err, service.ErrChainUnavailable):
		return ErrChainUnavailable
	case errors.Is(err, service.ErrPoolRead):
		h.logger.Error("pool read failed", "err", err)
		return ErrPoolReadFailed
	default:
		h.logger.Error("service swap failed", "err", err)
		return ErrSwapFailedInternal
	}
}
