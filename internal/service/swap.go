package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

// SwapService computes Maniswap swaps for caller-supplied pool state.
type SwapService struct {
	BaseService
	calc maniswap.Calculator
}

// NewSwapService constructs a SwapService. Degenerate results are logged and
// counted but returned unchanged unless calc is strict.
func NewSwapService(logger *slog.Logger, m *metrics.Metrics, calc maniswap.Calculator) *SwapService {
	return &SwapService{
		BaseService: BaseService{logger: logger, metrics: m},
		calc:        calc,
	}
}

// Swap sells in.AmountIn of in.InputToken into pool.
func (s *SwapService) Swap(ctx context.Context, pool maniswap.PoolState, in maniswap.SwapInput) (maniswap.SwapResult, error) {
	s.logger.DebugContext(ctx, "computing swap",
		"token_a", pool.TokenA, "reserve_a", pool.ReserveA,
		"token_b", pool.TokenB, "reserve_b", pool.ReserveB,
		"input_token", in.InputToken, "in", in.AmountIn, "strict", s.calc.Strict)

	res, dir, err := s.calc.Quote(pool, in)
	if err != nil {
		outcome := metrics.OutcomeRejected
		if errors.Is(err, maniswap.ErrInvalidInputToken) {
			outcome = metrics.OutcomeInvalidToken
		}
		s.metrics.Swap(outcome, dir.String())
		return maniswap.SwapResult{}, err
	}
	s.metrics.Swap(metrics.OutcomeOK, dir.String())

	if maniswap.Degenerate(res) {
		s.metrics.Degenerate()
		s.logger.WarnContext(ctx, "degenerate swap result",
			"direction", dir.String(), "in", in.AmountIn, "out", res.AmountOut)
	}

	s.logger.DebugContext(ctx, "swap computed", "direction", dir.String(), "out", res.AmountOut,
		"new_reserve_a", res.NewReserveA, "new_reserve_b", res.NewReserveB)
	return res, nil
}
