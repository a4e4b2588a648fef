package service

import (
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/nulln0ne/maniswap-estimator/internal/logging"
	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

func newMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	m, err := metrics.New()
	require.NoError(t, err)
	return m
}

func TestSwap_Success(t *testing.T) {
	t.Parallel()

	svc := NewSwapService(logging.Discard(), newMetrics(t), maniswap.Calculator{})
	pool := maniswap.PoolState{TokenA: "X", ReserveA: 100, TokenB: "Y", ReserveB: 100}

	res, err := svc.Swap(context.Background(), pool, maniswap.SwapInput{InputToken: "X", AmountIn: 10})
	require.NoError(t, err)
	require.Equal(t, 110.0, res.NewReserveA)
	require.Equal(t, maniswap.Swap(100, 100, 10), res.AmountOut)
}

func TestSwap_InvalidInputToken(t *testing.T) {
	t.Parallel()

	m := newMetrics(t)
	svc := NewSwapService(logging.Discard(), m, maniswap.Calculator{})
	pool := maniswap.PoolState{TokenA: "X", ReserveA: 100, TokenB: "Y", ReserveB: 100}

	_, err := svc.Swap(context.Background(), pool, maniswap.SwapInput{InputToken: "Z", AmountIn: 10})
	require.ErrorIs(t, err, maniswap.ErrInvalidInputToken)
	n, err := testutil.GatherAndCount(m.Registry(), "maniswap_swaps_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSwap_DegenerateIsReturned(t *testing.T) {
	t.Parallel()

	svc := NewSwapService(logging.Discard(), newMetrics(t), maniswap.Calculator{})
	pool := maniswap.PoolState{TokenA: "X", TokenB: "Y"}

	res, err := svc.Swap(context.Background(), pool, maniswap.SwapInput{InputToken: "Y"})
	require.NoError(t, err)
	require.True(t, math.IsNaN(res.AmountOut))
}

func TestSwap_StrictRejects(t *testing.T) {
	t.Parallel()

	svc := NewSwapService(logging.Discard(), newMetrics(t), maniswap.Calculator{Strict: true})
	pool := maniswap.PoolState{TokenA: "X", ReserveA: 100, TokenB: "Y", ReserveB: 100}

	_, err := svc.Swap(context.Background(), pool, maniswap.SwapInput{InputToken: "X", AmountIn: -3})
	require.ErrorIs(t, err, maniswap.ErrInvalidAmount)
}
