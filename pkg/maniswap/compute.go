package maniswap

import "math"

// ComputeSwap routes the input to the side of the pool it sells and applies
// Swap. Tokens are matched by exact string equality, token A first.
func ComputeSwap(pool PoolState, in SwapInput) (SwapResult, error) {
	res, _, err := quote(pool, in)
	return res, err
}

func quote(pool PoolState, in SwapInput) (SwapResult, Direction, error) {
	switch in.InputToken {
	case pool.TokenA:
		out := Swap(pool.ReserveA, pool.ReserveB, in.AmountIn)
		return SwapResult{
			AmountOut:   out,
			NewReserveA: pool.ReserveA + in.AmountIn,
			NewReserveB: pool.ReserveB - out,
		}, SellA, nil
	case pool.TokenB:
		out := Swap(pool.ReserveB, pool.ReserveA, in.AmountIn)
		return SwapResult{
			AmountOut:   out,
			NewReserveA: pool.ReserveA - out,
			NewReserveB: pool.ReserveB + in.AmountIn,
		}, SellB, nil
	default:
		return SwapResult{}, DirectionUnknown, ErrInvalidInputToken
	}
}

// Calculator computes swaps, optionally rejecting inputs and results that
// ComputeSwap lets through.
type Calculator struct {
	// Strict enables bounds checks on reserves, amount and result. The zero
	// value behaves exactly like ComputeSwap.
	Strict bool
}

// Compute is ComputeSwap with the calculator's validation applied.
func (c Calculator) Compute(pool PoolState, in SwapInput) (SwapResult, error) {
	res, _, err := c.Quote(pool, in)
	return res, err
}

// Quote is Compute that also reports which side of the pool was sold.
func (c Calculator) Quote(pool PoolState, in SwapInput) (SwapResult, Direction, error) {
	if c.Strict {
		if err := validate(pool, in); err != nil {
			return SwapResult{}, DirectionUnknown, err
		}
	}

	res, dir, err := quote(pool, in)
	if err != nil {
		return SwapResult{}, DirectionUnknown, err
	}

	if c.Strict {
		reserveOut := pool.ReserveB
		if dir == SellB {
			reserveOut = pool.ReserveA
		}
		if !finite(res.AmountOut) || res.AmountOut < 0 || res.AmountOut > reserveOut {
			return SwapResult{}, dir, ErrDegenerateResult
		}
	}
	return res, dir, nil
}

func validate(pool PoolState, in SwapInput) error {
	if pool.TokenA == pool.TokenB {
		return ErrSameToken
	}
	if !finite(pool.ReserveA) || pool.ReserveA < 0 || !finite(pool.ReserveB) || pool.ReserveB < 0 {
		return ErrInvalidReserve
	}
	if !finite(in.AmountIn) || in.AmountIn < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Degenerate reports whether a result delivers nothing or a non-finite
// amount.
func Degenerate(res SwapResult) bool {
	return !finite(res.AmountOut) || res.AmountOut <= 0
}
