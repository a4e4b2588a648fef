package maniswap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// reference evaluates the invariant step by step with p = 0.5.
func reference(reserveIn, reserveOut, amountIn float64) float64 {
	p := 0.5
	n := reserveIn + amountIn
	k := math.Pow(reserveOut, p) * math.Pow(n, 1-p)
	return reserveOut - k/math.Pow(n, 1-p)
}

func TestSwap_MatchesReferenceFormula(t *testing.T) {
	t.Parallel()

	out := Swap(100, 100, 50)
	require.Equal(t, reference(100, 100, 50), out)
	// n cancels: 100 - sqrt(100)
	require.InDelta(t, 90.0, out, 1e-9)
}

func TestSwap_IndependentOfAmountIn(t *testing.T) {
	t.Parallel()

	want := 1_000_000 - math.Sqrt(1_000_000)
	for _, in := range []float64{0, 1, 1_000, 999_999, 1e12} {
		require.InDelta(t, want, Swap(1_000_000, 1_000_000, in), 1e-6, "amount_in=%v", in)
	}
}

func TestSwap_Degenerate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                       string
		reserveIn, reserveOut, in float64
		check                      func(t *testing.T, out float64)
	}{
		{"empty output reserve", 100, 0, 10, func(t *testing.T, out float64) { require.Zero(t, out) }},
		{"unit output reserve", 100, 1, 10, func(t *testing.T, out float64) { require.Zero(t, out) }},
		{"fractional output reserve", 100, 0.25, 10, func(t *testing.T, out float64) { require.InDelta(t, -0.25, out, 1e-12) }},
		{"empty pool", 0, 0, 0, func(t *testing.T, out float64) { require.True(t, math.IsNaN(out)) }},
		{"negative output reserve", 100, -4, 10, func(t *testing.T, out float64) { require.True(t, math.IsNaN(out)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, Swap(tc.reserveIn, tc.reserveOut, tc.in))
		})
	}
}
