package maniswap

import "testing"

func BenchmarkSwap(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Swap(13_451_234_567_890, 98_765_432_109_876, 1_000_000)
	}
}

func BenchmarkComputeSwap(b *testing.B) {
	pool := PoolState{TokenA: "WETH", ReserveA: 13_451.23, TokenB: "USDC", ReserveB: 98_765_432.1}
	in := SwapInput{InputToken: "USDC", AmountIn: 1_000}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ComputeSwap(pool, in)
	}
}
