package maniswap

// PoolState is the two-token pool a swap is quoted against.
type PoolState struct {
	TokenA   string
	ReserveA float64
	TokenB   string
	ReserveB float64
}

// SwapInput names the token being sold and how much of it.
type SwapInput struct {
	InputToken string
	AmountIn   float64
}

// SwapResult holds the amount delivered to the trader and the pool reserves
// after the trade.
type SwapResult struct {
	AmountOut   float64
	NewReserveA float64
	NewReserveB float64
}

// Direction is the side of the pool being sold into.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	SellA
	SellB
)

func (d Direction) String() string {
	switch d {
	case SellA:
		return "sell_a"
	case SellB:
		return "sell_b"
	default:
		return "unknown"
	}
}
