package handler

import (
	"encoding/json"
	"math"

	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

// Number is a float64 that encodes NaN and ±Inf as JSON null.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

type SwapResponse struct {
	AmountOut   Number `json:"amount_out"`
	NewReserveA Number `json:"new_reserve_a"`
	NewReserveB Number `json:"new_reserve_b"`
}

func newSwapResponse(res maniswap.SwapResult) SwapResponse {
	return SwapResponse{
		AmountOut:   Number(res.AmountOut),
		NewReserveA: Number(res.NewReserveA),
		NewReserveB: Number(res.NewReserveB),
	}
}
