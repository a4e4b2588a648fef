// Package maniswap implements the Maniswap weighted geometric swap formula.
package maniswap

import "math"

// Weight is the exponent p of the invariant y^p * n^(1-p) = k.
const Weight = 0.5

// Swap returns the amount of the output token received for amountIn of the
// input token, holding k = reserveOut^p * n^(1-p) constant at the post-trade
// input balance n = reserveIn + amountIn.
//
// No validation is performed. With p = 0.5 the n terms cancel and the result
// is reserveOut - sqrt(reserveOut) regardless of amountIn; zero, negative or
// non-finite inputs yield zero, negative or NaN outputs.
func Swap(reserveIn, reserveOut, amountIn float64) float64 {
	y := reserveOut
	n := reserveIn + amountIn
	k := math.Pow(y, Weight) * math.Pow(n, 1-Weight)
	newY := k / math.Pow(n, 1-Weight)
	return y - newY
}
