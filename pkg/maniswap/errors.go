package maniswap

import "errors"

var (
	// ErrInvalidInputToken is returned when the input token matches neither
	// pool token.
	ErrInvalidInputToken = errors.New("input token matches neither pool token")

	// Strict mode only.
	ErrSameToken        = errors.New("pool tokens are identical")
	ErrInvalidReserve   = errors.New("reserve must be finite and non-negative")
	ErrInvalidAmount    = errors.New("amount in must be finite and non-negative")
	ErrDegenerateResult = errors.New("swap result is outside the output reserve")
)
