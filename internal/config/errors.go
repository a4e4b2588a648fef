package config

import "errors"

var (
	// ErrInvalidStrictValidation indicates that STRICT_VALIDATION is not a
	// boolean.
	ErrInvalidStrictValidation = errors.New("invalid STRICT_VALIDATION environment variable")

	// ErrInvalidRPCTimeout indicates that RPC_TIMEOUT is not a positive
	// duration.
	ErrInvalidRPCTimeout = errors.New("invalid RPC_TIMEOUT environment variable")

	ErrInvalidShutdownTimeout = errors.New("invalid SHUTDOWN_TIMEOUT environment variable")
)
