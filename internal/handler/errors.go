package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidRequestBody indicates that the request body could not be parsed
// into a complete swap request.
var ErrInvalidRequestBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

// ErrInvalidInputToken is returned when the input token is neither pool token.
var ErrInvalidInputToken = fiber.NewError(fiber.StatusBadRequest, "Invalid input token")

// Strict validation failures.
var (
	ErrSameToken        = fiber.NewError(fiber.StatusBadRequest, "Pool tokens must differ")
	ErrInvalidReserve   = fiber.NewError(fiber.StatusBadRequest, "Invalid reserve")
	ErrInvalidAmount    = fiber.NewError(fiber.StatusBadRequest, "Invalid amount")
	ErrDegenerateResult = fiber.NewError(fiber.StatusBadRequest, "Degenerate swap result")
)

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrAmountRequired is returned when the amount_in parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount_in is required")

// ErrInvalidAmountFormat is returned when amount_in is not a number.
var ErrInvalidAmountFormat = fiber.NewError(fiber.StatusBadRequest, "invalid amount_in format")

// ErrNotPair is returned when the pool address holds no pair state.
var ErrNotPair = fiber.NewError(fiber.StatusBadRequest, "pool is not a pair")

// ErrChainUnavailable is returned when no Ethereum endpoint is configured.
var ErrChainUnavailable = fiber.NewError(fiber.StatusServiceUnavailable, "pool reads are disabled")

// ErrPoolReadFailed signals a failed RPC read of pool state.
var ErrPoolReadFailed = fiber.NewError(fiber.StatusBadGateway, "pool read failed")

// ErrSwapFailedInternal signals a generic server-side swap error.
var ErrSwapFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "swap failed")

// NewAddressRequired returns a 400 Bad Request for a missing address field.
func NewAddressRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" address is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}
