package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/nulln0ne/maniswap-estimator/internal/service"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

type SwapHandler struct {
	BaseHandler
	service *service.SwapService
}

func NewSwapHandler(logger *slog.Logger, svc *service.SwapService) *SwapHandler {
	return &SwapHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

// SwapRequest is the JSON body of a swap. Every field is required; pointers
// tell a missing or null field apart from a zero value.
type SwapRequest struct {
	TokenA     *string  `json:"token_a"`
	ReserveA   *float64 `json:"reserve_a"`
	TokenB     *string  `json:"token_b"`
	ReserveB   *float64 `json:"reserve_b"`
	InputToken *string  `json:"input_token"`
	AmountIn   *float64 `json:"amount_in"`
}

var errDuplicateField = errors.New("duplicate field")

// UnmarshalJSON matches field names exactly. encoding/json would otherwise
// accept "TOKEN_A" for token_a. A repeated field is an error.
func (r *SwapRequest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("swap request: expected object, got %v", tok)
	}

	fields := map[string]any{
		"token_a":     &r.TokenA,
		"reserve_a":   &r.ReserveA,
		"token_b":     &r.TokenB,
		"reserve_b":   &r.ReserveB,
		"input_token": &r.InputToken,
		"amount_in":   &r.AmountIn,
	}
	seen := make(map[string]bool, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if seen[key] {
			return fmt.Errorf("%w %q", errDuplicateField, key)
		}
		seen[key] = true

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		dst, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func (r *SwapRequest) complete() bool {
	return r.TokenA != nil && r.ReserveA != nil &&
		r.TokenB != nil && r.ReserveB != nil &&
		r.InputToken != nil && r.AmountIn != nil
}

func (h *SwapHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseRequest(c)
		if err != nil {
			return err
		}

		pool := maniswap.PoolState{
			TokenA:   *req.TokenA,
			ReserveA: *req.ReserveA,
			TokenB:   *req.TokenB,
			ReserveB: *req.ReserveB,
		}
		in := maniswap.SwapInput{InputToken: *req.InputToken, AmountIn: *req.AmountIn}

		res, err := h.service.Swap(c, pool, in)
		if err != nil {
			return h.handleServiceError(err)
		}

		return c.JSON(newSwapResponse(res))
	}
}

func (h *SwapHandler) parseRequest(c fiber.Ctx) (*SwapRequest, error) {
	var req SwapRequest

	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		h.logger.Debug("failed to decode swap request", "err", err)
		return nil, ErrInvalidRequestBody
	}
	if !req.complete() {
		h.logger.Debug("swap request is missing fields")
		return nil, ErrInvalidRequestBody
	}

	return &req, nil
}
