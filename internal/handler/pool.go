package handler

import (
	"log/slog"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	"github.com/nulln0ne/maniswap-estimator/internal/service"
)

type PoolHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewPoolHandler(logger *slog.Logger, svc *service.PoolService) *PoolHandler {
	return &PoolHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type PoolSwapRequest struct {
	Pool       string `query:"pool"`
	InputToken string `query:"input_token"`
	AmountIn   string `query:"amount_in"`
}

// PoolSwapResponse is a SwapResponse together with the pool state it was
// computed from.
type PoolSwapResponse struct {
	SwapResponse
	Pool        string `json:"pool"`
	BlockNumber uint64 `json:"block_number"`
	TokenA      string `json:"token_a"`
	ReserveA    Number `json:"reserve_a"`
	TokenB      string `json:"token_b"`
	ReserveB    Number `json:"reserve_b"`
}

func (h *PoolHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseAndValidateRequest(c)
		if err != nil {
			return err
		}

		amountIn, err := parseAmount(req.AmountIn)
		if err != nil {
			return err
		}

		pool := common.HexToAddress(req.Pool)
		input := common.HexToAddress(req.InputToken)

		snap, res, err := h.service.Swap(c, pool, input, amountIn)
		if err != nil {
			return h.handleServiceError(err)
		}

		state := snap.State()
		return c.JSON(PoolSwapResponse{
			SwapResponse: newSwapResponse(res),
			Pool:         snap.Pool.Hex(),
			BlockNumber:  snap.BlockNumber,
			TokenA:       state.TokenA,
			ReserveA:     Number(state.ReserveA),
			TokenB:       state.TokenB,
			ReserveB:     Number(state.ReserveB),
		})
	}
}

func (h *PoolHandler) parseAndValidateRequest(c fiber.Ctx) (*PoolSwapRequest, error) {
	var req PoolSwapRequest

	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return nil, ErrInvalidQueryParameters
	}

	for _, f := range []struct{ field, addr string }{
		{"pool", req.Pool},
		{"input_token", req.InputToken},
	} {
		if f.addr == "" {
			return nil, NewAddressRequired(f.field)
		}
		if !common.IsHexAddress(f.addr) {
			return nil, NewInvalidAddress(f.field)
		}
	}

	return &req, nil
}

func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, ErrAmountRequired
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}
	return v, nil
}
