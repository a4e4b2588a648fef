package handler

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/nulln0ne/maniswap-estimator/internal/eth/ethtest"
	"github.com/nulln0ne/maniswap-estimator/internal/logging"
	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
	"github.com/nulln0ne/maniswap-estimator/internal/service"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

var (
	token0 = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token1 = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	pair   = common.HexToAddress("0x0000000000000000000000000000000000000abc")
)

func newPoolApp(t *testing.T, chain *ethtest.Chain) *fiber.App {
	t.Helper()
	m, err := metrics.New()
	require.NoError(t, err)

	logger := logging.Discard()
	swaps := service.NewSwapService(logger, m, maniswap.Calculator{})
	h := NewPoolHandler(logger, service.NewPoolService(logger, m, chain.Client(t), swaps))

	app := fiber.New()
	app.Get("/pool/swap", h.Handle())
	return app
}

func getPoolSwap(t *testing.T, app *fiber.App, query string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pool/swap"+query, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestPoolHandler_OK(t *testing.T) {
	chain := &ethtest.Chain{Block: 42}
	chain.AddPair(pair, token0, token1, big.NewInt(1_000_000), big.NewInt(2_000_000))
	app := newPoolApp(t, chain)

	resp, body := getPoolSwap(t, app, "?pool="+pair.Hex()+"&input_token="+token0.Hex()+"&amount_in=1000")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got PoolSwapResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Equal(t, uint64(42), got.BlockNumber)
	require.Equal(t, pair.Hex(), got.Pool)
	require.Equal(t, token0.Hex(), got.TokenA)
	require.Equal(t, Number(1_000_000), got.ReserveA)
	require.Equal(t, Number(1_001_000), got.NewReserveA)
	require.InDelta(t, 2_000_000-1414.213562373095, float64(got.AmountOut), 1e-6)
}

func TestPoolHandler_Validation(t *testing.T) {
	app := newPoolApp(t, &ethtest.Chain{Block: 1})

	base := "?pool=" + pair.Hex() + "&input_token=" + token0.Hex()
	cases := []struct {
		query, want string
	}{
		{"", "pool address is required"},
		{"?pool=" + pair.Hex(), "input_token address is required"},
		{"?pool=0x1234&input_token=" + token0.Hex(), "invalid pool address"},
		{base, "amount_in is required"},
		{base + "&amount_in=ten", "invalid amount_in format"},
		{base + "&amount_in=1", "pool is not a pair"},
	}
	for _, tc := range cases {
		resp, body := getPoolSwap(t, app, tc.query)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.query)
		require.Equal(t, tc.want, body, tc.query)
	}
}

func TestPoolHandler_InvalidInputToken(t *testing.T) {
	chain := &ethtest.Chain{Block: 1}
	chain.AddPair(pair, token0, token1, big.NewInt(10), big.NewInt(10))
	app := newPoolApp(t, chain)

	other := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	resp, body := getPoolSwap(t, app, "?pool="+pair.Hex()+"&input_token="+other.Hex()+"&amount_in=1")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid input token", body)
}

func TestPoolHandler_RPCFailure(t *testing.T) {
	app := newPoolApp(t, &ethtest.Chain{Fail: true})

	resp, body := getPoolSwap(t, app, "?pool="+pair.Hex()+"&input_token="+token0.Hex()+"&amount_in=1")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Equal(t, "pool read failed", body)
}
