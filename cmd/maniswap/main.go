package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/nulln0ne/maniswap-estimator/internal/handler"
	"github.com/nulln0ne/maniswap-estimator/internal/logging"
	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
	"github.com/nulln0ne/maniswap-estimator/internal/service"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

var errInputTokenRequired = errors.New("--input-token is required")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		tokenA     string
		reserveA   float64
		tokenB     string
		reserveB   float64
		inputToken string
		amountIn   float64
		strict     bool
		logLevel   string
	)

	flags := pflag.NewFlagSet("maniswap", pflag.ContinueOnError)
	flags.StringVar(&tokenA, "token-a", "A", "identifier of the first pool token")
	flags.Float64Var(&reserveA, "reserve-a", 0, "reserve of the first pool token")
	flags.StringVar(&tokenB, "token-b", "B", "identifier of the second pool token")
	flags.Float64Var(&reserveB, "reserve-b", 0, "reserve of the second pool token")
	flags.StringVarP(&inputToken, "input-token", "t", "", "identifier of the token being sold")
	flags.Float64VarP(&amountIn, "amount-in", "i", 0, "amount of the input token being sold")
	flags.BoolVar(&strict, "strict", false, "reject invalid reserves, amounts and degenerate results")
	flags.StringVarP(&logLevel, "log-level", "l", "error", "log level written to stderr")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if inputToken == "" {
		return errInputTokenRequired
	}

	m, err := metrics.New()
	if err != nil {
		return err
	}
	svc := service.NewSwapService(logging.New(os.Stderr, logLevel, "text"), m, maniswap.Calculator{Strict: strict})

	res, err := svc.Swap(context.Background(), maniswap.PoolState{
		TokenA:   tokenA,
		ReserveA: reserveA,
		TokenB:   tokenB,
		ReserveB: reserveB,
	}, maniswap.SwapInput{InputToken: inputToken, AmountIn: amountIn})
	if err != nil {
		return err
	}

	return json.NewEncoder(stdout).Encode(handler.SwapResponse{
		AmountOut:   handler.Number(res.AmountOut),
		NewReserveA: handler.Number(res.NewReserveA),
		NewReserveB: handler.Number(res.NewReserveB),
	})
}
