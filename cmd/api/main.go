package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/nulln0ne/maniswap-estimator/internal/config"
	"github.com/nulln0ne/maniswap-estimator/internal/eth"
	"github.com/nulln0ne/maniswap-estimator/internal/handler"
	"github.com/nulln0ne/maniswap-estimator/internal/logging"
	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
	"github.com/nulln0ne/maniswap-estimator/internal/service"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fiber.New()
	app.Use(recoverer.New())

	swapService := service.NewSwapService(logger, m, maniswap.Calculator{Strict: cfg.Strict})
	app.Post("/api/maniswap", handler.NewSwapHandler(logger, swapService).Handle())
	app.Get("/metrics", handler.Metrics(m))
	app.Get("/healthz", handler.Health())

	closeChain := func() {}
	if cfg.RPCEndpoint != "" {
		ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint, cfg.RPCTimeout)
		if err != nil {
			return fmt.Errorf("failed to connect to Ethereum node: %w", err)
		}
		closeChain = ethereumClient.Close

		poolService := service.NewPoolService(logger, m, ethereumClient, swapService)
		app.Get("/pool/swap", handler.NewPoolHandler(logger, poolService).Handle())
	} else {
		logger.Info("ETH_RPC_URL not set, on-chain pool reads disabled")
	}
	defer closeChain()

	logger.Info("starting maniswap estimator", "addr", cfg.Addr, "strict", cfg.Strict)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Warn("graceful shutdown failed", "err", err, "timeout", cfg.ShutdownTimeout.String())
	}
	return nil
}
