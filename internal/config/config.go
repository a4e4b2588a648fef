package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	Strict          bool
	RPCEndpoint     string
	RPCTimeout      time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv reads the service configuration from the environment. Only
// malformed values are errors; every variable has a default and ETH_RPC_URL
// may be left empty to disable on-chain pool reads.
func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	strict := false
	if v := os.Getenv("STRICT_VALIDATION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, ErrInvalidStrictValidation
		}
		strict = b
	}

	rpcTimeout, err := durationEnv("RPC_TIMEOUT", 15*time.Second, ErrInvalidRPCTimeout)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 3*time.Second, ErrInvalidShutdownTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:            addr,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		Strict:          strict,
		RPCEndpoint:     os.Getenv("ETH_RPC_URL"),
		RPCTimeout:      rpcTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration, invalid error) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, invalid
	}
	return d, nil
}
