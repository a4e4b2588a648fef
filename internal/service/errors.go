package service

import "errors"

var (
	ErrChainUnavailable = errors.New("no ethereum client configured")
	ErrNotPair          = errors.New("address has no pair tokens in storage")

	// ErrPoolRead wraps every failed RPC call made while reading pool state.
	ErrPoolRead = errors.New("pool read")
)
