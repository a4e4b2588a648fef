// Package eth connects to an Ethereum JSON-RPC endpoint for pool state reads.
package eth

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// StateReader is the subset of ethclient.Client used to read pair storage.
type StateReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
}

var _ StateReader = (*ethclient.Client)(nil)

// Dial connects to url, giving up after timeout.
func Dial(ctx context.Context, url string, timeout time.Duration) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return ethclient.DialContext(ctx, url)
}
