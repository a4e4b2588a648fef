// Package ethtest serves fake Uniswap V2 pair storage over an in-process
// JSON-RPC server.
package ethtest

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// ErrUnavailable is returned by every call once Chain.Fail is set.
var ErrUnavailable = errors.New("node unavailable")

// Chain implements the eth_blockNumber and eth_getStorageAt methods.
type Chain struct {
	Block uint64
	Fail  bool
	// Storage[address][slot] = 32-byte value
	Storage map[common.Address]map[common.Hash][]byte
}

func (c *Chain) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	if c.Fail {
		return 0, ErrUnavailable
	}
	return hexutil.Uint64(c.Block), nil
}

func (c *Chain) GetStorageAt(ctx context.Context, addr common.Address, position common.Hash, _ gethrpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	if c.Fail {
		return nil, ErrUnavailable
	}
	if m, ok := c.Storage[addr]; ok {
		if v, ok2 := m[position]; ok2 {
			return hexutil.Bytes(v), nil
		}
	}
	return hexutil.Bytes(make([]byte, 32)), nil
}

// AddPair stores token0, token1 and the packed reserves of a pair at pool.
func (c *Chain) AddPair(pool, token0, token1 common.Address, reserve0, reserve1 *big.Int) {
	if c.Storage == nil {
		c.Storage = map[common.Address]map[common.Hash][]byte{}
	}
	c.Storage[pool] = map[common.Hash][]byte{
		slot(6): rightAlign(token0.Bytes()),
		slot(7): rightAlign(token1.Bytes()),
		slot(8): PackReserves(reserve0, reserve1, 0),
	}
}

// Client serves c over an in-process RPC connection closed at test cleanup.
func (c *Chain) Client(t testing.TB) *ethclient.Client {
	t.Helper()
	srv := gethrpc.NewServer()
	// Register under the standard "eth" namespace so methods map to eth_*
	if err := srv.RegisterName("eth", c); err != nil {
		t.Fatalf("register rpc service: %v", err)
	}
	client := ethclient.NewClient(gethrpc.DialInProc(srv))
	t.Cleanup(func() {
		client.Close()
		srv.Stop()
	})
	return client
}

// PackReserves lays out reserves the way a pair stores them in slot 8.
func PackReserves(r0, r1 *big.Int, ts uint32) []byte {
	v := new(big.Int).SetUint64(uint64(ts))
	v.Lsh(v, 112)
	v.Or(v, r1)
	v.Lsh(v, 112)
	v.Or(v, r0)
	return rightAlign(v.Bytes())
}

func slot(n uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(n))
}

func rightAlign(b []byte) []byte {
	if len(b) > 32 {
		panic("value does not fit in 32 bytes")
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
