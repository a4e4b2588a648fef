package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nulln0ne/maniswap-estimator/internal/eth"
	"github.com/nulln0ne/maniswap-estimator/internal/metrics"
	"github.com/nulln0ne/maniswap-estimator/pkg/maniswap"
)

// Storage slots of a Uniswap V2 pair:
//
//	address public factory;   // slot 5
//	address public token0;    // slot 6
//	address public token1;    // slot 7
//	uint112 private reserve0; // slot 8, packed with reserve1 and blockTimestampLast
const (
	slotToken0   = 6
	slotToken1   = 7
	slotReserves = 8
)

// PoolSnapshot is the state of a pair at one block.
type PoolSnapshot struct {
	Pool        common.Address
	BlockNumber uint64
	Token0      common.Address
	Token1      common.Address
	Reserve0    *big.Int
	Reserve1    *big.Int
}

// State converts the snapshot to calculator input. Tokens are identified by
// their checksummed hex address; reserves stay in raw token units.
func (p *PoolSnapshot) State() maniswap.PoolState {
	r0, _ := new(big.Float).SetInt(p.Reserve0).Float64()
	r1, _ := new(big.Float).SetInt(p.Reserve1).Float64()
	return maniswap.PoolState{
		TokenA:   p.Token0.Hex(),
		ReserveA: r0,
		TokenB:   p.Token1.Hex(),
		ReserveB: r1,
	}
}

// PoolService quotes swaps against reserves read from an on-chain pair.
type PoolService struct {
	BaseService
	chain eth.StateReader
	swaps *SwapService
}

// NewPoolService constructs a PoolService. A nil interface chain makes every
// call fail with ErrChainUnavailable; a typed nil such as a nil
// *ethclient.Client is not detected and must not be passed.
func NewPoolService(logger *slog.Logger, m *metrics.Metrics, chain eth.StateReader, swaps *SwapService) *PoolService {
	return &PoolService{
		BaseService: BaseService{logger: logger, metrics: m},
		chain:       chain,
		swaps:       swaps,
	}
}

// Swap reads pool at the latest block and sells amountIn of inputToken into it.
func (p *PoolService) Swap(ctx context.Context, pool, inputToken common.Address, amountIn float64) (*PoolSnapshot, maniswap.SwapResult, error) {
	snap, err := p.Snapshot(ctx, pool)
	if err != nil {
		return nil, maniswap.SwapResult{}, err
	}

	res, err := p.swaps.Swap(ctx, snap.State(), maniswap.SwapInput{
		InputToken: inputToken.Hex(),
		AmountIn:   amountIn,
	})
	if err != nil {
		return snap, maniswap.SwapResult{}, err
	}
	return snap, res, nil
}

// Snapshot reads token0, token1 and the reserves of pool at the latest block.
func (p *PoolService) Snapshot(ctx context.Context, pool common.Address) (*PoolSnapshot, error) {
	if p.chain == nil {
		return nil, ErrChainUnavailable
	}

	snap, err := p.snapshot(ctx, pool)
	p.metrics.PoolRead(err == nil)
	if err != nil {
		return nil, err
	}

	p.logger.DebugContext(ctx, "pool state read", "pool", pool.Hex(), "block", snap.BlockNumber,
		"token0", snap.Token0.Hex(), "token1", snap.Token1.Hex(),
		"reserve0", snap.Reserve0.String(), "reserve1", snap.Reserve1.String())
	return snap, nil
}

func (p *PoolService) snapshot(ctx context.Context, pool common.Address) (*PoolSnapshot, error) {
	bn, err := p.chain.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: block number: %w", ErrPoolRead, err)
	}
	blockNum := new(big.Int).SetUint64(bn)

	b0, err := p.readSlot(ctx, pool, blockNum, slotToken0)
	if err != nil {
		return nil, err
	}
	b1, err := p.readSlot(ctx, pool, blockNum, slotToken1)
	if err != nil {
		return nil, err
	}
	token0, token1 := common.BytesToAddress(b0), common.BytesToAddress(b1)
	if token0 == (common.Address{}) || token1 == (common.Address{}) {
		return nil, fmt.Errorf("pool %s: %w", pool.Hex(), ErrNotPair)
	}

	br, err := p.readSlot(ctx, pool, blockNum, slotReserves)
	if err != nil {
		return nil, err
	}
	reserve0, reserve1 := parseReserves(br)

	return &PoolSnapshot{
		Pool:        pool,
		BlockNumber: bn,
		Token0:      token0,
		Token1:      token1,
		Reserve0:    reserve0,
		Reserve1:    reserve1,
	}, nil
}

func (p *PoolService) readSlot(ctx context.Context, pool common.Address, blockNum *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := p.chain.StorageAt(ctx, pool, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("%w: storageAt slot %d (pool %s, block %s): %w",
			ErrPoolRead, slot, pool.Hex(), blockNum.String(), err)
	}
	return b, nil
}

// parseReserves unpacks the two uint112 reserves from the 32-byte storage word
//
//	[ 32 bits timestamp | 112 bits reserve1 | 112 bits reserve0 ]
//
// read as a big-endian integer.
func parseReserves(b []byte) (reserve0, reserve1 *big.Int) {
	v := new(big.Int).SetBytes(b)
	one := big.NewInt(1)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(one, 112), one)

	reserve0 = new(big.Int).And(v, mask112)
	reserve1 = new(big.Int).And(new(big.Int).Rsh(v, 112), mask112)
	return
}
