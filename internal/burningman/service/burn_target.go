package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// burnTargetCalculator estimates how much contributors are expected to burn over the
// last numReimbursementCycles cycles.
type burnTargetCalculator struct {
	ledger LedgerRepository
}

// Calculate returns reimbursements plus estimated trade fee revenue minus what has
// already been burned since the oldest counted cycle. The result may be negative.
func (c *burnTargetCalculator) Calculate(
	ctx context.Context,
	chainHeight int,
	cycles model.Cycles,
	reimbursements []model.ReimbursementRecord,
	candidates model.Candidates,
) (int64, error) {
	_, currentIndex, ok := cycles.Find(chainHeight)
	if !ok {
		return 0, nil
	}

	floorHeight := c.ledger.GenesisBlockHeight()
	if oldest, ok := cycles.Past(currentIndex, numReimbursementCycles); ok {
		floorHeight = oldest.FirstBlockHeight
	}

	var accumulatedReimbursements int64
	for _, r := range reimbursements {
		if r.Height >= floorHeight && r.Height <= chainHeight {
			accumulatedReimbursements += r.Amount
		}
	}

	estimatedFees, err := c.estimatedTradeFees(ctx, cycles, currentIndex)
	if err != nil {
		return 0, err
	}

	legacyBurns, err := c.legacyBurns(ctx, floorHeight, chainHeight)
	if err != nil {
		return 0, err
	}

	var distributedBurns int64
	for _, candidate := range candidates.Ordered() {
		for _, r := range candidate.BurnRecords {
			if r.Height >= floorHeight {
				distributedBurns += r.Amount
			}
		}
	}

	return accumulatedReimbursements + estimatedFees - legacyBurns - distributedBurns, nil
}

// estimatedTradeFees sums the per cycle trade fee revenue estimate walking back from
// the current cycle.
func (c *burnTargetCalculator) estimatedTradeFees(ctx context.Context, cycles model.Cycles, currentIndex int) (int64, error) {
	var total int64
	for i := 0; i < numReimbursementCycles; i++ {
		cycle, ok := cycles.Past(currentIndex, i)
		if !ok {
			break
		}
		raw, err := c.ledger.ParamValue(ctx, model.ParamLockTimeTradePayout, cycle.FirstBlockHeight)
		if err != nil {
			return 0, fmt.Errorf("query %s at %d: %w", model.ParamLockTimeTradePayout, cycle.FirstBlockHeight, err)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %s value %q: %w", model.ParamLockTimeTradePayout, raw, err)
		}
		if value == defaultTradePayoutLockTime {
			value = defaultExpectedBTCFees
		}
		total += value
	}
	return total, nil
}

// legacyBurns sums burns tagged by the legacy burning man in the given height range.
func (c *burnTargetCalculator) legacyBurns(ctx context.Context, minHeight, maxHeight int) (int64, error) {
	txs, err := c.ledger.ProofOfBurnTxs(ctx, minHeight, maxHeight)
	if err != nil {
		return 0, fmt.Errorf("query proof of burn txs: %w", err)
	}
	var total int64
	for _, tx := range txs {
		if tx.BlockHeight < minHeight || tx.BlockHeight > maxHeight {
			continue
		}
		last, ok := tx.LastOutput()
		if !ok || !isLegacyBurnTag(last.OpReturnData) {
			continue
		}
		total += tx.BurntFee
	}
	return total, nil
}
