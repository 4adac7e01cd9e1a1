package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// buildReimbursements resolves reimbursement issuances at or below the build height.
// Issuances without a reimbursement proposal are skipped. Every issuance contributes
// at most once.
func buildReimbursements(ctx context.Context, ledger LedgerRepository, in *buildInput) ([]model.ReimbursementRecord, error) {
	issuances, err := issuancesUpTo(ctx, ledger, model.IssuanceReimbursement, in.chainHeight)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Issuance, 0, len(issuances))
	heights := make([]int, 0, len(issuances))
	seen := make(map[string]struct{}, len(issuances))
	for _, issuance := range issuances {
		proposal, ok := in.proposals[issuance.TxID]
		if !ok || proposal.Type != model.ProposalReimbursement {
			continue
		}
		if _, dup := seen[issuance.TxID]; dup {
			continue
		}
		seen[issuance.TxID] = struct{}{}
		matched = append(matched, issuance)
		heights = append(heights, issuance.ChainHeight)
	}
	if len(matched) == 0 {
		return nil, nil
	}

	times, err := ledger.BlockTimes(ctx, heights)
	if err != nil {
		return nil, fmt.Errorf("query reimbursement block times: %w", err)
	}

	records := make([]model.ReimbursementRecord, 0, len(matched))
	for _, issuance := range matched {
		records = append(records, model.ReimbursementRecord{
			TxID:       issuance.TxID,
			Amount:     issuance.Amount,
			Height:     issuance.ChainHeight,
			Time:       times[issuance.ChainHeight],
			CycleIndex: in.cycles.Index(issuance.ChainHeight),
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Height != records[j].Height {
			return records[i].Height < records[j].Height
		}
		return records[i].TxID < records[j].TxID
	})
	return records, nil
}
