package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"go.uber.org/zap"
)

// View is the full burning man state derived for one chain height.
type View struct {
	Height         int
	Candidates     model.Candidates
	BurnTarget     int64
	Reimbursements []model.ReimbursementRecord
}

// candidateBuilder materializes candidates from ledger state. Every Build call starts
// from scratch and shares no state with other calls.
type candidateBuilder struct {
	ledger     LedgerRepository
	proposals  ProposalRepository
	burnTarget *burnTargetCalculator
	metrics    CandidateMetrics
	logger     *zap.Logger
}

func newCandidateBuilder(ledger LedgerRepository, proposals ProposalRepository, metrics CandidateMetrics, logger *zap.Logger) *candidateBuilder {
	return &candidateBuilder{
		ledger:     ledger,
		proposals:  proposals,
		burnTarget: &burnTargetCalculator{ledger: ledger},
		metrics:    metrics,
		logger:     logger,
	}
}

// buildInput is the ledger state one build reads more than once.
type buildInput struct {
	chainHeight int
	cycles      model.Cycles
	proposals   map[string]model.Proposal
	txs         *txResolver
}

// compensationCandidate pairs a compensation issuance with its proposal.
type compensationCandidate struct {
	issuance model.Issuance
	proposal model.Proposal
}

// Build returns candidates with shares, the burn target and reimbursements at chainHeight.
func (b *candidateBuilder) Build(ctx context.Context, chainHeight int) (view *View, err error) {
	started := time.Now()
	defer func() {
		if b.metrics != nil {
			n := 0
			if view != nil {
				n = len(view.Candidates)
			}
			b.metrics.ObserveBuild(err, n, started)
		}
	}()

	in, err := b.loadInput(ctx, chainHeight)
	if err != nil {
		return nil, err
	}

	candidates := make(model.Candidates)
	if err = b.addCompensations(ctx, in, candidates); err != nil {
		return nil, err
	}
	if err = b.addGenesisOutputs(ctx, in, candidates); err != nil {
		return nil, err
	}
	if err = b.addBurns(ctx, in, candidates); err != nil {
		return nil, err
	}

	reimbursements, err := buildReimbursements(ctx, b.ledger, in)
	if err != nil {
		return nil, err
	}

	var totalDecayedCompensation, totalDecayedBurn int64
	for _, c := range candidates {
		totalDecayedCompensation += c.AccumulatedDecayedCompensationAmount
		totalDecayedBurn += c.AccumulatedDecayedBurnAmount
	}
	target, err := b.burnTarget.Calculate(ctx, chainHeight, in.cycles, reimbursements, candidates)
	if err != nil {
		return nil, err
	}
	calculateShares(candidates, totalDecayedCompensation, totalDecayedBurn, target)

	b.logger.Debug("built burning man candidates",
		zap.Int("height", chainHeight),
		zap.Int("candidates", len(candidates)),
		zap.Int64("burn_target", target),
		zap.Int("reimbursements", len(reimbursements)),
	)

	return &View{
		Height:         chainHeight,
		Candidates:     candidates,
		BurnTarget:     target,
		Reimbursements: reimbursements,
	}, nil
}

func (b *candidateBuilder) loadInput(ctx context.Context, chainHeight int) (*buildInput, error) {
	cycles, err := b.ledger.Cycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cycles: %w", err)
	}
	proposals, err := b.proposals.Proposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("query proposals: %w", err)
	}
	byTxID := make(map[string]model.Proposal, len(proposals))
	for _, p := range proposals {
		if _, ok := byTxID[p.TxID]; !ok {
			byTxID[p.TxID] = p
		}
	}
	return &buildInput{
		chainHeight: chainHeight,
		cycles:      cycles,
		proposals:   byTxID,
		txs:         newTxResolver(b.ledger),
	}, nil
}

func (b *candidateBuilder) addCompensations(ctx context.Context, in *buildInput, candidates model.Candidates) error {
	issuances, err := issuancesUpTo(ctx, b.ledger, model.IssuanceCompensation, in.chainHeight)
	if err != nil {
		return err
	}

	var (
		entries []compensationCandidate
		txIDs   []string
		heights []int
	)
	for _, issuance := range issuances {
		proposal, ok := in.proposals[issuance.TxID]
		if !ok || proposal.Type != model.ProposalCompensation {
			continue
		}
		entries = append(entries, compensationCandidate{issuance: issuance, proposal: proposal})
		if proposal.ReceiverAddress == "" {
			txIDs = append(txIDs, proposal.TxID)
		}
		heights = append(heights, issuance.ChainHeight)
	}
	if len(entries) == 0 {
		return nil
	}
	if err := in.txs.Prefetch(ctx, txIDs); err != nil {
		return err
	}
	times, err := b.ledger.BlockTimes(ctx, heights)
	if err != nil {
		return fmt.Errorf("query block times: %w", err)
	}

	for _, e := range entries {
		candidate := candidates.GetOrCreate(e.proposal.Name)

		address, ok := b.compensationAddress(in, e.proposal)
		if !ok {
			continue
		}
		height := e.issuance.ChainHeight
		cycleIndex := in.cycles.Index(height)
		amount, keep := correctCompensation(compensationEntry{
			txID:       e.issuance.TxID,
			name:       e.proposal.Name,
			cycleIndex: cycleIndex,
			amount:     e.issuance.Amount,
		})
		if !keep {
			continue
		}
		decayed, err := decayedCompensationAmount(amount, height, in.chainHeight)
		if err != nil {
			return fmt.Errorf("decay compensation %s: %w", e.issuance.TxID, err)
		}
		candidate.AddCompensation(model.CompensationRecord{
			Address:       address,
			Amount:        amount,
			DecayedAmount: decayed,
			Height:        height,
			TxID:          e.issuance.TxID,
			Time:          times[height],
			CycleIndex:    cycleIndex,
		})
	}
	return nil
}

// compensationAddress resolves where a contributor wants to be paid. A request tx
// usually has 4 outputs with the BTC change at index 2. Without change it has 3 and
// the BSQ output at index 1 is used.
func (b *candidateBuilder) compensationAddress(in *buildInput, proposal model.Proposal) (string, bool) {
	if proposal.ReceiverAddress != "" {
		return proposal.ReceiverAddress, true
	}
	tx, ok := in.txs.Tx(proposal.TxID)
	if !ok {
		return "", false
	}
	idx := 1
	if len(tx.Outputs) == 4 {
		idx = 2
	}
	if idx >= len(tx.Outputs) || tx.Outputs[idx].Address == "" {
		return "", false
	}
	return tx.Outputs[idx].Address, true
}

func (b *candidateBuilder) addGenesisOutputs(ctx context.Context, in *buildInput, candidates model.Candidates) error {
	genesis, ok, err := b.ledger.GenesisTx(ctx)
	if err != nil {
		return fmt.Errorf("query genesis tx: %w", err)
	}
	if !ok {
		return nil
	}

	heights := make([]int, 0, len(genesis.Outputs))
	for _, out := range genesis.Outputs {
		heights = append(heights, out.BlockHeight)
	}
	times, err := b.ledger.BlockTimes(ctx, heights)
	if err != nil {
		return fmt.Errorf("query genesis block times: %w", err)
	}

	for _, out := range genesis.Outputs {
		candidate := candidates.GetOrCreate(GenesisOutputName(out.Index))
		candidate.AddCompensation(model.CompensationRecord{
			Address:       out.Address,
			Amount:        out.Value,
			DecayedAmount: decayedGenesisAmount(out.Value),
			Height:        out.BlockHeight,
			TxID:          genesis.ID,
			Time:          times[out.BlockHeight],
			CycleIndex:    0,
		})
	}
	return nil
}

func (b *candidateBuilder) addBurns(ctx context.Context, in *buildInput, candidates model.Candidates) error {
	outputs, err := b.ledger.ProofOfBurnOutputs(ctx, in.chainHeight)
	if err != nil {
		return fmt.Errorf("query proof of burn outputs: %w", err)
	}
	byHash := groupByBurnHash(outputs, in.chainHeight)

	matched := make(map[string][]model.TxOutput, len(candidates))
	var txIDs []string
	for _, name := range candidates.Names() {
		outs := byHash[hex.EncodeToString(BurnHash(name))]
		if len(outs) == 0 {
			continue
		}
		matched[name] = outs
		for _, out := range outs {
			txIDs = append(txIDs, out.TxID)
		}
	}
	if err := in.txs.Prefetch(ctx, txIDs); err != nil {
		return err
	}

	for _, name := range candidates.Names() {
		candidate := candidates[name]
		for _, out := range matched[name] {
			var (
				amount int64
				ts     time.Time
			)
			if tx, ok := in.txs.Tx(out.TxID); ok {
				amount = tx.BurntFee
				ts = tx.Time
			} else {
				b.logger.Warn("proof of burn tx not found, counting zero burn",
					zap.String("txid", out.TxID),
					zap.String("candidate", name),
				)
			}
			decayed, err := decayedBurnAmount(amount, out.BlockHeight, in.chainHeight)
			if err != nil {
				return fmt.Errorf("decay burn %s: %w", out.TxID, err)
			}
			candidate.AddBurn(model.BurnRecord{
				Amount:        amount,
				DecayedAmount: decayed,
				Height:        out.BlockHeight,
				TxID:          out.TxID,
				Time:          ts,
				CycleIndex:    in.cycles.Index(out.BlockHeight),
			})
		}
	}
	return nil
}

// groupByBurnHash indexes proof-of-burn outputs at or below chainHeight by the hex of
// the hash embedded in their OP_RETURN data.
func groupByBurnHash(outputs []model.TxOutput, chainHeight int) map[string][]model.TxOutput {
	sorted := make([]model.TxOutput, 0, len(outputs))
	for _, out := range outputs {
		if out.BlockHeight <= chainHeight {
			sorted = append(sorted, out)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BlockHeight != sorted[j].BlockHeight {
			return sorted[i].BlockHeight < sorted[j].BlockHeight
		}
		if sorted[i].TxID != sorted[j].TxID {
			return sorted[i].TxID < sorted[j].TxID
		}
		return sorted[i].Index < sorted[j].Index
	})

	byHash := make(map[string][]model.TxOutput)
	seen := make(map[string]struct{}, len(sorted))
	for _, out := range sorted {
		key := out.TxID + ":" + strconv.Itoa(out.Index)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		hash, ok := burnHashFromOpReturn(out.OpReturnData)
		if !ok {
			continue
		}
		h := hex.EncodeToString(hash)
		byHash[h] = append(byHash[h], out)
	}
	return byHash
}

// BurnHash is the proof-of-burn pre-image hash of a contributor identity:
// RIPEMD160(SHA256(utf8(name))).
func BurnHash(name string) []byte {
	return btcutil.Hash160([]byte(name))
}

// burnHashFromOpReturn strips the type and version bytes of proof-of-burn OP_RETURN data.
func burnHashFromOpReturn(data []byte) ([]byte, bool) {
	if len(data) < 22 {
		return nil, false
	}
	return data[2:22], true
}

// GenesisOutputName is the identity synthesized for a genesis output.
func GenesisOutputName(index int) string {
	return genesisOutputPrefix + strconv.Itoa(index)
}

// issuancesUpTo returns issuances of a type at or below chainHeight ordered by height
// and txid so that record order does not depend on the store.
func issuancesUpTo(ctx context.Context, ledger LedgerRepository, issuanceType model.IssuanceType, chainHeight int) ([]model.Issuance, error) {
	all, err := ledger.IssuancesByType(ctx, issuanceType)
	if err != nil {
		return nil, fmt.Errorf("query %s issuances: %w", issuanceType, err)
	}
	out := make([]model.Issuance, 0, len(all))
	for _, issuance := range all {
		if issuance.ChainHeight <= chainHeight {
			out = append(out, issuance)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ChainHeight != out[j].ChainHeight {
			return out[i].ChainHeight < out[j].ChainHeight
		}
		return out[i].TxID < out[j].TxID
	})
	return out, nil
}
