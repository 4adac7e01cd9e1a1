package service

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"go.uber.org/zap"
)

// Service exposes burning man views, payout splits and fee receiver selection.
//
// Views of the current chain height are cached until the next OnBlockComplete call.
// Views of explicit heights are rebuilt on every call. Returned views are shared and
// must not be modified.
type Service struct {
	ledger  LedgerRepository
	wallet  Wallet
	builder *candidateBuilder
	cache   *snapshotCache
	logger  *zap.Logger

	chainHeight atomic.Int64
	rnd         randInt64N
}

// NewService wires the builder and current height cache over the given collaborators.
func NewService(
	ledger LedgerRepository,
	proposals ProposalRepository,
	wallet Wallet,
	buildMetrics CandidateMetrics,
	cacheMetrics CacheMetrics,
	logger *zap.Logger,
) *Service {
	builder := newCandidateBuilder(ledger, proposals, buildMetrics, logger.Named("builder"))
	return &Service{
		ledger:  ledger,
		wallet:  wallet,
		builder: builder,
		cache:   newSnapshotCache(builder.Build, cacheMetrics),
		logger:  logger,
	}
}

// OnBlockComplete moves the current height and invalidates the cached view.
func (s *Service) OnBlockComplete(height int) {
	s.chainHeight.Store(int64(height))
	s.cache.Invalidate()
	s.logger.Debug("block complete, burning man cache invalidated", zap.Int("height", height))
}

// CurrentHeight returns the last completed block height, asking the ledger until the
// first block notification arrives.
func (s *Service) CurrentHeight(ctx context.Context) (int, error) {
	if h := s.chainHeight.Load(); h > 0 {
		return int(h), nil
	}
	h, err := s.ledger.ChainHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("query chain height: %w", err)
	}
	s.chainHeight.CompareAndSwap(0, int64(h))
	return h, nil
}

// CurrentView returns the cached view of the current chain height.
func (s *Service) CurrentView(ctx context.Context) (*View, error) {
	height, err := s.CurrentHeight(ctx)
	if err != nil {
		return nil, err
	}
	return s.cache.Get(ctx, height)
}

// View builds the view at an explicit height, bypassing the cache.
func (s *Service) View(ctx context.Context, height int) (*View, error) {
	return s.builder.Build(ctx, height)
}

// CurrentCandidates returns the candidates of the current chain height.
func (s *Service) CurrentCandidates(ctx context.Context) (model.Candidates, error) {
	view, err := s.CurrentView(ctx)
	if err != nil {
		return nil, err
	}
	return view.Candidates, nil
}

// Candidates returns the candidates at height.
func (s *Service) Candidates(ctx context.Context, height int) (model.Candidates, error) {
	view, err := s.View(ctx, height)
	if err != nil {
		return nil, err
	}
	return view.Candidates, nil
}

// CurrentBurnTarget returns the burn target of the current chain height.
func (s *Service) CurrentBurnTarget(ctx context.Context) (int64, error) {
	view, err := s.CurrentView(ctx)
	if err != nil {
		return 0, err
	}
	return view.BurnTarget, nil
}

// BurnTarget computes the burn target at height for already built candidates.
func (s *Service) BurnTarget(ctx context.Context, height int, candidates model.Candidates) (int64, error) {
	in, err := s.builder.loadInput(ctx, height)
	if err != nil {
		return 0, err
	}
	reimbursements, err := buildReimbursements(ctx, s.ledger, in)
	if err != nil {
		return 0, err
	}
	return s.builder.burnTarget.Calculate(ctx, height, in.cycles, reimbursements, candidates)
}

// CurrentReimbursements returns the reimbursements up to the current chain height.
func (s *Service) CurrentReimbursements(ctx context.Context) ([]model.ReimbursementRecord, error) {
	view, err := s.CurrentView(ctx)
	if err != nil {
		return nil, err
	}
	return view.Reimbursements, nil
}

// Reimbursements returns the reimbursements up to height.
func (s *Service) Reimbursements(ctx context.Context, height int) ([]model.ReimbursementRecord, error) {
	in, err := s.builder.loadInput(ctx, height)
	if err != nil {
		return nil, err
	}
	return buildReimbursements(ctx, s.ledger, in)
}

// SelectionHeight is the height both trade peers use to build the delayed payout split.
func (s *Service) SelectionHeight(ctx context.Context) (int, error) {
	height, err := s.CurrentHeight(ctx)
	if err != nil {
		return 0, err
	}
	return s.SnapshotHeightFor(height), nil
}

// SnapshotHeightFor returns the snapshot height both trade peers derive from chainHeight.
func (s *Service) SnapshotHeightFor(chainHeight int) int {
	return SnapshotHeight(s.ledger.GenesisBlockHeight(), chainHeight, snapshotGrid)
}

// DelayedPayoutReceivers returns the outputs of a delayed payout tx funded with
// inputAmount. The result only depends on ledger state at selectionHeight.
func (s *Service) DelayedPayoutReceivers(ctx context.Context, selectionHeight int, inputAmount, tradeTxFee int64) ([]model.Receiver, error) {
	view, err := s.View(ctx, selectionHeight)
	if err != nil {
		return nil, err
	}
	fallback, err := s.LegacyBurningManAddress(ctx, selectionHeight)
	if err != nil {
		return nil, err
	}
	receivers := splitPayout(view.Candidates, fallback, inputAmount, tradeTxFee)
	s.logger.Debug("delayed payout receivers",
		zap.Int("selection_height", selectionHeight),
		zap.Int64("input_amount", inputAmount),
		zap.Int("receivers", len(receivers)),
	)
	return receivers, nil
}

// FeeReceiverAddress picks the address receiving a single trade fee payment.
func (s *Service) FeeReceiverAddress(ctx context.Context) (string, error) {
	view, err := s.CurrentView(ctx)
	if err != nil {
		return "", err
	}
	fallback, err := s.LegacyBurningManAddress(ctx, view.Height)
	if err != nil {
		return "", err
	}
	return pickOne(view.Candidates, fallback, s.rnd), nil
}

// LegacyBurningManAddress returns the legacy burning man address effective at height.
func (s *Service) LegacyBurningManAddress(ctx context.Context, height int) (string, error) {
	address, err := s.ledger.ParamValue(ctx, model.ParamRecipientBTCAddress, height)
	if err != nil {
		return "", fmt.Errorf("query %s at %d: %w", model.ParamRecipientBTCAddress, height, err)
	}
	return address, nil
}

// MyGenesisOutputNames returns the candidate names of genesis outputs owned by the local
// wallet. The second result is false when the wallet does not know the genesis tx.
func (s *Service) MyGenesisOutputNames(ctx context.Context) ([]string, bool, error) {
	genesis, ok, err := s.ledger.GenesisTx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("query genesis tx: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	indexes, ok, err := s.wallet.OwnedGenesisOutputIndexes(ctx, genesis.ID)
	if err != nil {
		return nil, false, fmt.Errorf("query owned genesis outputs: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		names = append(names, GenesisOutputName(idx))
	}
	return uniqueSorted(names), true, nil
}

// MyCompensationRequestNames returns the names used in the local party's compensation requests.
func (s *Service) MyCompensationRequestNames(ctx context.Context) ([]string, error) {
	names, err := s.wallet.CompensationProposalNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("query compensation proposal names: %w", err)
	}
	return uniqueSorted(names), nil
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
