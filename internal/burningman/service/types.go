package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerRepository answers read-only queries about ledger and governance state.
	LedgerRepository interface {
		ChainHeight(ctx context.Context) (int, error)
		GenesisBlockHeight() int
		GenesisTx(ctx context.Context) (model.Tx, bool, error)
		IssuancesByType(ctx context.Context, issuanceType model.IssuanceType) ([]model.Issuance, error)
		Txs(ctx context.Context, txIDs []string) (map[string]model.Tx, error)
		BlockTimes(ctx context.Context, heights []int) (map[int]time.Time, error)
		Cycles(ctx context.Context) (model.Cycles, error)
		ParamValue(ctx context.Context, param model.Param, height int) (string, error)
		ProofOfBurnOutputs(ctx context.Context, maxHeight int) ([]model.TxOutput, error)
		ProofOfBurnTxs(ctx context.Context, minHeight, maxHeight int) ([]model.Tx, error)
	}
	// ProposalRepository resolves governance proposal payloads.
	ProposalRepository interface {
		Proposals(ctx context.Context) ([]model.Proposal, error)
	}
	// Wallet reports facts known only to the local party.
	Wallet interface {
		OwnedGenesisOutputIndexes(ctx context.Context, genesisTxID string) ([]int, bool, error)
		CompensationProposalNames(ctx context.Context) ([]string, error)
	}
	// SnapshotRepository persists exported candidate snapshots.
	SnapshotRepository interface {
		InsertCandidateSnapshots(ctx context.Context, rows []model.CandidateSnapshot) error
	}
	// ViewSource builds the burning man view of a height.
	ViewSource interface {
		View(ctx context.Context, height int) (*View, error)
	}
	// BlockListener is notified once a new block has been fully processed.
	BlockListener interface {
		OnBlockComplete(height int)
	}

	CandidateMetrics interface {
		ObserveBuild(err error, candidates int, started time.Time)
	}
	CacheMetrics interface {
		ObserveHit()
		ObserveMiss()
		ObserveInvalidate()
	}
	ExporterMetrics interface {
		ObserveHeight(err error, height int, started time.Time)
		ObserveFlush(err error, rows int)
	}
)
