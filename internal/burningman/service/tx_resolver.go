package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// txResolver looks up transactions in batches and remembers results for one build.
type txResolver struct {
	ledger    LedgerRepository
	batchSize int
	local     map[string]model.Tx
	missing   map[string]struct{}
}

func newTxResolver(ledger LedgerRepository) *txResolver {
	return &txResolver{
		ledger:    ledger,
		batchSize: txResolverBatchSize,
		local:     make(map[string]model.Tx),
		missing:   make(map[string]struct{}),
	}
}

// Prefetch resolves all txids not seen yet.
func (r *txResolver) Prefetch(ctx context.Context, txIDs []string) error {
	seen := make(map[string]struct{}, len(txIDs))
	pending := make([]string, 0, len(txIDs))
	for _, id := range txIDs {
		if _, ok := r.local[id]; ok {
			continue
		}
		if _, ok := r.missing[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		pending = append(pending, id)
	}

	size := r.batchSize
	if size <= 0 {
		size = txResolverBatchSize
	}
	for start := 0; start < len(pending); start += size {
		end := start + size
		if end > len(pending) {
			end = len(pending)
		}
		txs, err := r.ledger.Txs(ctx, pending[start:end])
		if err != nil {
			return fmt.Errorf("query txs: %w", err)
		}
		for _, id := range pending[start:end] {
			if tx, ok := txs[id]; ok {
				r.local[id] = tx
			} else {
				r.missing[id] = struct{}{}
			}
		}
	}
	return nil
}

// Tx returns a prefetched transaction.
func (r *txResolver) Tx(txID string) (model.Tx, bool) {
	tx, ok := r.local[txID]
	return tx, ok
}
