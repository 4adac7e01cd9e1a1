// Package wallet provides the local party facts the burning man service asks a wallet for.
package wallet

import (
	"context"
	"fmt"
	"sort"
)

// Static answers wallet queries from operator configuration.
type Static struct {
	genesisTxID   string
	genesisOwned  []int
	proposalNames []string
}

// NewStatic returns a wallet that owns genesisOwned outputs of genesisTxID and submitted
// compensation requests under proposalNames. An empty genesisTxID means the wallet does
// not know the genesis tx.
func NewStatic(genesisTxID string, genesisOwned []int, proposalNames []string) (*Static, error) {
	indexes := append([]int(nil), genesisOwned...)
	for _, idx := range indexes {
		if idx < 0 {
			return nil, fmt.Errorf("negative genesis output index %d", idx)
		}
	}
	sort.Ints(indexes)

	return &Static{
		genesisTxID:   genesisTxID,
		genesisOwned:  indexes,
		proposalNames: append([]string(nil), proposalNames...),
	}, nil
}

func (w *Static) OwnedGenesisOutputIndexes(_ context.Context, genesisTxID string) ([]int, bool, error) {
	if w.genesisTxID == "" || w.genesisTxID != genesisTxID {
		return nil, false, nil
	}
	return append([]int(nil), w.genesisOwned...), true, nil
}

func (w *Static) CompensationProposalNames(context.Context) ([]string, error) {
	return append([]string(nil), w.proposalNames...), nil
}
