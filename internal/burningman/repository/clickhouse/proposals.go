package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// Proposals returns the compensation and reimbursement proposals.
func (r *Repository) Proposals(ctx context.Context) ([]model.Proposal, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("proposals", err, start)
	}()

	const query = `
SELECT txid, proposal_type, name, receiver_address
FROM dao_proposals FINAL
WHERE network = ? AND proposal_type IN (?, ?)
ORDER BY txid ASC`

	rows, err := r.conn.Query(ctx, query,
		string(r.opts.Network),
		string(model.ProposalCompensation),
		string(model.ProposalReimbursement),
	)
	if err != nil {
		return nil, fmt.Errorf("query proposals: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var proposals []model.Proposal
	for rows.Next() {
		var (
			p            model.Proposal
			proposalType string
		)
		if err = rows.Scan(&p.TxID, &proposalType, &p.Name, &p.ReceiverAddress); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		p.Type = model.ProposalType(proposalType)
		proposals = append(proposals, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}
	return proposals, nil
}
