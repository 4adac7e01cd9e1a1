package transport

import (
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/internal/burningman/service"
	"github.com/shopspring/decimal"
)

type heightResponse struct {
	Height int `json:"height"`
}

type snapshotHeightResponse struct {
	ChainHeight    int `json:"chain_height"`
	SnapshotHeight int `json:"snapshot_height"`
}

type compensationRecord struct {
	TxID          string    `json:"txid"`
	Address       string    `json:"address"`
	Amount        int64     `json:"amount"`
	DecayedAmount int64     `json:"decayed_amount"`
	Height        int       `json:"height"`
	Time          time.Time `json:"time"`
	CycleIndex    int       `json:"cycle_index"`
}

type burnRecord struct {
	TxID          string    `json:"txid"`
	Amount        int64     `json:"amount"`
	DecayedAmount int64     `json:"decayed_amount"`
	Height        int       `json:"height"`
	Time          time.Time `json:"time"`
	CycleIndex    int       `json:"cycle_index"`
}

type candidate struct {
	Name                                 string               `json:"name"`
	ReceiverAddress                      string               `json:"receiver_address,omitempty"`
	AccumulatedCompensationAmount        int64                `json:"accumulated_compensation_amount"`
	AccumulatedDecayedCompensationAmount int64                `json:"accumulated_decayed_compensation_amount"`
	AccumulatedBurnAmount                int64                `json:"accumulated_burn_amount"`
	AccumulatedDecayedBurnAmount         int64                `json:"accumulated_decayed_burn_amount"`
	CompensationShare                    decimal.Decimal      `json:"compensation_share"`
	BurnAmountShare                      decimal.Decimal      `json:"burn_amount_share"`
	EffectiveBurnOutputShare             decimal.Decimal      `json:"effective_burn_output_share"`
	CompensationRecords                  []compensationRecord `json:"compensation_records,omitempty"`
	BurnRecords                          []burnRecord         `json:"burn_records,omitempty"`
}

type candidatesResponse struct {
	Height     int         `json:"height"`
	BurnTarget int64       `json:"burn_target"`
	Candidates []candidate `json:"candidates"`
}

type burnTargetResponse struct {
	Height     int   `json:"height"`
	BurnTarget int64 `json:"burn_target"`
}

type reimbursement struct {
	TxID       string    `json:"txid"`
	Amount     int64     `json:"amount"`
	Height     int       `json:"height"`
	Time       time.Time `json:"time"`
	CycleIndex int       `json:"cycle_index"`
}

type reimbursementsResponse struct {
	Height         int             `json:"height"`
	Reimbursements []reimbursement `json:"reimbursements"`
}

type receiver struct {
	Address   string `json:"address"`
	Amount    int64  `json:"amount"`
	PkScript  string `json:"pk_script,omitempty"`
	AmountBTC string `json:"amount_btc,omitempty"`
}

type delayedPayoutResponse struct {
	SelectionHeight int        `json:"selection_height"`
	Receivers       []receiver `json:"receivers"`
}

type addressResponse struct {
	Address string `json:"address"`
}

type namesResponse struct {
	Known bool     `json:"known"`
	Names []string `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newCandidatesResponse(view *service.View, withRecords bool) candidatesResponse {
	resp := candidatesResponse{
		Height:     view.Height,
		BurnTarget: view.BurnTarget,
		Candidates: make([]candidate, 0, len(view.Candidates)),
	}
	for _, c := range view.Candidates.Ordered() {
		resp.Candidates = append(resp.Candidates, newCandidate(c, withRecords))
	}
	return resp
}

func newCandidate(c *model.Candidate, withRecords bool) candidate {
	out := candidate{
		Name:                                 c.Name,
		AccumulatedCompensationAmount:        c.AccumulatedCompensationAmount,
		AccumulatedDecayedCompensationAmount: c.AccumulatedDecayedCompensationAmount,
		AccumulatedBurnAmount:                c.AccumulatedBurnAmount,
		AccumulatedDecayedBurnAmount:         c.AccumulatedDecayedBurnAmount,
		CompensationShare:                    c.CompensationShare,
		BurnAmountShare:                      c.BurnAmountShare,
		EffectiveBurnOutputShare:             c.EffectiveBurnOutputShare,
	}
	if addr, ok := c.MostRecentAddress(); ok {
		out.ReceiverAddress = addr
	}
	if !withRecords {
		return out
	}
	for _, r := range c.CompensationRecords {
		out.CompensationRecords = append(out.CompensationRecords, compensationRecord{
			TxID:          r.TxID,
			Address:       r.Address,
			Amount:        r.Amount,
			DecayedAmount: r.DecayedAmount,
			Height:        r.Height,
			Time:          r.Time,
			CycleIndex:    r.CycleIndex,
		})
	}
	for _, r := range c.BurnRecords {
		out.BurnRecords = append(out.BurnRecords, burnRecord{
			TxID:          r.TxID,
			Amount:        r.Amount,
			DecayedAmount: r.DecayedAmount,
			Height:        r.Height,
			Time:          r.Time,
			CycleIndex:    r.CycleIndex,
		})
	}
	return out
}

func newReimbursementsResponse(view *service.View) reimbursementsResponse {
	resp := reimbursementsResponse{
		Height:         view.Height,
		Reimbursements: make([]reimbursement, 0, len(view.Reimbursements)),
	}
	for _, r := range view.Reimbursements {
		resp.Reimbursements = append(resp.Reimbursements, reimbursement{
			TxID:       r.TxID,
			Amount:     r.Amount,
			Height:     r.Height,
			Time:       r.Time,
			CycleIndex: r.CycleIndex,
		})
	}
	return resp
}
