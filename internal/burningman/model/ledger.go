package model

import "time"

// IssuanceType distinguishes compensation from reimbursement issuance.
type IssuanceType string

var (
	// IssuanceCompensation marks issuance paid out for accepted compensation requests.
	IssuanceCompensation IssuanceType = "compensation"
	// IssuanceReimbursement marks issuance paid out for accepted reimbursement requests.
	IssuanceReimbursement IssuanceType = "reimbursement"
)

// Issuance is newly created ledger value credited by an accepted request.
type Issuance struct {
	TxID        string
	Type        IssuanceType
	ChainHeight int
	Amount      int64
}

// Tx is a ledger transaction with its outputs ordered by index.
type Tx struct {
	ID          string
	BlockHeight int
	Time        time.Time
	BurntFee    int64
	Outputs     []TxOutput
}

// LastOutput returns the output with the highest index.
func (t Tx) LastOutput() (TxOutput, bool) {
	if len(t.Outputs) == 0 {
		return TxOutput{}, false
	}
	return t.Outputs[len(t.Outputs)-1], true
}

// TxOutput is a single transaction output. OpReturnData is set for OP_RETURN outputs.
type TxOutput struct {
	TxID         string
	Index        int
	BlockHeight  int
	Address      string
	Value        int64
	OpReturnData []byte
}

// ProposalType classifies a governance proposal payload.
type ProposalType string

var (
	ProposalCompensation  ProposalType = "compensation"
	ProposalReimbursement ProposalType = "reimbursement"
)

// Proposal is a governance proposal resolved from the proposal store.
type Proposal struct {
	TxID string
	Type ProposalType
	Name string
	// ReceiverAddress optionally overrides the address derived from the request tx outputs.
	ReceiverAddress string
}

// Param identifies a governance parameter.
type Param string

var (
	// ParamLockTimeTradePayout was never used for its original purpose and carries the
	// estimated BTC trade fee revenue per cycle.
	ParamLockTimeTradePayout Param = "LOCK_TIME_TRADE_PAYOUT"
	// ParamRecipientBTCAddress is the legacy burning man address.
	ParamRecipientBTCAddress Param = "RECIPIENT_BTC_ADDRESS"
)
