package model

import "time"

// Receiver is one output of a delayed payout transaction.
type Receiver struct {
	Amount  int64
	Address string
}

// CandidateSnapshot is a flattened candidate row persisted by the snapshot exporter.
type CandidateSnapshot struct {
	Network                              Network
	Height                               int
	Name                                 string
	ReceiverAddress                      string
	AccumulatedCompensationAmount        int64
	AccumulatedDecayedCompensationAmount int64
	AccumulatedBurnAmount                int64
	AccumulatedDecayedBurnAmount         int64
	CompensationShare                    float64
	BurnAmountShare                      float64
	EffectiveBurnOutputShare             float64
	BurnTarget                           int64
	CreatedAt                            time.Time
}
