package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CompensationRecord is one resolved compensation or genesis issuance of a contributor.
type CompensationRecord struct {
	Address       string
	Amount        int64
	DecayedAmount int64
	Height        int
	TxID          string
	Time          time.Time
	CycleIndex    int
}

// BurnRecord is one proof-of-burn output matched to a contributor.
type BurnRecord struct {
	Amount        int64
	DecayedAmount int64
	Height        int
	TxID          string
	Time          time.Time
	CycleIndex    int
}

// ReimbursementRecord is one resolved reimbursement issuance.
type ReimbursementRecord struct {
	TxID       string
	Amount     int64
	Height     int
	Time       time.Time
	CycleIndex int
}

// Candidate aggregates the compensation and burn history of one contributor.
// Shares are set once by the share calculator after all records are attached.
type Candidate struct {
	Name                string
	CompensationRecords []CompensationRecord
	BurnRecords         []BurnRecord

	AccumulatedCompensationAmount        int64
	AccumulatedDecayedCompensationAmount int64
	AccumulatedBurnAmount                int64
	AccumulatedDecayedBurnAmount         int64

	CompensationShare        decimal.Decimal
	BurnAmountShare          decimal.Decimal
	EffectiveBurnOutputShare decimal.Decimal
}

// NewCandidate returns an empty candidate with zero shares.
func NewCandidate(name string) *Candidate {
	return &Candidate{
		Name:                     name,
		CompensationShare:        decimal.Zero,
		BurnAmountShare:          decimal.Zero,
		EffectiveBurnOutputShare: decimal.Zero,
	}
}

// AddCompensation appends a compensation record and updates the accumulated amounts.
func (c *Candidate) AddCompensation(r CompensationRecord) {
	c.CompensationRecords = append(c.CompensationRecords, r)
	c.AccumulatedCompensationAmount += r.Amount
	c.AccumulatedDecayedCompensationAmount += r.DecayedAmount
}

// AddBurn appends a burn record and updates the accumulated amounts.
func (c *Candidate) AddBurn(r BurnRecord) {
	c.BurnRecords = append(c.BurnRecords, r)
	c.AccumulatedBurnAmount += r.Amount
	c.AccumulatedDecayedBurnAmount += r.DecayedAmount
}

// MostRecentAddress returns the receiver address of the highest compensation record.
// Records at the same height keep insertion order, the first one wins.
func (c *Candidate) MostRecentAddress() (string, bool) {
	if len(c.CompensationRecords) == 0 {
		return "", false
	}
	records := make([]CompensationRecord, len(c.CompensationRecords))
	copy(records, c.CompensationRecords)
	sort.SliceStable(records, func(i, j int) bool { return records[i].Height > records[j].Height })
	if records[0].Address == "" {
		return "", false
	}
	return records[0].Address, true
}

// Candidates maps contributor identity to its candidate.
type Candidates map[string]*Candidate

// Names returns the identities in byte order. All order-sensitive consumers iterate in
// this order so that independent peers agree.
func (cs Candidates) Names() []string {
	names := make([]string, 0, len(cs))
	for name := range cs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ordered returns the candidates in identity byte order.
func (cs Candidates) Ordered() []*Candidate {
	names := cs.Names()
	out := make([]*Candidate, 0, len(names))
	for _, name := range names {
		out = append(out, cs[name])
	}
	return out
}

// GetOrCreate returns the candidate for name, creating it on first use.
func (cs Candidates) GetOrCreate(name string) *Candidate {
	c, ok := cs[name]
	if !ok {
		c = NewCandidate(name)
		cs[name] = c
	}
	return c
}
