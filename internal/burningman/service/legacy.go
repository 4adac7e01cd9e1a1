package service

import "encoding/hex"

// compensationEntry is a compensation issuance before it becomes a record.
type compensationEntry struct {
	txID       string
	name       string
	cycleIndex int
	amount     int64
}

// compensationCorrection rewrites or drops historical compensation entries that were
// booked wrongly. Corrections run in table order, each sees the amount left by the
// previous one.
type compensationCorrection struct {
	name    string
	matches func(e compensationEntry) bool
	// apply returns the corrected amount, or false to drop the entry.
	apply func(e compensationEntry) (int64, bool)
}

var compensationCorrections = []compensationCorrection{
	{
		// Issuance included a conference sponsorship of 44776 BSQ, only 1194 BSQ were compensation.
		name: "conference sponsorship",
		matches: func(e compensationEntry) bool {
			return e.txID == "01455fc4c88fca0665a5f56a90ff03fb9e3e88c3430ffc5217246e32d180aa64"
		},
		apply: func(compensationEntry) (int64, bool) { return 119400, true },
	},
	{
		// Up to cycle 15 the refund agent filed reimbursements as compensation requests,
		// mixed with real ones. Everything above 3500 BSQ was a reimbursement.
		name: "refund agent reimbursement",
		matches: func(e compensationEntry) bool {
			return e.name == "RefundAgent" && e.cycleIndex <= 15 && e.amount > 350000
		},
		apply: func(compensationEntry) (int64, bool) { return 0, false },
	},
}

// correctCompensation applies all matching corrections.
func correctCompensation(e compensationEntry) (int64, bool) {
	for _, c := range compensationCorrections {
		if !c.matches(e) {
			continue
		}
		amount, keep := c.apply(e)
		if !keep {
			return 0, false
		}
		e.amount = amount
	}
	return e.amount, true
}

// legacyBurnTags mark burns of the legacy burning man, which are accounted for in the
// burn target instead of being attributed to a contributor.
var legacyBurnTags = map[string]string{
	"1701e47e5d8030f444c182b5e243871ebbaeadb5e82f": "delayed payout with refund agent",
	"1701293c488822f98e70e047012f46f5f1647f37deb7": "delayed payout with reimbursed trader",
	"1701721206fe6b40777763de1c741f4fd2706d94775d": "received btc fees",
}

func isLegacyBurnTag(opReturnData []byte) bool {
	_, ok := legacyBurnTags[hex.EncodeToString(opReturnData)]
	return ok
}
