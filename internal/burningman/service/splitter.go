package service

import (
	"sort"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/shopspring/decimal"
)

// payoutPlan holds the amounts derived from the trade input before candidates are paid.
type payoutPlan struct {
	feePerVbyte     int64
	spendableAmount int64
	minOutputAmount int64
}

func newPayoutPlan(numCandidates int, inputAmount, tradeTxFee int64) payoutPlan {
	// Both traders derive the same fee rate from the trade tx fee and the largest
	// expected deposit tx size.
	feePerVbyte := decimal.NewFromInt(tradeTxFee).
		DivRound(decimal.NewFromInt(referenceTxSize), decimalPrecision).
		Round(0).
		IntPart()
	if feePerVbyte < minTxFeePerVbyte {
		feePerVbyte = minTxFeePerVbyte
	}
	txSize := payoutTxBaseSize + int64(numCandidates)*payoutOutputSize
	minOutput := feePerVbyte * payoutOutputSize * 2
	if minOutput < minOutputAmount {
		minOutput = minOutputAmount
	}
	return payoutPlan{
		feePerVbyte:     feePerVbyte,
		spendableAmount: inputAmount - feePerVbyte*txSize,
		minOutputAmount: minOutput,
	}
}

// splitPayout distributes inputAmount across candidates by effective burn output share.
// It is a pure function of its arguments: peers holding the same candidates produce the
// same receivers in the same order.
//
// Outputs below the dust threshold are dropped and left to the miner. A shortfall above
// maxMinerFeeRemainder is routed to fallbackAddress as the last output.
func splitPayout(candidates model.Candidates, fallbackAddress string, inputAmount, tradeTxFee int64) []model.Receiver {
	if len(candidates) == 0 {
		return []model.Receiver{{Amount: inputAmount, Address: fallbackAddress}}
	}

	plan := newPayoutPlan(len(candidates), inputAmount, tradeTxFee)
	spendable := decimal.NewFromInt(plan.spendableAmount)

	receivers := make([]model.Receiver, 0, len(candidates)+1)
	for _, candidate := range candidates.Ordered() {
		address, ok := candidate.MostRecentAddress()
		if !ok {
			continue
		}
		amount := candidate.EffectiveBurnOutputShare.Mul(spendable).Round(0).IntPart()
		if amount < plan.minOutputAmount {
			continue
		}
		receivers = append(receivers, model.Receiver{Amount: amount, Address: address})
	}
	sort.SliceStable(receivers, func(i, j int) bool { return receivers[i].Amount < receivers[j].Amount })

	var total int64
	for _, r := range receivers {
		total += r.Amount
	}

	// Shares are rounded one by one and capped shares may sum past 1, so the outputs can
	// exceed the spendable amount. The largest outputs absorb the excess: whole outputs
	// are dropped while they do not cover it, the next one is reduced and dropped when it
	// falls below dust. Remaining outputs keep their ascending order.
	for total > plan.spendableAmount && len(receivers) > 0 {
		last := len(receivers) - 1
		excess := total - plan.spendableAmount
		if receivers[last].Amount <= excess {
			total -= receivers[last].Amount
			receivers = receivers[:last]
			continue
		}
		receivers[last].Amount -= excess
		total -= excess
		if receivers[last].Amount < plan.minOutputAmount {
			total -= receivers[last].Amount
			receivers = receivers[:last]
		}
	}
	sort.SliceStable(receivers, func(i, j int) bool { return receivers[i].Amount < receivers[j].Amount })

	if shortfall := plan.spendableAmount - total; shortfall > maxMinerFeeRemainder {
		receivers = append(receivers, model.Receiver{Amount: shortfall, Address: fallbackAddress})
	}
	return receivers
}
