package service

import (
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/shopspring/decimal"
)

// calculateShares sets the compensation, burn and effective burn output share of every
// candidate. Each share only depends on the candidate's own totals and the three
// scalars, all shares lie in [0,1].
func calculateShares(candidates model.Candidates, totalDecayedCompensation, totalDecayedBurn, burnTarget int64) {
	for _, candidate := range candidates {
		candidate.CompensationShare = ratio(candidate.AccumulatedDecayedCompensationAmount, totalDecayedCompensation)
		candidate.BurnAmountShare = decimal.Zero
		if totalDecayedBurn > 0 {
			candidate.BurnAmountShare = ratio(candidate.AccumulatedDecayedBurnAmount, burnTarget+burnTargetBoostAmount)
		}

		maxBoosted := clampShare(candidate.CompensationShare.Mul(issuanceBoostFactor))
		candidate.EffectiveBurnOutputShare = decimal.Min(candidate.BurnAmountShare, maxBoosted)
	}
}

// ratio divides with fixed precision, returning zero for a non-positive denominator.
func ratio(numerator, denominator int64) decimal.Decimal {
	if denominator <= 0 || numerator <= 0 {
		return decimal.Zero
	}
	return clampShare(decimal.NewFromInt(numerator).DivRound(decimal.NewFromInt(denominator), decimalPrecision))
}

func clampShare(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if one := decimal.NewFromInt(1); d.GreaterThan(one) {
		return one
	}
	return d
}
