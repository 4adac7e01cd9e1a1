package service

import (
	"math/rand/v2"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/shopspring/decimal"
)

// randInt64N returns a uniform value in [0, n).
type randInt64N func(n int64) int64

// pickOne selects a single fee receiver weighted by effective burn output share. The
// choice is random and differs between calls and peers.
func pickOne(candidates model.Candidates, fallbackAddress string, rnd randInt64N) string {
	if rnd == nil {
		rnd = rand.Int64N
	}

	type weighted struct {
		candidate *model.Candidate
		weight    int64
	}
	scale := decimal.NewFromInt(selectorWeightScale)

	var (
		entries []weighted
		sum     int64
	)
	for _, candidate := range candidates.Ordered() {
		w := candidate.EffectiveBurnOutputShare.Mul(scale).Floor().IntPart()
		if w <= 0 {
			continue
		}
		entries = append(entries, weighted{candidate: candidate, weight: w})
		sum += w
	}
	if len(entries) == 0 {
		return fallbackAddress
	}

	draw := rnd(sum) + 1
	var cumulative int64
	for _, e := range entries {
		cumulative += e.weight
		if cumulative >= draw {
			if address, ok := e.candidate.MostRecentAddress(); ok {
				return address
			}
			return fallbackAddress
		}
	}
	return fallbackAddress
}
