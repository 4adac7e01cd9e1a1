package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidDecayInput reports a decay call with an impossible height or amount ordering.
var ErrInvalidDecayInput = errors.New("invalid decay input")

// Decay ages amount linearly: it keeps its full value at currentHeight, falls to
// floorFactor of its value at floorHeight and stays there for older events.
//
// Arithmetic is decimal with 16 fractional digits, the result is rounded half away
// from zero.
func Decay(amount int64, eventHeight, currentHeight, floorHeight int, floorFactor decimal.Decimal) (int64, error) {
	switch {
	case eventHeight > currentHeight:
		return 0, fmt.Errorf("%w: event height %d above current height %d", ErrInvalidDecayInput, eventHeight, currentHeight)
	case currentHeight < 0:
		return 0, fmt.Errorf("%w: negative current height %d", ErrInvalidDecayInput, currentHeight)
	case amount < 0:
		return 0, fmt.Errorf("%w: negative amount %d", ErrInvalidDecayInput, amount)
	case eventHeight < 0:
		return 0, fmt.Errorf("%w: negative event height %d", ErrInvalidDecayInput, eventHeight)
	case floorFactor.IsNegative() || floorFactor.GreaterThan(decimal.NewFromInt(1)):
		return 0, fmt.Errorf("%w: floor factor %s outside [0,1]", ErrInvalidDecayInput, floorFactor)
	}

	factor := decayFactor(eventHeight, currentHeight, floorHeight)
	one := decimal.NewFromInt(1)
	withFloor := floorFactor.Add(factor.Mul(one.Sub(floorFactor)))
	weighted := decimal.NewFromInt(amount).Mul(withFloor).Round(0).IntPart()
	if weighted < 0 {
		return 0, nil
	}
	return weighted, nil
}

// decayFactor is the linear position of eventHeight between floorHeight and
// currentHeight, clamped to [0,1].
func decayFactor(eventHeight, currentHeight, floorHeight int) decimal.Decimal {
	if currentHeight == floorHeight {
		if eventHeight == currentHeight {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	}
	factor := decimal.NewFromInt(int64(eventHeight-floorHeight)).
		DivRound(decimal.NewFromInt(int64(currentHeight-floorHeight)), decimalPrecision)
	if factor.IsNegative() {
		return decimal.Zero
	}
	if one := decimal.NewFromInt(1); factor.GreaterThan(one) {
		return one
	}
	return factor
}

func decayedCompensationAmount(amount int64, issuanceHeight, chainHeight int) (int64, error) {
	return Decay(amount, issuanceHeight, chainHeight, chainHeight-maxCompensationRequestAge, decimal.Zero)
}

func decayedBurnAmount(amount int64, burnHeight, chainHeight int) (int64, error) {
	return Decay(amount, burnHeight, chainHeight, chainHeight-maxBurnAmountAge, decimal.Zero)
}

// Genesis outputs are always at the floor and keep a fixed share of their amount.
func decayedGenesisAmount(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(genesisOutputFactor).Round(0).IntPart()
}
