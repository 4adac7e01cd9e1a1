package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	genesisOutputPrefix = "genesis output #"

	// 2 years of blocks (2*365*144).
	maxCompensationRequestAge = 105120
	// 1 year of blocks (365*144).
	maxBurnAmountAge = 52560

	numReimbursementCycles = 12

	// Average BTC trade fee revenue per cycle in BSQ, used while the parameter holds its default.
	defaultExpectedBTCFees int64 = 6_200_000
	// Default value of ParamLockTimeTradePayout.
	defaultTradePayoutLockTime int64 = 4320

	burnTargetBoostAmount int64 = 10_000_000

	snapshotGrid = 10

	// Largest expected deposit tx size, used to derive the fee rate from the trade tx fee.
	referenceTxSize  int64 = 278
	payoutTxBaseSize int64 = 51
	payoutOutputSize int64 = 32
	minTxFeePerVbyte int64 = 10
	minOutputAmount  int64 = 500
	// Shortfalls above this go to the legacy burning man, smaller ones become miner fee.
	maxMinerFeeRemainder int64 = 100_000

	// Smallest share the fee receiver selector distinguishes is 0.01%.
	selectorWeightScale = 10_000

	decimalPrecision int32 = 16

	txResolverBatchSize = 1000

	blockPollInterval   = 10 * time.Second
	blockPollMaxBackoff = 5 * time.Minute

	exporterWorkerCount      = 4
	exporterBatchSize        = 1000
	exporterFlushInterval    = 5 * time.Second
	exporterFlushesPerSecond = 10
)

var (
	genesisOutputFactor = decimal.New(1, -1)
	issuanceBoostFactor = decimal.NewFromInt(2)
)
