package transport

import (
	"context"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/internal/burningman/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BurningMan is the query surface served over HTTP.
	BurningMan interface {
		CurrentHeight(ctx context.Context) (int, error)
		CurrentView(ctx context.Context) (*service.View, error)
		View(ctx context.Context, height int) (*service.View, error)
		SelectionHeight(ctx context.Context) (int, error)
		SnapshotHeightFor(chainHeight int) int
		DelayedPayoutReceivers(ctx context.Context, selectionHeight int, inputAmount, tradeTxFee int64) ([]model.Receiver, error)
		FeeReceiverAddress(ctx context.Context) (string, error)
		LegacyBurningManAddress(ctx context.Context, height int) (string, error)
		MyGenesisOutputNames(ctx context.Context) ([]string, bool, error)
		MyCompensationRequestNames(ctx context.Context) ([]string, error)
	}
	OutputBuilder interface {
		TxOuts(receivers []model.Receiver) ([]*wire.TxOut, error)
	}
)
