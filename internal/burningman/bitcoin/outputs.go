package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

var ErrNoReceivers = errors.New("no receivers")

// OutputBuilder converts payout receivers into transaction outputs of one network.
type OutputBuilder struct {
	params *chaincfg.Params
}

// NewOutputBuilder returns an OutputBuilder for network.
func NewOutputBuilder(network model.Network) (*OutputBuilder, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &OutputBuilder{params: params}, nil
}

// DecodeAddress decodes address and checks that it belongs to the builder's network.
func (b *OutputBuilder) DecodeAddress(address string) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, b.params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	if !addr.IsForNet(b.params) {
		return nil, fmt.Errorf("address %q is not valid on %s", address, b.params.Name)
	}
	return addr, nil
}

// TxOuts returns one pay-to-address output per receiver in receiver order.
func (b *OutputBuilder) TxOuts(receivers []model.Receiver) ([]*wire.TxOut, error) {
	if len(receivers) == 0 {
		return nil, ErrNoReceivers
	}

	outs := make([]*wire.TxOut, 0, len(receivers))
	for i, r := range receivers {
		if r.Amount <= 0 {
			return nil, fmt.Errorf("receiver %d: non-positive amount %d", i, r.Amount)
		}
		addr, err := b.DecodeAddress(r.Address)
		if err != nil {
			return nil, fmt.Errorf("receiver %d: %w", i, err)
		}
		script, err := txscript.PayToAddrScript(addr)
		if err != nil {
			return nil, fmt.Errorf("receiver %d: build script: %w", i, err)
		}
		outs = append(outs, wire.NewTxOut(r.Amount, script))
	}
	return outs, nil
}

// Total sums receiver amounts.
func Total(receivers []model.Receiver) btcutil.Amount {
	var total btcutil.Amount
	for _, r := range receivers {
		total += btcutil.Amount(r.Amount)
	}
	return total
}
