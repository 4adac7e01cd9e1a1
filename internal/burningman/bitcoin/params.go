// Package bitcoin turns burning man payouts into bitcoin transaction outputs.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// ChainParams returns the chain parameters of network.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// ValidateTxID reports whether id is a hex encoded transaction hash.
func ValidateTxID(id string) error {
	if len(id) != chainhash.MaxHashStringSize {
		return fmt.Errorf("txid %q: expected %d hex characters", id, chainhash.MaxHashStringSize)
	}
	if _, err := chainhash.NewHashFromStr(id); err != nil {
		return fmt.Errorf("txid %q: %w", id, err)
	}
	return nil
}
