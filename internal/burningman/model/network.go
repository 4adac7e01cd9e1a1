// Package model defines the ledger and burning man domain models.
package model

// Network names the bitcoin network the ledger is anchored to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)
