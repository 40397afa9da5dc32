package app

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	Name = "fundd"

	Bech32PrefixAccAddr  = "push"
	Bech32PrefixAccPub   = "pushpub"
	Bech32PrefixValAddr  = "pushvaloper"
	Bech32PrefixValPub   = "pushvaloperpub"
	Bech32PrefixConsAddr = "pushvalcons"
	Bech32PrefixConsPub  = "pushvalconspub"

	// CoinType is the Ethereum coin type.
	CoinType = 60
)

// SetAddressPrefixes applies the push prefixes to cfg without sealing it.
func SetAddressPrefixes(cfg *sdk.Config) {
	cfg.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
	cfg.SetBech32PrefixForValidator(Bech32PrefixValAddr, Bech32PrefixValPub)
	cfg.SetBech32PrefixForConsensusNode(Bech32PrefixConsAddr, Bech32PrefixConsPub)
	cfg.SetCoinType(CoinType)
}
