package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetKind tells which ledger an asset belongs to.
type AssetKind string

const (
	AssetKindToken  AssetKind = "token"
	AssetKindNative AssetKind = "native"
)

// Transfer is an instruction for the host to move Amount of Asset to Recipient.
// The module never moves funds itself.
type Transfer struct {
	Recipient string      `json:"recipient" yaml:"recipient"`
	Kind      AssetKind   `json:"kind" yaml:"kind"`
	Asset     string      `json:"asset" yaml:"asset"`
	Amount    sdkmath.Int `json:"amount" yaml:"amount"`
}

func (t Transfer) String() string {
	return fmt.Sprintf("%s %s%s -> %s", t.Kind, t.Amount, t.Asset, t.Recipient)
}

// Transfers is a batch of transfer instructions produced by one call.
type Transfers []Transfer

// NativeCoins folds the native instructions into a single coin set, as a bank send would carry them.
func (ts Transfers) NativeCoins() sdk.Coins {
	coins := sdk.NewCoins()
	for _, t := range ts {
		if t.Kind != AssetKindNative {
			continue
		}
		coins = coins.Add(sdk.NewCoin(t.Asset, t.Amount))
	}
	return coins
}

// Tokens returns the token instructions only.
func (ts Transfers) Tokens() Transfers {
	var out Transfers
	for _, t := range ts {
		if t.Kind == AssetKindToken {
			out = append(out, t)
		}
	}
	return out
}
