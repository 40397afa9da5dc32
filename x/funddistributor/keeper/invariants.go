package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// RegisterInvariants registers the funddistributor invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "claims-within-balances", ClaimsWithinBalancesInvariant(k))
}

// ClaimsWithinBalancesInvariant checks that, for every asset, the claims of the
// current epoch sum to no more than the funded balance.
func ClaimsWithinBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)

		for _, l := range k.ledgers() {
			totals, _, err := l.claimTotals(ctx)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "claims-within-balances", err.Error()), true
			}

			for _, asset := range sortedAssets(totals) {
				balance, found, err := l.balance(ctx, asset)
				if err != nil {
					return sdk.FormatInvariant(types.ModuleName, "claims-within-balances", err.Error()), true
				}
				if !found || totals[asset].GT(balance) {
					broken = true
					msg += fmt.Sprintf("\t%s %s: claimed %s, balance %s\n", l.kind, asset, totals[asset], balance)
				}
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "claims-within-balances", msg), broken
	}
}
