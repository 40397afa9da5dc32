package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if data.Config == nil {
		return nil
	}

	if err := k.SetConfig(ctx, *data.Config); err != nil {
		return err
	}

	for _, l := range k.ledgers() {
		balances, claims := data.TokenBalances, data.TokenClaims
		if l.kind == types.AssetKindNative {
			balances, claims = data.NativeBalances, data.NativeClaims
		}

		for _, b := range balances {
			if err := l.balances.Set(ctx, b.Asset, b.Amount); err != nil {
				return err
			}
		}
		for _, c := range claims {
			addr, err := sdk.AccAddressFromBech32(c.Claimant)
			if err != nil {
				return err
			}
			if err := l.claims.Set(ctx, collections.Join(addr, c.Asset), c.Amount); err != nil {
				return err
			}
		}
	}

	return nil
}

// ExportGenesis exports the module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := types.DefaultGenesis()

	cfg, err := k.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, types.ErrNotInitialized) {
			return gs
		}
		panic(err)
	}
	gs.Config = &cfg

	for _, l := range k.ledgers() {
		var balances []types.AssetAmount
		err := l.balances.Walk(ctx, nil, func(asset string, amount sdkmath.Int) (bool, error) {
			balances = append(balances, types.AssetAmount{Asset: asset, Amount: amount})
			return false, nil
		})
		if err != nil {
			panic(err)
		}

		var claims []types.ClaimEntry
		err = l.claims.Walk(ctx, nil, func(key ClaimKey, amount sdkmath.Int) (bool, error) {
			claims = append(claims, types.ClaimEntry{Claimant: key.K1().String(), Asset: key.K2(), Amount: amount})
			return false, nil
		})
		if err != nil {
			panic(err)
		}

		if l.kind == types.AssetKindToken {
			gs.TokenBalances, gs.TokenClaims = append(gs.TokenBalances, balances...), append(gs.TokenClaims, claims...)
		} else {
			gs.NativeBalances, gs.NativeClaims = append(gs.NativeBalances, balances...), append(gs.NativeClaims, claims...)
		}
	}

	return gs
}
