package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// FundToken adds amount to the balance of token, creating the balance on first deposit.
func (k Keeper) FundToken(ctx context.Context, token string, amount sdkmath.Int) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}
	if err := types.ValidateAmount(amount); err != nil {
		return err
	}
	if amount.IsZero() {
		return types.ErrZeroAmount
	}

	if err := k.addToBalance(ctx, k.ledger(types.AssetKindToken), token, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewFundTokenEvent(token, amount))
	return nil
}

// FundNative adds every attached coin to its denom balance. Zero entries are accepted
// and leave the balance unchanged, since one call may carry several denoms.
func (k Keeper) FundNative(ctx context.Context, funds sdk.Coins) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}

	natives := k.ledger(types.AssetKindNative)
	for _, coin := range funds {
		if err := types.ValidateAmount(coin.Amount); err != nil {
			return errors.Wrapf(err, "denom %s", coin.Denom)
		}
		if err := k.addToBalance(ctx, natives, coin.Denom, coin.Amount); err != nil {
			return err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewFundNativeEvent(funds))
	return nil
}

func (k Keeper) addToBalance(ctx context.Context, l ledger, asset string, amount sdkmath.Int) error {
	current, _, err := l.balance(ctx, asset)
	if err != nil {
		return err
	}

	updated, err := types.CheckedAdd(current, amount)
	if err != nil {
		return errors.Wrapf(err, "%s balance %s", l.kind, asset)
	}

	return l.balances.Set(ctx, asset, updated)
}

func (k Keeper) requireInitialized(ctx context.Context) error {
	ok, err := k.IsInitialized(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrNotInitialized
	}
	return nil
}
