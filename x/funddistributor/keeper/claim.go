package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// ClaimTokens pays out what sender is still owed of the named tokens, or of every
// funded token when tokens is empty.
func (k Keeper) ClaimTokens(ctx context.Context, sender sdk.AccAddress, tokens []string) (types.Transfers, error) {
	return k.claim(ctx, sender, []types.AssetKind{types.AssetKindToken}, tokens)
}

// ClaimNatives pays out what sender is still owed of the named denoms, or of every
// funded denom when denoms is empty.
func (k Keeper) ClaimNatives(ctx context.Context, sender sdk.AccAddress, denoms []string) (types.Transfers, error) {
	return k.claim(ctx, sender, []types.AssetKind{types.AssetKindNative}, denoms)
}

// ClaimAll pays out what sender is still owed of every funded asset, tokens first.
func (k Keeper) ClaimAll(ctx context.Context, sender sdk.AccAddress) (types.Transfers, error) {
	return k.claim(ctx, sender, []types.AssetKind{types.AssetKindToken, types.AssetKindNative}, nil)
}

// claim queries the sender's power once, before any write, then tops up the claim
// ledger of every selected asset. The caller owns the transaction boundary.
func (k Keeper) claim(ctx context.Context, sender sdk.AccAddress, kinds []types.AssetKind, named []string) (types.Transfers, error) {
	cfg, err := k.claimableConfig(ctx)
	if err != nil {
		return nil, err
	}

	power, err := k.votingPower(ctx, cfg, sender)
	if err != nil {
		return nil, err
	}

	transfers := types.Transfers{}
	for _, kind := range kinds {
		l := k.ledger(kind)

		explicit := len(named) > 0
		assets := dedupe(named)
		if !explicit {
			if assets, err = l.assets(ctx); err != nil {
				return nil, err
			}
		}

		for _, asset := range assets {
			owed, err := k.claimAsset(ctx, l, sender, asset, power, cfg.TotalPower, explicit)
			if err != nil {
				return nil, err
			}
			if owed.IsPositive() {
				transfers = append(transfers, types.Transfer{
					Recipient: sender.String(),
					Kind:      kind,
					Asset:     asset,
					Amount:    owed,
				})
			}
		}
	}

	k.Logger().Debug("claim processed",
		"sender", sender.String(),
		"power", power.String(),
		"transfers", len(transfers),
	)

	return transfers, nil
}

// claimAsset rewrites the cumulative claim even when nothing is owed.
func (k Keeper) claimAsset(
	ctx context.Context,
	l ledger,
	sender sdk.AccAddress,
	asset string,
	power, totalPower sdkmath.Int,
	explicit bool,
) (sdkmath.Int, error) {
	balance, found, err := l.balance(ctx, asset)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !found {
		if explicit {
			return sdkmath.Int{}, errors.Wrapf(types.ErrUnknownAsset, "%s %s", l.kind, asset)
		}
		return sdkmath.ZeroInt(), nil
	}

	previous, err := l.claim(ctx, sender, asset)
	if err != nil {
		return sdkmath.Int{}, err
	}

	owed, err := types.Entitlement(balance, power, totalPower, previous)
	if err != nil {
		return sdkmath.Int{}, errors.Wrapf(err, "%s %s", l.kind, asset)
	}

	cumulative, err := types.CheckedAdd(previous, owed)
	if err != nil {
		return sdkmath.Int{}, errors.Wrapf(err, "%s %s claim", l.kind, asset)
	}
	if err := l.claims.Set(ctx, collections.Join(sender, asset), cumulative); err != nil {
		return sdkmath.Int{}, err
	}

	return owed, nil
}

// Entitlements computes, without writing, what ClaimAll would pay sender right now.
func (k Keeper) Entitlements(ctx context.Context, sender sdk.AccAddress) (sdkmath.Int, types.Transfers, error) {
	cfg, err := k.claimableConfig(ctx)
	if err != nil {
		return sdkmath.Int{}, nil, err
	}

	power, err := k.votingPower(ctx, cfg, sender)
	if err != nil {
		return sdkmath.Int{}, nil, err
	}

	owed := types.Transfers{}
	for _, l := range k.ledgers() {
		err := l.balances.Walk(ctx, nil, func(asset string, balance sdkmath.Int) (bool, error) {
			previous, err := l.claim(ctx, sender, asset)
			if err != nil {
				return true, err
			}
			amount, err := types.Entitlement(balance, power, cfg.TotalPower, previous)
			if err != nil {
				return true, errors.Wrapf(err, "%s %s", l.kind, asset)
			}
			if amount.IsPositive() {
				owed = append(owed, types.Transfer{Recipient: sender.String(), Kind: l.kind, Asset: asset, Amount: amount})
			}
			return false, nil
		})
		if err != nil {
			return sdkmath.Int{}, nil, err
		}
	}

	return power, owed, nil
}

// claimableConfig loads the config and refuses to pay against a total power measured
// at another height than the current snapshot.
func (k Keeper) claimableConfig(ctx context.Context) (types.DistributionConfig, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.DistributionConfig{}, err
	}
	if cfg.TotalPowerStale() {
		return types.DistributionConfig{}, errors.Wrapf(
			types.ErrStaleTotalPower,
			"total power measured at %d, distribution height is %d",
			cfg.TotalPowerHeight, cfg.DistributionHeight,
		)
	}
	return cfg, nil
}

// votingPower asks the oracle for sender's power at the distribution height, never the current one.
// A power above the recorded total would entitle sender to more than the balance and is rejected.
func (k Keeper) votingPower(ctx context.Context, cfg types.DistributionConfig, sender sdk.AccAddress) (sdkmath.Int, error) {
	power, err := k.oracle.VotingPowerAtHeight(ctx, cfg.VotingContract, sender, cfg.DistributionHeight)
	if err != nil {
		return sdkmath.Int{}, types.WrapOracleError(err)
	}
	if power.IsNil() || power.IsNegative() {
		return sdkmath.Int{}, types.WrapOracleError(types.ValidateAmount(power))
	}
	if power.GT(cfg.TotalPower) {
		return sdkmath.Int{}, errors.Wrapf(
			types.ErrArithmeticOverflow,
			"voting power %s of %s exceeds total power %s at height %d",
			power, sender, cfg.TotalPower, cfg.DistributionHeight,
		)
	}
	return power, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
