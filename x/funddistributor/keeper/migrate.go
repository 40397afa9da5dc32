package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// Instantiate records the oracle, snapshots at the current block height and stores
// the total power measured there.
func (k Keeper) Instantiate(ctx context.Context, contract string) (types.DistributionConfig, error) {
	initialized, err := k.IsInitialized(ctx)
	if err != nil {
		return types.DistributionConfig{}, err
	}
	if initialized {
		return types.DistributionConfig{}, types.ErrAlreadyInitialized
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := uint64(sdkCtx.BlockHeight())

	power, err := k.totalPowerAt(ctx, contract, height)
	if err != nil {
		return types.DistributionConfig{}, err
	}

	cfg := types.DistributionConfig{
		DistributionHeight: height,
		VotingContract:     contract,
		TotalPower:         power,
		TotalPowerHeight:   height,
	}
	if err := k.SetConfig(ctx, cfg); err != nil {
		return types.DistributionConfig{}, err
	}

	k.Logger().Info("distribution instantiated",
		"voting_contract", contract,
		"distribution_height", height,
		"total_power", power.String(),
	)

	return cfg, nil
}

// Migrate re-bases the distribution onto newHeight: every claim paid in the closing
// epoch is subtracted from its balance and the claim tables are cleared, so
// balance_after + paid == balance_before for every asset.
//
// Total power is re-queried at newHeight only when refreshTotalPower is set; otherwise
// it stays stale and claims are refused until RefreshTotalPower runs.
func (k Keeper) Migrate(ctx context.Context, newHeight uint64, refreshTotalPower bool) (types.DistributionConfig, []types.Reconciliation, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.DistributionConfig{}, nil, err
	}

	cfg.DistributionHeight = newHeight
	if err := k.DistributionHeight.Set(ctx, newHeight); err != nil {
		return types.DistributionConfig{}, nil, err
	}

	var reconciled []types.Reconciliation
	for _, l := range k.ledgers() {
		rs, err := k.reconcile(ctx, l)
		if err != nil {
			return types.DistributionConfig{}, nil, err
		}
		reconciled = append(reconciled, rs...)
	}

	if refreshTotalPower {
		if cfg, err = k.RefreshTotalPower(ctx); err != nil {
			return types.DistributionConfig{}, nil, err
		}
	}

	k.Logger().Info("distribution migrated",
		"distribution_height", newHeight,
		"reconciled_assets", len(reconciled),
		"total_power_stale", cfg.TotalPowerStale(),
	)

	return cfg, reconciled, nil
}

// reconcile folds the paid claims of one ledger back into its balances and clears them.
func (k Keeper) reconcile(ctx context.Context, l ledger) ([]types.Reconciliation, error) {
	paid, keys, err := l.claimTotals(ctx)
	if err != nil {
		return nil, err
	}

	reconciled := make([]types.Reconciliation, 0, len(paid))
	for _, asset := range sortedAssets(paid) {
		before, _, err := l.balance(ctx, asset)
		if err != nil {
			return nil, err
		}

		after, err := types.CheckedSub(before, paid[asset])
		if err != nil {
			return nil, errors.Wrapf(err, "claims on %s %s exceed its balance", l.kind, asset)
		}
		if err := l.balances.Set(ctx, asset, after); err != nil {
			return nil, err
		}

		reconciled = append(reconciled, types.Reconciliation{
			Kind:          l.kind,
			Asset:         asset,
			Paid:          paid[asset],
			BalanceBefore: before,
			BalanceAfter:  after,
		})
	}

	if err := l.clearClaims(ctx, keys); err != nil {
		return nil, err
	}

	return reconciled, nil
}

// RefreshTotalPower re-queries total power at the current distribution height.
func (k Keeper) RefreshTotalPower(ctx context.Context) (types.DistributionConfig, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.DistributionConfig{}, err
	}

	power, err := k.totalPowerAt(ctx, cfg.VotingContract, cfg.DistributionHeight)
	if err != nil {
		return types.DistributionConfig{}, err
	}

	if err := k.TotalPower.Set(ctx, power); err != nil {
		return types.DistributionConfig{}, err
	}
	if err := k.TotalPowerHeight.Set(ctx, cfg.DistributionHeight); err != nil {
		return types.DistributionConfig{}, err
	}

	cfg.TotalPower = power
	cfg.TotalPowerHeight = cfg.DistributionHeight

	k.Logger().Info("total power refreshed",
		"distribution_height", cfg.DistributionHeight,
		"total_power", power.String(),
	)

	return cfg, nil
}

func (k Keeper) totalPowerAt(ctx context.Context, contract string, height uint64) (sdkmath.Int, error) {
	power, err := k.oracle.TotalPowerAtHeight(ctx, contract, height)
	if err != nil {
		return sdkmath.Int{}, types.WrapOracleError(err)
	}
	if err := types.ValidateAmount(power); err != nil {
		return sdkmath.Int{}, types.WrapOracleError(err)
	}
	if power.IsZero() {
		return sdkmath.Int{}, errors.Wrapf(types.ErrZeroVotingPower, "at height %d", height)
	}
	return power, nil
}
