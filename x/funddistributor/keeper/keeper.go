package keeper

import (
	"context"
	"errors"
	"sort"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// ClaimKey is the (claimant, asset) key of both claim tables.
type ClaimKey = collections.Pair[sdk.AccAddress, string]

type Keeper struct {
	logger log.Logger

	Schema collections.Schema

	// distribution config
	DistributionHeight collections.Item[uint64]
	VotingContract     collections.Item[string]
	TotalPower         collections.Item[sdkmath.Int]
	TotalPowerHeight   collections.Item[uint64]

	// funded totals, the fixed numerator base of every entitlement until the next migration
	TokenBalances  collections.Map[string, sdkmath.Int]
	NativeBalances collections.Map[string, sdkmath.Int]

	// cumulative claims of the current epoch
	TokenClaims  collections.Map[ClaimKey, sdkmath.Int]
	NativeClaims collections.Map[ClaimKey, sdkmath.Int]

	oracle types.VotingOracle

	authority string
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	oracle types.VotingOracle,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}

	claimKey := collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey)

	k := Keeper{
		logger: logger,

		DistributionHeight: collections.NewItem(sb, types.DistributionHeightKey, types.DistributionHeightName, collections.Uint64Value),
		VotingContract:     collections.NewItem(sb, types.VotingContractKey, types.VotingContractName, collections.StringValue),
		TotalPower:         collections.NewItem(sb, types.TotalPowerKey, types.TotalPowerName, sdk.IntValue),
		TotalPowerHeight:   collections.NewItem(sb, types.TotalPowerHeightKey, types.TotalPowerHeightName, collections.Uint64Value),

		TokenBalances:  collections.NewMap(sb, types.TokenBalancesKey, types.TokenBalancesName, collections.StringKey, sdk.IntValue),
		NativeBalances: collections.NewMap(sb, types.NativeBalancesKey, types.NativeBalancesName, collections.StringKey, sdk.IntValue),

		TokenClaims:  collections.NewMap(sb, types.TokenClaimsKey, types.TokenClaimsName, claimKey, sdk.IntValue),
		NativeClaims: collections.NewMap(sb, types.NativeClaimsKey, types.NativeClaimsName, claimKey, sdk.IntValue),

		oracle:    oracle,
		authority: authority,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the address allowed to instantiate, migrate and refresh the distribution.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ledger groups the balance and claim tables of one asset kind.
type ledger struct {
	kind     types.AssetKind
	balances collections.Map[string, sdkmath.Int]
	claims   collections.Map[ClaimKey, sdkmath.Int]
}

func (k Keeper) ledger(kind types.AssetKind) ledger {
	if kind == types.AssetKindToken {
		return ledger{kind: kind, balances: k.TokenBalances, claims: k.TokenClaims}
	}
	return ledger{kind: types.AssetKindNative, balances: k.NativeBalances, claims: k.NativeClaims}
}

func (k Keeper) ledgers() []ledger {
	return []ledger{k.ledger(types.AssetKindToken), k.ledger(types.AssetKindNative)}
}

// GetConfig loads the distribution config, or ErrNotInitialized.
func (k Keeper) GetConfig(ctx context.Context) (types.DistributionConfig, error) {
	contract, err := k.VotingContract.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DistributionConfig{}, types.ErrNotInitialized
		}
		return types.DistributionConfig{}, err
	}

	height, err := k.DistributionHeight.Get(ctx)
	if err != nil {
		return types.DistributionConfig{}, err
	}
	power, err := k.TotalPower.Get(ctx)
	if err != nil {
		return types.DistributionConfig{}, err
	}
	powerHeight, err := k.TotalPowerHeight.Get(ctx)
	if err != nil {
		return types.DistributionConfig{}, err
	}

	return types.DistributionConfig{
		DistributionHeight: height,
		VotingContract:     contract,
		TotalPower:         power,
		TotalPowerHeight:   powerHeight,
	}, nil
}

// SetConfig writes every config item.
func (k Keeper) SetConfig(ctx context.Context, cfg types.DistributionConfig) error {
	if err := k.VotingContract.Set(ctx, cfg.VotingContract); err != nil {
		return err
	}
	if err := k.DistributionHeight.Set(ctx, cfg.DistributionHeight); err != nil {
		return err
	}
	if err := k.TotalPower.Set(ctx, cfg.TotalPower); err != nil {
		return err
	}
	return k.TotalPowerHeight.Set(ctx, cfg.TotalPowerHeight)
}

// IsInitialized reports whether the distribution config exists.
func (k Keeper) IsInitialized(ctx context.Context) (bool, error) {
	return k.VotingContract.Has(ctx)
}

// GetBalance returns the funded amount of an asset and whether it was ever funded.
func (k Keeper) GetBalance(ctx context.Context, kind types.AssetKind, asset string) (sdkmath.Int, bool, error) {
	return k.ledger(kind).balance(ctx, asset)
}

// GetClaim returns the cumulative claim of addr on an asset, zero when absent.
func (k Keeper) GetClaim(ctx context.Context, kind types.AssetKind, addr sdk.AccAddress, asset string) (sdkmath.Int, error) {
	return k.ledger(kind).claim(ctx, addr, asset)
}

// GetAssets lists every funded asset of a kind in key order.
func (k Keeper) GetAssets(ctx context.Context, kind types.AssetKind) ([]string, error) {
	return k.ledger(kind).assets(ctx)
}

// GetClaimsByAddress lists the claims of addr on one ledger.
func (k Keeper) GetClaimsByAddress(ctx context.Context, kind types.AssetKind, addr sdk.AccAddress) ([]types.AssetAmount, error) {
	claims := []types.AssetAmount{}
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, string](addr)
	err := k.ledger(kind).claims.Walk(ctx, rng, func(key ClaimKey, amount sdkmath.Int) (bool, error) {
		claims = append(claims, types.AssetAmount{Asset: key.K2(), Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (l ledger) balance(ctx context.Context, asset string) (sdkmath.Int, bool, error) {
	amount, err := l.balances.Get(ctx, asset)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), false, nil
		}
		return sdkmath.Int{}, false, err
	}
	return amount, true, nil
}

func (l ledger) claim(ctx context.Context, addr sdk.AccAddress, asset string) (sdkmath.Int, error) {
	amount, err := l.claims.Get(ctx, collections.Join(addr, asset))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return amount, nil
}

func (l ledger) assets(ctx context.Context) ([]string, error) {
	var assets []string
	err := l.balances.Walk(ctx, nil, func(asset string, _ sdkmath.Int) (bool, error) {
		assets = append(assets, asset)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// claimTotals sums every claim per asset and returns the claim keys visited.
func (l ledger) claimTotals(ctx context.Context) (map[string]sdkmath.Int, []ClaimKey, error) {
	totals := make(map[string]sdkmath.Int)
	var keys []ClaimKey

	err := l.claims.Walk(ctx, nil, func(key ClaimKey, amount sdkmath.Int) (bool, error) {
		total, ok := totals[key.K2()]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		total, err := types.CheckedAdd(total, amount)
		if err != nil {
			return true, err
		}
		totals[key.K2()] = total
		keys = append(keys, key)
		return false, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return totals, keys, nil
}

// clearClaims removes the given keys. Keys are collected before removal so the
// store is never mutated under an open iterator.
func (l ledger) clearClaims(ctx context.Context, keys []ClaimKey) error {
	for _, key := range keys {
		if err := l.claims.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func sortedAssets(totals map[string]sdkmath.Int) []string {
	assets := make([]string, 0, len(totals))
	for asset := range totals {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	return assets
}
