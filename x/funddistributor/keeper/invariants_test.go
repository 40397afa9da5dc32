package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/keeper"
)

func collectionsJoin(addr sdk.AccAddress, asset string) keeper.ClaimKey {
	return collections.Join(addr, asset)
}

func TestClaimsWithinBalancesInvariant(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	f.fundToken(t, "tokenx", 100)
	require := require.New(t)

	invariant := keeper.ClaimsWithinBalancesInvariant(f.k)

	_, broken := invariant(f.ctx)
	require.False(broken)

	require.NoError(f.k.TokenClaims.Set(f.ctx, collectionsJoin(f.addrs[0], "tokenx"), sdkmath.NewInt(60)))
	require.NoError(f.k.TokenClaims.Set(f.ctx, collectionsJoin(f.addrs[1], "tokenx"), sdkmath.NewInt(40)))
	_, broken = invariant(f.ctx)
	require.False(broken)

	require.NoError(f.k.TokenClaims.Set(f.ctx, collectionsJoin(f.addrs[2], "tokenx"), sdkmath.NewInt(1)))
	msg, broken := invariant(f.ctx)
	require.True(broken)
	require.Contains(msg, "tokenx")

	// a claim on an asset that has no balance at all
	f = SetupTest(t)
	f.instantiate(t)
	require.NoError(f.k.NativeClaims.Set(f.ctx, collectionsJoin(f.addrs[0], "uusd"), sdkmath.NewInt(1)))
	_, broken = keeper.ClaimsWithinBalancesInvariant(f.k)(f.ctx)
	require.True(broken)
}
