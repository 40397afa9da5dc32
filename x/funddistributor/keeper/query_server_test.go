package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

func TestQueryNotInitialized(t *testing.T) {
	f := SetupTest(t)

	_, err := f.queryServer.VotingContract(f.ctx, &types.QueryVotingContractRequest{})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.queryServer.TotalPower(f.ctx, &types.QueryTotalPowerRequest{})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.queryServer.Entitlements(f.ctx, &types.QueryEntitlementsRequest{Address: f.addrs[0].String()})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestQueryConfig(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	require := require.New(t)

	contract, err := f.queryServer.VotingContract(f.ctx, &types.QueryVotingContractRequest{})
	require.NoError(err)
	require.Equal(votingContract, contract.Contract)
	require.Equal(uint64(snapshotHeight), contract.DistributionHeight)

	power, err := f.queryServer.TotalPower(f.ctx, &types.QueryTotalPowerRequest{})
	require.NoError(err)
	requireInt(t, 100, power.TotalPower)
	require.False(power.Stale)
}

func TestQueryBalancesPagination(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	require := require.New(t)

	for _, token := range []string{"tokena", "tokenb", "tokenc"} {
		f.fundToken(t, token, 10)
	}
	f.fundNative(t, sdk.NewInt64Coin("uusd", 5))

	page, err := f.queryServer.TokenBalances(f.ctx, &types.QueryBalancesRequest{Pagination: &query.PageRequest{Limit: 2}})
	require.NoError(err)
	require.Len(page.Balances, 2)
	require.Equal("tokena", page.Balances[0].Asset)
	require.NotEmpty(page.Pagination.NextKey)

	page, err = f.queryServer.TokenBalances(f.ctx, &types.QueryBalancesRequest{Pagination: &query.PageRequest{Key: page.Pagination.NextKey}})
	require.NoError(err)
	require.Len(page.Balances, 1)
	require.Equal("tokenc", page.Balances[0].Asset)

	natives, err := f.queryServer.NativeBalances(f.ctx, nil)
	require.NoError(err)
	require.Len(natives.Balances, 1)
	requireInt(t, 5, natives.Balances[0].Amount)
}

func TestQueryClaims(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	require := require.New(t)

	f.fundToken(t, "tokenx", 1000)
	f.fundNative(t, sdk.NewInt64Coin("uusd", 100))

	_, err := f.msgServer.ClaimAll(f.ctx, &types.MsgClaimAll{Sender: f.addrs[0].String()})
	require.NoError(err)

	res, err := f.queryServer.Claims(f.ctx, &types.QueryClaimsRequest{Address: f.addrs[0].String()})
	require.NoError(err)
	require.Len(res.TokenClaims, 1)
	requireInt(t, 300, res.TokenClaims[0].Amount)
	require.Len(res.NativeClaims, 1)
	requireInt(t, 30, res.NativeClaims[0].Amount)

	// another claimant's records are not included
	res, err = f.queryServer.Claims(f.ctx, &types.QueryClaimsRequest{Address: f.addrs[1].String()})
	require.NoError(err)
	require.Empty(res.TokenClaims)

	_, err = f.queryServer.Claims(f.ctx, &types.QueryClaimsRequest{Address: "bad"})
	require.Equal(codes.InvalidArgument, status.Code(err))
}

func TestQueryEntitlements(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	require := require.New(t)

	f.fundToken(t, "tokenx", 1000)

	res, err := f.queryServer.Entitlements(f.ctx, &types.QueryEntitlementsRequest{Address: f.addrs[1].String()})
	require.NoError(err)
	requireInt(t, 70, res.VotingPower)
	require.Len(res.Owed, 1)
	requireInt(t, 700, res.Owed[0].Amount)

	// previewing writes nothing
	claimed, err := f.k.GetClaim(f.ctx, types.AssetKindToken, f.addrs[1], "tokenx")
	require.NoError(err)
	require.True(claimed.IsZero())

	_, err = f.msgServer.ClaimAll(f.ctx, &types.MsgClaimAll{Sender: f.addrs[1].String()})
	require.NoError(err)

	res, err = f.queryServer.Entitlements(f.ctx, &types.QueryEntitlementsRequest{Address: f.addrs[1].String()})
	require.NoError(err)
	require.Empty(res.Owed)

	_, err = f.msgServer.Migrate(f.ctx, &types.MsgMigrate{Authority: f.govModAddr, NewHeight: newHeight})
	require.NoError(err)
	_, err = f.queryServer.Entitlements(f.ctx, &types.QueryEntitlementsRequest{Address: f.addrs[1].String()})
	require.Equal(codes.FailedPrecondition, status.Code(err))
}
