package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

func TestFundToken(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	require := require.New(t)

	f.fundToken(t, "tokenx", 1000)
	f.fundToken(t, "tokenx", 24)

	balance, found, err := f.k.GetBalance(f.ctx, types.AssetKindToken, "tokenx")
	require.NoError(err)
	require.True(found)
	requireInt(t, 1024, balance)
}

func TestFundTokenErrors(t *testing.T) {
	tests := []struct {
		name        string
		instantiate bool
		amount      sdkmath.Int
		err         error
	}{
		{name: "zero amount", instantiate: true, amount: sdkmath.ZeroInt(), err: types.ErrZeroAmount},
		{name: "not initialized", amount: sdkmath.NewInt(1), err: types.ErrNotInitialized},
		{name: "negative", instantiate: true, amount: sdkmath.NewInt(-1), err: types.ErrArithmeticUnderflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := SetupTest(t)
			if tc.instantiate {
				f.instantiate(t)
			}

			_, err := f.msgServer.ReceiveToken(f.ctx, &types.MsgReceiveToken{
				Token:  "tokenx",
				Sender: f.addrs[2].String(),
				Amount: tc.amount,
			})
			require.ErrorIs(t, err, tc.err)

			_, found, err := f.k.GetBalance(f.ctx, types.AssetKindToken, "tokenx")
			require.NoError(t, err)
			require.False(t, found)
		})
	}
}

func TestFundTokenOverflowLeavesBalance(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)

	f.fundToken(t, "tokenx", 1000)

	huge := sdkmath.NewIntFromBigInt(sdkmath.NewInt(1).BigInt().Lsh(sdkmath.NewInt(1).BigInt(), types.MaxAmountBits))
	_, err := f.msgServer.ReceiveToken(f.ctx, &types.MsgReceiveToken{
		Token:  "tokenx",
		Sender: f.addrs[2].String(),
		Amount: huge.SubRaw(1000),
	})
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)

	balance, _, err := f.k.GetBalance(f.ctx, types.AssetKindToken, "tokenx")
	require.NoError(t, err)
	requireInt(t, 1000, balance)
}

func TestFundNative(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)
	require := require.New(t)

	f.fundNative(t, sdk.NewInt64Coin("uusd", 500), sdk.NewInt64Coin("uatom", 7))
	f.fundNative(t, sdk.NewInt64Coin("uusd", 500))

	assets, err := f.k.GetAssets(f.ctx, types.AssetKindNative)
	require.NoError(err)
	require.Equal([]string{"uatom", "uusd"}, assets)

	balance, _, err := f.k.GetBalance(f.ctx, types.AssetKindNative, "uusd")
	require.NoError(err)
	requireInt(t, 1000, balance)

	// native funds never leak into the token ledger
	tokens, err := f.k.GetAssets(f.ctx, types.AssetKindToken)
	require.NoError(err)
	require.Empty(tokens)

	var funded bool
	for _, e := range f.ctx.EventManager().Events() {
		if e.Type == types.EventTypeFundNative {
			funded = true
		}
	}
	require.True(funded)
}
