package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"
)

type validatable interface {
	ValidateBasic() error
}

func TestMsgValidateBasic(t *testing.T) {
	addr := sdk.AccAddress([]byte("claimant____________")).String()

	tests := []struct {
		name string
		msg  validatable
		err  error
	}{
		{name: "instantiate", msg: &MsgInstantiate{Authority: addr, VotingContract: "dao-voting"}},
		{name: "instantiate bad authority", msg: &MsgInstantiate{Authority: "x", VotingContract: "dao-voting"}, err: sdkerrors.ErrInvalidAddress},
		{name: "instantiate no contract", msg: &MsgInstantiate{Authority: addr, VotingContract: " "}, err: ErrInvalidRequest},
		{name: "receive token", msg: &MsgReceiveToken{Token: "tokenx", Sender: addr, Amount: sdkmath.NewInt(1)}},
		{name: "receive token nil amount", msg: &MsgReceiveToken{Token: "tokenx", Sender: addr}, err: ErrInvalidRequest},
		{name: "receive token negative amount", msg: &MsgReceiveToken{Token: "tokenx", Sender: addr, Amount: sdkmath.NewInt(-1)}, err: ErrInvalidRequest},
		{name: "receive token no token", msg: &MsgReceiveToken{Sender: addr, Amount: sdkmath.NewInt(1)}, err: ErrInvalidRequest},
		{name: "fund native", msg: &MsgFundNative{Sender: addr, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 5))}},
		{name: "fund native bad denom", msg: &MsgFundNative{Sender: addr, Funds: sdk.Coins{{Denom: "1", Amount: sdkmath.NewInt(5)}}}, err: ErrInvalidRequest},
		{name: "claim tokens all", msg: &MsgClaimTokens{Sender: addr}},
		{name: "claim tokens empty id", msg: &MsgClaimTokens{Sender: addr, Tokens: []string{"tokenx", ""}}, err: ErrInvalidRequest},
		{name: "claim natives", msg: &MsgClaimNatives{Sender: addr, Denoms: []string{"uusd"}}},
		{name: "claim all bad sender", msg: &MsgClaimAll{Sender: ""}, err: sdkerrors.ErrInvalidAddress},
		{name: "migrate", msg: &MsgMigrate{Authority: addr, NewHeight: 20}},
		{name: "refresh bad authority", msg: &MsgRefreshTotalPower{Authority: "bad"}, err: sdkerrors.ErrInvalidAddress},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransfersNativeCoins(t *testing.T) {
	ts := Transfers{
		{Kind: AssetKindToken, Asset: "tokenx", Amount: sdkmath.NewInt(3)},
		{Kind: AssetKindNative, Asset: "uusd", Amount: sdkmath.NewInt(5)},
		{Kind: AssetKindNative, Asset: "uatom", Amount: sdkmath.NewInt(7)},
	}

	require.Equal(t, "7uatom,5uusd", ts.NativeCoins().String())
	require.Len(t, ts.Tokens(), 1)
	require.Equal(t, "token 3tokenx -> ", ts.Tokens()[0].String())
}

func TestOracleErrorMatches(t *testing.T) {
	err := WrapOracleError(ErrZeroAmount)
	require.ErrorIs(t, err, ErrOracleQueryFailed)
	require.ErrorIs(t, err, ErrZeroAmount)
}
