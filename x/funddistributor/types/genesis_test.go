package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestGenesisStateValidate(t *testing.T) {
	alice := sdk.AccAddress([]byte("alice_______________")).String()
	bob := sdk.AccAddress([]byte("bob_________________")).String()

	config := func() *DistributionConfig {
		return &DistributionConfig{
			DistributionHeight: 10,
			VotingContract:     "dao-voting",
			TotalPower:         sdkmath.NewInt(100),
			TotalPowerHeight:   10,
		}
	}

	tests := []struct {
		name    string
		genesis GenesisState
		err     error
	}{
		{
			name:    "default",
			genesis: *DefaultGenesis(),
		},
		{
			name: "balances and claims",
			genesis: GenesisState{
				Config:         config(),
				TokenBalances:  []AssetAmount{{Asset: "tokenx", Amount: sdkmath.NewInt(1000)}},
				TokenClaims:    []ClaimEntry{{Claimant: alice, Asset: "tokenx", Amount: sdkmath.NewInt(300)}, {Claimant: bob, Asset: "tokenx", Amount: sdkmath.NewInt(700)}},
				NativeBalances: []AssetAmount{{Asset: "uusd", Amount: sdkmath.NewInt(5)}},
			},
		},
		{
			name:    "ledger without config",
			genesis: GenesisState{TokenBalances: []AssetAmount{{Asset: "tokenx", Amount: sdkmath.NewInt(1)}}},
			err:     ErrNotInitialized,
		},
		{
			name: "zero total power",
			genesis: GenesisState{Config: &DistributionConfig{
				VotingContract: "dao-voting",
				TotalPower:     sdkmath.ZeroInt(),
			}},
			err: ErrZeroVotingPower,
		},
		{
			name: "duplicate balance",
			genesis: GenesisState{
				Config:        config(),
				TokenBalances: []AssetAmount{{Asset: "tokenx", Amount: sdkmath.NewInt(1)}, {Asset: "tokenx", Amount: sdkmath.NewInt(2)}},
			},
			err: ErrInvalidRequest,
		},
		{
			name: "claim on unfunded asset",
			genesis: GenesisState{
				Config:       config(),
				NativeClaims: []ClaimEntry{{Claimant: alice, Asset: "uusd", Amount: sdkmath.NewInt(1)}},
			},
			err: ErrUnknownAsset,
		},
		{
			name: "claims exceed balance",
			genesis: GenesisState{
				Config:        config(),
				TokenBalances: []AssetAmount{{Asset: "tokenx", Amount: sdkmath.NewInt(500)}},
				TokenClaims:   []ClaimEntry{{Claimant: alice, Asset: "tokenx", Amount: sdkmath.NewInt(300)}, {Claimant: bob, Asset: "tokenx", Amount: sdkmath.NewInt(300)}},
			},
			err: ErrArithmeticUnderflow,
		},
		{
			name: "bad claimant",
			genesis: GenesisState{
				Config:        config(),
				TokenBalances: []AssetAmount{{Asset: "tokenx", Amount: sdkmath.NewInt(500)}},
				TokenClaims:   []ClaimEntry{{Claimant: "nope", Asset: "tokenx", Amount: sdkmath.NewInt(1)}},
			},
			err: ErrInvalidRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genesis.Validate()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTotalPowerStale(t *testing.T) {
	cfg := DistributionConfig{DistributionHeight: 10, TotalPowerHeight: 10}
	require.False(t, cfg.TotalPowerStale())

	cfg.DistributionHeight = 20
	require.True(t, cfg.TotalPowerStale())
}
