package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VotingOracle defines the expected interface of the voting power source.
// Both queries must answer for historical heights, not only the current one.
type VotingOracle interface {
	TotalPowerAtHeight(ctx context.Context, contract string, height uint64) (sdkmath.Int, error)
	VotingPowerAtHeight(ctx context.Context, contract string, addr sdk.AccAddress, height uint64) (sdkmath.Int, error)
}
