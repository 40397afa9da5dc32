package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// SmartQuerier is the contract query surface of a wasm keeper.
type SmartQuerier interface {
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

var _ types.VotingOracle = WasmOracle{}

// WasmOracle reads voting power from a DAO voting module contract.
type WasmOracle struct {
	querier SmartQuerier
}

func NewWasmOracle(querier SmartQuerier) WasmOracle {
	return WasmOracle{querier: querier}
}

type totalPowerAtHeightQuery struct {
	TotalPowerAtHeight struct {
		Height *uint64 `json:"height,omitempty"`
	} `json:"total_power_at_height"`
}

type votingPowerAtHeightQuery struct {
	VotingPowerAtHeight struct {
		Address string  `json:"address"`
		Height  *uint64 `json:"height,omitempty"`
	} `json:"voting_power_at_height"`
}

type powerAtHeightResponse struct {
	Power  sdkmath.Int `json:"power"`
	Height uint64      `json:"height"`
}

func (o WasmOracle) TotalPowerAtHeight(ctx context.Context, contract string, height uint64) (sdkmath.Int, error) {
	var q totalPowerAtHeightQuery
	q.TotalPowerAtHeight.Height = &height
	return o.query(ctx, contract, q)
}

func (o WasmOracle) VotingPowerAtHeight(ctx context.Context, contract string, addr sdk.AccAddress, height uint64) (sdkmath.Int, error) {
	var q votingPowerAtHeightQuery
	q.VotingPowerAtHeight.Address = addr.String()
	q.VotingPowerAtHeight.Height = &height
	return o.query(ctx, contract, q)
}

func (o WasmOracle) query(ctx context.Context, contract string, q any) (sdkmath.Int, error) {
	contractAddr, err := sdk.AccAddressFromBech32(contract)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("invalid voting contract %s: %w", contract, err)
	}

	req, err := json.Marshal(q)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to marshal voting query: %w", err)
	}

	bz, err := o.querier.QuerySmart(ctx, contractAddr, req)
	if err != nil {
		return sdkmath.Int{}, err
	}

	var res powerAtHeightResponse
	if err := json.Unmarshal(bz, &res); err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to unmarshal voting response: %w", err)
	}
	if res.Power.IsNil() {
		return sdkmath.Int{}, fmt.Errorf("voting response carries no power")
	}

	return res.Power, nil
}
