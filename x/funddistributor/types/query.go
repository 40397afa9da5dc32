package types

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

type QueryVotingContractRequest struct{}

type QueryVotingContractResponse struct {
	Contract           string `json:"contract" yaml:"contract"`
	DistributionHeight uint64 `json:"distribution_height" yaml:"distribution_height"`
}

type QueryTotalPowerRequest struct{}

type QueryTotalPowerResponse struct {
	TotalPower       sdkmath.Int `json:"total_power" yaml:"total_power"`
	TotalPowerHeight uint64      `json:"total_power_height" yaml:"total_power_height"`
	Stale            bool        `json:"stale" yaml:"stale"`
}

type QueryBalancesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryBalancesResponse struct {
	Balances   []AssetAmount       `json:"balances" yaml:"balances"`
	Pagination *query.PageResponse `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

type QueryClaimsRequest struct {
	Address string `json:"address"`
}

type QueryClaimsResponse struct {
	TokenClaims  []AssetAmount `json:"token_claims" yaml:"token_claims"`
	NativeClaims []AssetAmount `json:"native_claims" yaml:"native_claims"`
}

type QueryEntitlementsRequest struct {
	Address string `json:"address"`
}

// QueryEntitlementsResponse previews what a claim-all by Address would pay right now.
type QueryEntitlementsResponse struct {
	VotingPower sdkmath.Int `json:"voting_power" yaml:"voting_power"`
	Owed        Transfers   `json:"owed" yaml:"owed"`
}
