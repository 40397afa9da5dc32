package types

import (
	"cosmossdk.io/collections"
)

var (
	// DistributionHeightKey saves the snapshot height every entitlement of the current epoch is measured at.
	DistributionHeightKey = collections.NewPrefix(0)

	// DistributionHeightName is the name of the distribution height item.
	DistributionHeightName = "distribution_height"

	// VotingContractKey saves the address of the voting power oracle.
	VotingContractKey = collections.NewPrefix(1)

	// VotingContractName is the name of the voting contract item.
	VotingContractName = "voting_contract"

	// TotalPowerKey saves the total voting power at the distribution height.
	TotalPowerKey = collections.NewPrefix(2)

	// TotalPowerName is the name of the total power item.
	TotalPowerName = "total_power"

	// TokenBalancesKey maps token id -> funded amount.
	TokenBalancesKey = collections.NewPrefix(3)

	// TokenBalancesName is the name of the token balances collection.
	TokenBalancesName = "token_balances"

	// NativeBalancesKey maps denom -> funded amount.
	NativeBalancesKey = collections.NewPrefix(4)

	// NativeBalancesName is the name of the native balances collection.
	NativeBalancesName = "native_balances"

	// TokenClaimsKey maps (claimant, token id) -> cumulative claim.
	TokenClaimsKey = collections.NewPrefix(5)

	// TokenClaimsName is the name of the token claims collection.
	TokenClaimsName = "token_claims"

	// NativeClaimsKey maps (claimant, denom) -> cumulative claim.
	NativeClaimsKey = collections.NewPrefix(6)

	// NativeClaimsName is the name of the native claims collection.
	NativeClaimsName = "native_claims"

	// TotalPowerHeightKey saves the height TotalPower was measured at.
	TotalPowerHeightKey = collections.NewPrefix(7)

	// TotalPowerHeightName is the name of the total power height item.
	TotalPowerHeightName = "total_power_height"
)

const (
	ModuleName = "funddistributor"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
