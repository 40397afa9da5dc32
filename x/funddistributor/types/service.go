package types

import "context"

// MsgServer is the call surface of the distributor. Every handler either commits all
// of its ledger writes or none of them.
type MsgServer interface {
	Instantiate(context.Context, *MsgInstantiate) (*MsgInstantiateResponse, error)
	ReceiveToken(context.Context, *MsgReceiveToken) (*MsgReceiveTokenResponse, error)
	FundNative(context.Context, *MsgFundNative) (*MsgFundNativeResponse, error)
	ClaimTokens(context.Context, *MsgClaimTokens) (*ClaimResponse, error)
	ClaimNatives(context.Context, *MsgClaimNatives) (*ClaimResponse, error)
	ClaimAll(context.Context, *MsgClaimAll) (*ClaimResponse, error)
	Migrate(context.Context, *MsgMigrate) (*MsgMigrateResponse, error)
	RefreshTotalPower(context.Context, *MsgRefreshTotalPower) (*MsgRefreshTotalPowerResponse, error)
}

// QueryServer is the read-only surface of the distributor.
type QueryServer interface {
	VotingContract(context.Context, *QueryVotingContractRequest) (*QueryVotingContractResponse, error)
	TotalPower(context.Context, *QueryTotalPowerRequest) (*QueryTotalPowerResponse, error)
	TokenBalances(context.Context, *QueryBalancesRequest) (*QueryBalancesResponse, error)
	NativeBalances(context.Context, *QueryBalancesRequest) (*QueryBalancesResponse, error)
	Claims(context.Context, *QueryClaimsRequest) (*QueryClaimsResponse, error)
	Entitlements(context.Context, *QueryEntitlementsRequest) (*QueryEntitlementsResponse, error)
}
