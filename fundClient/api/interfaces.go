package api

import (
	"github.com/pushchain/fund-distributor/fundClient/node"
	"github.com/pushchain/fund-distributor/fundClient/store"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// Distributor defines the node methods needed by the API server
type Distributor interface {
	LastHeight() int64

	FundToken(msg *types.MsgReceiveToken) (node.Receipt[*types.MsgReceiveTokenResponse], error)
	FundNative(msg *types.MsgFundNative) (node.Receipt[*types.MsgFundNativeResponse], error)
	ClaimTokens(msg *types.MsgClaimTokens) (node.Receipt[*types.ClaimResponse], error)
	ClaimNatives(msg *types.MsgClaimNatives) (node.Receipt[*types.ClaimResponse], error)
	ClaimAll(msg *types.MsgClaimAll) (node.Receipt[*types.ClaimResponse], error)

	VotingContract() (*types.QueryVotingContractResponse, error)
	TotalPower() (*types.QueryTotalPowerResponse, error)
	Balances(kind types.AssetKind, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error)
	Claims(address string) (*types.QueryClaimsResponse, error)
	Entitlements(address string) (*types.QueryEntitlementsResponse, error)
	Payouts(recipient string, limit int) ([]store.Payout, error)
}
