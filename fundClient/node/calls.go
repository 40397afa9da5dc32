package node

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/fund-distributor/fundClient/db"
	"github.com/pushchain/fund-distributor/fundClient/store"
	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// Receipt is the outcome of a committed call.
type Receipt[R any] struct {
	Height   int64 `json:"height" yaml:"height"`
	Response R     `json:"response" yaml:"response"`
}

func (n *Node) Instantiate(msg *types.MsgInstantiate) (Receipt[*types.MsgInstantiateResponse], error) {
	res, height, err := exec(n, "instantiate", func(ctx sdk.Context) (*types.MsgInstantiateResponse, error) {
		return n.app.MsgServer.Instantiate(ctx, msg)
	})
	return Receipt[*types.MsgInstantiateResponse]{Height: height, Response: res}, err
}

func (n *Node) FundToken(msg *types.MsgReceiveToken) (Receipt[*types.MsgReceiveTokenResponse], error) {
	res, height, err := exec(n, types.MethodFundToken, func(ctx sdk.Context) (*types.MsgReceiveTokenResponse, error) {
		return n.app.MsgServer.ReceiveToken(ctx, msg)
	})
	if err != nil {
		return Receipt[*types.MsgReceiveTokenResponse]{Height: height}, err
	}

	n.record(height, func(j *db.DB) error {
		return j.RecordFunding(height, msg.Sender, types.AssetKindToken, []types.AssetAmount{{Asset: msg.Token, Amount: msg.Amount}})
	})
	return Receipt[*types.MsgReceiveTokenResponse]{Height: height, Response: res}, nil
}

func (n *Node) FundNative(msg *types.MsgFundNative) (Receipt[*types.MsgFundNativeResponse], error) {
	res, height, err := exec(n, types.MethodFundNative, func(ctx sdk.Context) (*types.MsgFundNativeResponse, error) {
		return n.app.MsgServer.FundNative(ctx, msg)
	})
	if err != nil {
		return Receipt[*types.MsgFundNativeResponse]{Height: height}, err
	}

	funds := make([]types.AssetAmount, 0, len(msg.Funds))
	for _, c := range msg.Funds {
		funds = append(funds, types.AssetAmount{Asset: c.Denom, Amount: c.Amount})
	}
	n.record(height, func(j *db.DB) error {
		return j.RecordFunding(height, msg.Sender, types.AssetKindNative, funds)
	})
	return Receipt[*types.MsgFundNativeResponse]{Height: height, Response: res}, nil
}

func (n *Node) ClaimTokens(msg *types.MsgClaimTokens) (Receipt[*types.ClaimResponse], error) {
	return n.claim(types.MethodClaimTokens, func(ctx sdk.Context) (*types.ClaimResponse, error) {
		return n.app.MsgServer.ClaimTokens(ctx, msg)
	})
}

func (n *Node) ClaimNatives(msg *types.MsgClaimNatives) (Receipt[*types.ClaimResponse], error) {
	return n.claim(types.MethodClaimNatives, func(ctx sdk.Context) (*types.ClaimResponse, error) {
		return n.app.MsgServer.ClaimNatives(ctx, msg)
	})
}

func (n *Node) ClaimAll(msg *types.MsgClaimAll) (Receipt[*types.ClaimResponse], error) {
	return n.claim(types.MethodClaimAll, func(ctx sdk.Context) (*types.ClaimResponse, error) {
		return n.app.MsgServer.ClaimAll(ctx, msg)
	})
}

func (n *Node) claim(method string, fn func(ctx sdk.Context) (*types.ClaimResponse, error)) (Receipt[*types.ClaimResponse], error) {
	res, height, err := exec(n, method, fn)
	if err != nil {
		return Receipt[*types.ClaimResponse]{Height: height}, err
	}

	for _, t := range res.Transfers {
		n.metrics.Transfers.WithLabelValues(string(t.Kind)).Inc()
		n.logger.Debug().Int64("height", height).Stringer("transfer", t).Msg("payout")
	}
	if len(res.Transfers) > 0 {
		n.logger.Info().
			Int64("height", height).
			Str("native", res.Transfers.NativeCoins().String()).
			Int("tokens", len(res.Transfers.Tokens())).
			Msg("claim paid out")
	}
	n.record(height, func(j *db.DB) error {
		return j.RecordClaim(height, res)
	})
	return Receipt[*types.ClaimResponse]{Height: height, Response: res}, nil
}

func (n *Node) Migrate(msg *types.MsgMigrate) (Receipt[*types.MsgMigrateResponse], error) {
	res, height, err := exec(n, types.MethodMigrate, func(ctx sdk.Context) (*types.MsgMigrateResponse, error) {
		return n.app.MsgServer.Migrate(ctx, msg)
	})
	if err != nil {
		return Receipt[*types.MsgMigrateResponse]{Height: height}, err
	}

	if res.TotalPowerStale {
		n.logger.Warn().Uint64("distribution_height", res.DistributionHeight).
			Msg("total power is stale, claims are refused until it is refreshed")
	}
	n.record(height, func(j *db.DB) error {
		return j.RecordMigration(height, res)
	})
	return Receipt[*types.MsgMigrateResponse]{Height: height, Response: res}, nil
}

func (n *Node) RefreshTotalPower(msg *types.MsgRefreshTotalPower) (Receipt[*types.MsgRefreshTotalPowerResponse], error) {
	res, height, err := exec(n, "refresh_total_power", func(ctx sdk.Context) (*types.MsgRefreshTotalPowerResponse, error) {
		return n.app.MsgServer.RefreshTotalPower(ctx, msg)
	})
	return Receipt[*types.MsgRefreshTotalPowerResponse]{Height: height, Response: res}, err
}

func (n *Node) VotingContract() (*types.QueryVotingContractResponse, error) {
	return query(n, func(ctx sdk.Context) (*types.QueryVotingContractResponse, error) {
		return n.app.QueryServer.VotingContract(ctx, &types.QueryVotingContractRequest{})
	})
}

func (n *Node) TotalPower() (*types.QueryTotalPowerResponse, error) {
	return query(n, func(ctx sdk.Context) (*types.QueryTotalPowerResponse, error) {
		return n.app.QueryServer.TotalPower(ctx, &types.QueryTotalPowerRequest{})
	})
}

func (n *Node) Balances(kind types.AssetKind, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error) {
	return query(n, func(ctx sdk.Context) (*types.QueryBalancesResponse, error) {
		if kind == types.AssetKindNative {
			return n.app.QueryServer.NativeBalances(ctx, req)
		}
		return n.app.QueryServer.TokenBalances(ctx, req)
	})
}

func (n *Node) Claims(address string) (*types.QueryClaimsResponse, error) {
	return query(n, func(ctx sdk.Context) (*types.QueryClaimsResponse, error) {
		return n.app.QueryServer.Claims(ctx, &types.QueryClaimsRequest{Address: address})
	})
}

func (n *Node) Entitlements(address string) (*types.QueryEntitlementsResponse, error) {
	return query(n, func(ctx sdk.Context) (*types.QueryEntitlementsResponse, error) {
		return n.app.QueryServer.Entitlements(ctx, &types.QueryEntitlementsRequest{Address: address})
	})
}

// Payouts reads the journal; it returns nil when the journal is disabled.
func (n *Node) Payouts(recipient string, limit int) ([]store.Payout, error) {
	if n.journal == nil {
		return nil, nil
	}
	return n.journal.Payouts(recipient, limit)
}
