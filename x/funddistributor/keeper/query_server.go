package keeper

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (k Querier) VotingContract(goCtx context.Context, _ *types.QueryVotingContractRequest) (*types.QueryVotingContractResponse, error) {
	cfg, err := k.configOrStatus(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryVotingContractResponse{
		Contract:           cfg.VotingContract,
		DistributionHeight: cfg.DistributionHeight,
	}, nil
}

func (k Querier) TotalPower(goCtx context.Context, _ *types.QueryTotalPowerRequest) (*types.QueryTotalPowerResponse, error) {
	cfg, err := k.configOrStatus(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryTotalPowerResponse{
		TotalPower:       cfg.TotalPower,
		TotalPowerHeight: cfg.TotalPowerHeight,
		Stale:            cfg.TotalPowerStale(),
	}, nil
}

func (k Querier) TokenBalances(goCtx context.Context, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error) {
	return k.balances(goCtx, types.AssetKindToken, req)
}

func (k Querier) NativeBalances(goCtx context.Context, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error) {
	return k.balances(goCtx, types.AssetKindNative, req)
}

func (k Querier) balances(goCtx context.Context, kind types.AssetKind, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error) {
	if req == nil {
		req = &types.QueryBalancesRequest{}
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	balances, pageRes, err := query.CollectionPaginate(
		ctx,
		k.ledger(kind).balances,
		req.Pagination,
		func(asset string, amount sdkmath.Int) (types.AssetAmount, error) {
			return types.AssetAmount{Asset: asset, Amount: amount}, nil
		},
	)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to paginate %s balances: %v", kind, err)
	}

	return &types.QueryBalancesResponse{Balances: balances, Pagination: pageRes}, nil
}

func (k Querier) Claims(goCtx context.Context, req *types.QueryClaimsRequest) (*types.QueryClaimsResponse, error) {
	if req == nil || req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "address is required")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	tokenClaims, err := k.GetClaimsByAddress(ctx, types.AssetKindToken, addr)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get token claims: %v", err)
	}
	nativeClaims, err := k.GetClaimsByAddress(ctx, types.AssetKindNative, addr)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get native claims: %v", err)
	}

	return &types.QueryClaimsResponse{TokenClaims: tokenClaims, NativeClaims: nativeClaims}, nil
}

func (k Querier) Entitlements(goCtx context.Context, req *types.QueryEntitlementsRequest) (*types.QueryEntitlementsResponse, error) {
	if req == nil || req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "address is required")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	power, owed, err := k.Keeper.Entitlements(sdk.UnwrapSDKContext(goCtx), addr)
	if err != nil {
		if errors.Is(err, types.ErrNotInitialized) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, types.ErrStaleTotalPower) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		// oracle and arithmetic failures keep their registered codes
		return nil, err
	}

	return &types.QueryEntitlementsResponse{VotingPower: power, Owed: owed}, nil
}

func (k Querier) configOrStatus(goCtx context.Context) (types.DistributionConfig, error) {
	cfg, err := k.GetConfig(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		if errors.Is(err, types.ErrNotInitialized) {
			return types.DistributionConfig{}, status.Error(codes.NotFound, err.Error())
		}
		return types.DistributionConfig{}, status.Errorf(codes.Internal, "failed to get config: %v", err)
	}
	return cfg, nil
}
