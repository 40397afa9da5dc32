package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// atomically runs fn on a cache context and writes it back only when fn succeeds.
func atomically(goCtx context.Context, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	// use a temporary context to not commit any ledger change in case of error
	tmpCtx, commit := sdkCtx.CacheContext()
	if err := fn(tmpCtx); err != nil {
		return err
	}

	commit()
	return nil
}

func (ms msgServer) checkAuthority(authority string) error {
	if ms.k.authority != authority {
		return errors.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.k.authority, authority)
	}
	return nil
}

// Instantiate implements types.MsgServer.
func (ms msgServer) Instantiate(goCtx context.Context, msg *types.MsgInstantiate) (*types.MsgInstantiateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	var cfg types.DistributionConfig
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		if cfg, err = ms.k.Instantiate(ctx, msg.VotingContract); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeInstantiate,
			sdk.NewAttribute(types.AttributeKeyDistributionHeight, strconv.FormatUint(cfg.DistributionHeight, 10)),
			sdk.NewAttribute(types.AttributeKeyVotingContract, cfg.VotingContract),
			sdk.NewAttribute(types.AttributeKeyTotalPower, cfg.TotalPower.String()),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgInstantiateResponse{
		DistributionHeight: cfg.DistributionHeight,
		TotalPower:         cfg.TotalPower,
	}, nil
}

// ReceiveToken implements types.MsgServer.
func (ms msgServer) ReceiveToken(goCtx context.Context, msg *types.MsgReceiveToken) (*types.MsgReceiveTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := atomically(goCtx, func(ctx sdk.Context) error {
		return ms.k.FundToken(ctx, msg.Token, msg.Amount)
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, types.MethodFundToken)
	return &types.MsgReceiveTokenResponse{}, nil
}

// FundNative implements types.MsgServer.
func (ms msgServer) FundNative(goCtx context.Context, msg *types.MsgFundNative) (*types.MsgFundNativeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := atomically(goCtx, func(ctx sdk.Context) error {
		return ms.k.FundNative(ctx, msg.Funds)
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, types.MethodFundNative)
	return &types.MsgFundNativeResponse{}, nil
}

// ClaimTokens implements types.MsgServer.
func (ms msgServer) ClaimTokens(goCtx context.Context, msg *types.MsgClaimTokens) (*types.ClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return ms.runClaim(goCtx, types.MethodClaimTokens, msg.Sender, func(ctx sdk.Context, sender sdk.AccAddress) (types.Transfers, error) {
		return ms.k.ClaimTokens(ctx, sender, msg.Tokens)
	})
}

// ClaimNatives implements types.MsgServer.
func (ms msgServer) ClaimNatives(goCtx context.Context, msg *types.MsgClaimNatives) (*types.ClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return ms.runClaim(goCtx, types.MethodClaimNatives, msg.Sender, func(ctx sdk.Context, sender sdk.AccAddress) (types.Transfers, error) {
		return ms.k.ClaimNatives(ctx, sender, msg.Denoms)
	})
}

// ClaimAll implements types.MsgServer.
func (ms msgServer) ClaimAll(goCtx context.Context, msg *types.MsgClaimAll) (*types.ClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return ms.runClaim(goCtx, types.MethodClaimAll, msg.Sender, func(ctx sdk.Context, sender sdk.AccAddress) (types.Transfers, error) {
		return ms.k.ClaimAll(ctx, sender)
	})
}

func (ms msgServer) runClaim(
	goCtx context.Context,
	method, senderBech32 string,
	claim func(ctx sdk.Context, sender sdk.AccAddress) (types.Transfers, error),
) (*types.ClaimResponse, error) {
	sender, err := sdk.AccAddressFromBech32(senderBech32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sender address")
	}

	var transfers types.Transfers
	err = atomically(goCtx, func(ctx sdk.Context) (err error) {
		if transfers, err = claim(ctx, sender); err != nil {
			return err
		}
		ctx.EventManager().EmitEvents(types.NewClaimEvents(method, sender.String(), transfers))
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, method)
	telemetry.IncrCounter(float32(len(transfers)), types.ModuleName, "transfer_instructions")

	return &types.ClaimResponse{
		Method:    method,
		Sender:    sender.String(),
		Transfers: transfers,
	}, nil
}

// Migrate implements types.MsgServer.
// Only the module authority can re-base the distribution.
func (ms msgServer) Migrate(goCtx context.Context, msg *types.MsgMigrate) (*types.MsgMigrateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	var (
		cfg        types.DistributionConfig
		reconciled []types.Reconciliation
	)
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		if cfg, reconciled, err = ms.k.Migrate(ctx, msg.NewHeight, msg.RefreshTotalPower); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(types.NewMigrateEvent(cfg.DistributionHeight, cfg.TotalPower, !cfg.TotalPowerStale()))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgMigrateResponse{
		DistributionHeight: cfg.DistributionHeight,
		TotalPower:         cfg.TotalPower,
		TotalPowerStale:    cfg.TotalPowerStale(),
		Reconciled:         reconciled,
	}, nil
}

// RefreshTotalPower implements types.MsgServer.
func (ms msgServer) RefreshTotalPower(goCtx context.Context, msg *types.MsgRefreshTotalPower) (*types.MsgRefreshTotalPowerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	var cfg types.DistributionConfig
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		if cfg, err = ms.k.RefreshTotalPower(ctx); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeRefreshTotalPower,
			sdk.NewAttribute(types.AttributeKeyTotalPower, cfg.TotalPower.String()),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgRefreshTotalPowerResponse{TotalPower: cfg.TotalPower}, nil
}
