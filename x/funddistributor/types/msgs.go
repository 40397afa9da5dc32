package types

import (
	"strings"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgInstantiate sets up the distribution at the current block height.
type MsgInstantiate struct {
	Authority      string `json:"authority"`
	VotingContract string `json:"voting_contract"`
}

type MsgInstantiateResponse struct {
	DistributionHeight uint64      `json:"distribution_height"`
	TotalPower         sdkmath.Int `json:"total_power"`
}

// MsgReceiveToken is the notification a token ledger sends after moving Amount of
// Token into the distributor on behalf of Sender.
type MsgReceiveToken struct {
	Token  string      `json:"token"`
	Sender string      `json:"sender"`
	Amount sdkmath.Int `json:"amount"`
}

type MsgReceiveTokenResponse struct{}

// MsgFundNative deposits the native coins attached to the call.
type MsgFundNative struct {
	Sender string    `json:"sender"`
	Funds  sdk.Coins `json:"funds"`
}

type MsgFundNativeResponse struct{}

// MsgClaimTokens claims token entitlements. An empty Tokens list claims every funded token.
type MsgClaimTokens struct {
	Sender string   `json:"sender"`
	Tokens []string `json:"tokens,omitempty"`
}

// MsgClaimNatives claims native entitlements. An empty Denoms list claims every funded denom.
type MsgClaimNatives struct {
	Sender string   `json:"sender"`
	Denoms []string `json:"denoms,omitempty"`
}

// MsgClaimAll claims every funded asset of both kinds.
type MsgClaimAll struct {
	Sender string `json:"sender"`
}

// ClaimResponse is the observable result of every claim call.
type ClaimResponse struct {
	Method    string    `json:"method" yaml:"method"`
	Sender    string    `json:"sender" yaml:"sender"`
	Transfers Transfers `json:"transfers" yaml:"transfers"`
}

// MsgMigrate re-bases the distribution onto NewHeight.
type MsgMigrate struct {
	Authority         string `json:"authority"`
	NewHeight         uint64 `json:"new_height"`
	RefreshTotalPower bool   `json:"refresh_total_power"`
}

type MsgMigrateResponse struct {
	DistributionHeight uint64           `json:"distribution_height"`
	TotalPower         sdkmath.Int      `json:"total_power"`
	TotalPowerStale    bool             `json:"total_power_stale"`
	Reconciled         []Reconciliation `json:"reconciled"`
}

// Reconciliation reports how one asset's balance was re-based by a migration.
type Reconciliation struct {
	Kind          AssetKind   `json:"kind" yaml:"kind"`
	Asset         string      `json:"asset" yaml:"asset"`
	Paid          sdkmath.Int `json:"paid" yaml:"paid"`
	BalanceBefore sdkmath.Int `json:"balance_before" yaml:"balance_before"`
	BalanceAfter  sdkmath.Int `json:"balance_after" yaml:"balance_after"`
}

// MsgRefreshTotalPower re-queries total power at the current distribution height.
type MsgRefreshTotalPower struct {
	Authority string `json:"authority"`
}

type MsgRefreshTotalPowerResponse struct {
	TotalPower sdkmath.Int `json:"total_power"`
}

func (msg *MsgInstantiate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid authority address")
	}
	if strings.TrimSpace(msg.VotingContract) == "" {
		return errors.Wrap(ErrInvalidRequest, "voting contract is required")
	}
	return nil
}

func (msg *MsgReceiveToken) ValidateBasic() error {
	if strings.TrimSpace(msg.Token) == "" {
		return errors.Wrap(ErrInvalidRequest, "token is required")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	if msg.Amount.IsNil() {
		return errors.Wrap(ErrInvalidRequest, "amount is required")
	}
	if msg.Amount.IsNegative() {
		return errors.Wrapf(ErrInvalidRequest, "negative amount %s", msg.Amount)
	}
	return nil
}

func (msg *MsgFundNative) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	for _, c := range msg.Funds {
		if err := sdk.ValidateDenom(c.Denom); err != nil {
			return errors.Wrap(ErrInvalidRequest, err.Error())
		}
	}
	return nil
}

func (msg *MsgClaimTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	return validateIDs(msg.Tokens, "token")
}

func (msg *MsgClaimNatives) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	return validateIDs(msg.Denoms, "denom")
}

func (msg *MsgClaimAll) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	return nil
}

func (msg *MsgMigrate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid authority address")
	}
	return nil
}

func (msg *MsgRefreshTotalPower) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, "invalid authority address")
	}
	return nil
}

func validateIDs(ids []string, what string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return errors.Wrapf(ErrInvalidRequest, "empty %s id", what)
		}
	}
	return nil
}
