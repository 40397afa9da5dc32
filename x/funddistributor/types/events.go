package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeInstantiate       = "instantiate"
	EventTypeFundToken         = "fund_token"
	EventTypeFundNative        = "fund_native"
	EventTypeClaim             = "claim"
	EventTypeTransfer          = "transfer_instruction"
	EventTypeMigrate           = "migrate"
	EventTypeRefreshTotalPower = "refresh_total_power"

	AttributeKeyMethod             = "method"
	AttributeKeySender             = "sender"
	AttributeKeyToken              = "token"
	AttributeKeyAmount             = "amount"
	AttributeKeyRecipient          = "recipient"
	AttributeKeyKind               = "kind"
	AttributeKeyAsset              = "asset"
	AttributeKeyDistributionHeight = "distribution_height"
	AttributeKeyVotingContract     = "voting_contract"
	AttributeKeyTotalPower         = "total_power"
	AttributeKeyTransferCount      = "transfer_count"
)

// Method names reported in claim responses and events.
const (
	MethodFundToken    = "fund_cw20"
	MethodFundNative   = "fund_native"
	MethodClaimTokens  = "claim_cw20s"
	MethodClaimNatives = "claim_natives"
	MethodClaimAll     = "claim_all"
	MethodMigrate      = "migrate"
)

// NewFundTokenEvent records a token deposit.
func NewFundTokenEvent(token string, amount sdkmath.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeFundToken,
		sdk.NewAttribute(AttributeKeyMethod, MethodFundToken),
		sdk.NewAttribute(AttributeKeyToken, token),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	)
}

// NewFundNativeEvent records a native deposit with one attribute per denom.
func NewFundNativeEvent(funds sdk.Coins) sdk.Event {
	attrs := []sdk.Attribute{sdk.NewAttribute(AttributeKeyMethod, MethodFundNative)}
	for _, c := range funds {
		attrs = append(attrs, sdk.NewAttribute(c.Denom, c.Amount.String()))
	}
	return sdk.NewEvent(EventTypeFundNative, attrs...)
}

// NewClaimEvents returns the claim summary event followed by one event per transfer instruction.
func NewClaimEvents(method, sender string, transfers Transfers) sdk.Events {
	events := sdk.Events{
		sdk.NewEvent(
			EventTypeClaim,
			sdk.NewAttribute(AttributeKeyMethod, method),
			sdk.NewAttribute(AttributeKeySender, sender),
			sdk.NewAttribute(AttributeKeyTransferCount, strconv.Itoa(len(transfers))),
		),
	}
	for _, t := range transfers {
		events = append(events, sdk.NewEvent(
			EventTypeTransfer,
			sdk.NewAttribute(AttributeKeyRecipient, t.Recipient),
			sdk.NewAttribute(AttributeKeyKind, string(t.Kind)),
			sdk.NewAttribute(AttributeKeyAsset, t.Asset),
			sdk.NewAttribute(AttributeKeyAmount, t.Amount.String()),
		))
	}
	return events
}

// NewMigrateEvent records a snapshot re-base.
func NewMigrateEvent(height uint64, totalPower sdkmath.Int, refreshed bool) sdk.Event {
	return sdk.NewEvent(
		EventTypeMigrate,
		sdk.NewAttribute(AttributeKeyMethod, MethodMigrate),
		sdk.NewAttribute(AttributeKeyDistributionHeight, strconv.FormatUint(height, 10)),
		sdk.NewAttribute(AttributeKeyTotalPower, totalPower.String()),
		sdk.NewAttribute("total_power_refreshed", strconv.FormatBool(refreshed)),
	)
}
