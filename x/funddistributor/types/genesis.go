package types

import (
	"fmt"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DistributionConfig is the singleton configuration of a distribution.
type DistributionConfig struct {
	DistributionHeight uint64      `json:"distribution_height" yaml:"distribution_height"`
	VotingContract     string      `json:"voting_contract" yaml:"voting_contract"`
	TotalPower         sdkmath.Int `json:"total_power" yaml:"total_power"`
	TotalPowerHeight   uint64      `json:"total_power_height" yaml:"total_power_height"`
}

// TotalPowerStale reports whether TotalPower was measured at a height other than the snapshot.
func (c DistributionConfig) TotalPowerStale() bool {
	return c.TotalPowerHeight != c.DistributionHeight
}

func (c DistributionConfig) Validate() error {
	if c.VotingContract == "" {
		return errors.Wrap(ErrInvalidRequest, "voting contract is required")
	}
	if err := ValidateAmount(c.TotalPower); err != nil {
		return errors.Wrap(err, "total power")
	}
	if c.TotalPower.IsZero() {
		return ErrZeroVotingPower
	}
	return nil
}

// AssetAmount is a balance entry of either ledger.
type AssetAmount struct {
	Asset  string      `json:"asset" yaml:"asset"`
	Amount sdkmath.Int `json:"amount" yaml:"amount"`
}

// ClaimEntry is a cumulative claim of Claimant on Asset.
type ClaimEntry struct {
	Claimant string      `json:"claimant" yaml:"claimant"`
	Asset    string      `json:"asset" yaml:"asset"`
	Amount   sdkmath.Int `json:"amount" yaml:"amount"`
}

// GenesisState is the exported module state. A nil Config means not yet instantiated.
type GenesisState struct {
	Config         *DistributionConfig `json:"config,omitempty"`
	TokenBalances  []AssetAmount       `json:"token_balances"`
	NativeBalances []AssetAmount       `json:"native_balances"`
	TokenClaims    []ClaimEntry        `json:"token_claims"`
	NativeClaims   []ClaimEntry        `json:"native_claims"`
}

// DefaultGenesis returns an uninstantiated distribution.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		TokenBalances:  []AssetAmount{},
		NativeBalances: []AssetAmount{},
		TokenClaims:    []ClaimEntry{},
		NativeClaims:   []ClaimEntry{},
	}
}

// Validate checks the genesis entries and that no asset has more claimed than funded.
func (gs GenesisState) Validate() error {
	if gs.Config == nil {
		if len(gs.TokenBalances)+len(gs.NativeBalances)+len(gs.TokenClaims)+len(gs.NativeClaims) > 0 {
			return errors.Wrap(ErrNotInitialized, "balances or claims present without a config")
		}
		return nil
	}
	if err := gs.Config.Validate(); err != nil {
		return err
	}

	if err := validateLedger(AssetKindToken, gs.TokenBalances, gs.TokenClaims); err != nil {
		return err
	}
	return validateLedger(AssetKindNative, gs.NativeBalances, gs.NativeClaims)
}

func validateLedger(kind AssetKind, balances []AssetAmount, claims []ClaimEntry) error {
	funded := make(map[string]sdkmath.Int, len(balances))
	for _, b := range balances {
		if b.Asset == "" {
			return errors.Wrapf(ErrInvalidRequest, "%s balance with empty asset", kind)
		}
		if _, ok := funded[b.Asset]; ok {
			return errors.Wrapf(ErrInvalidRequest, "duplicate %s balance %s", kind, b.Asset)
		}
		if err := ValidateAmount(b.Amount); err != nil {
			return errors.Wrapf(err, "%s balance %s", kind, b.Asset)
		}
		funded[b.Asset] = b.Amount
	}

	claimed := make(map[string]sdkmath.Int)
	seen := make(map[string]struct{}, len(claims))
	for _, c := range claims {
		if _, err := sdk.AccAddressFromBech32(c.Claimant); err != nil {
			return errors.Wrapf(ErrInvalidRequest, "invalid claimant %q", c.Claimant)
		}
		key := fmt.Sprintf("%s/%s", c.Claimant, c.Asset)
		if _, ok := seen[key]; ok {
			return errors.Wrapf(ErrInvalidRequest, "duplicate %s claim %s", kind, key)
		}
		seen[key] = struct{}{}

		balance, ok := funded[c.Asset]
		if !ok {
			return errors.Wrapf(ErrUnknownAsset, "%s claim on %s", kind, c.Asset)
		}
		if err := ValidateAmount(c.Amount); err != nil {
			return errors.Wrapf(err, "%s claim %s", kind, key)
		}

		total, ok := claimed[c.Asset]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		total, err := CheckedAdd(total, c.Amount)
		if err != nil {
			return err
		}
		if total.GT(balance) {
			return errors.Wrapf(ErrArithmeticUnderflow, "%s claims on %s (%s) exceed balance %s", kind, c.Asset, total, balance)
		}
		claimed[c.Asset] = total
	}

	return nil
}
