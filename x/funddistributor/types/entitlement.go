package types

import (
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Share returns floor(balance * power / totalPower). Operands are bounded to
// MaxAmountBits, so the product always fits the 256 bits math.Int carries.
func Share(balance, power, totalPower sdkmath.Int) (sdkmath.Int, error) {
	for _, v := range []sdkmath.Int{balance, power, totalPower} {
		if err := checkBounds(v); err != nil {
			return sdkmath.Int{}, err
		}
	}
	if totalPower.IsZero() {
		return sdkmath.Int{}, ErrZeroVotingPower
	}

	product, err := balance.SafeMul(power)
	if err != nil {
		return sdkmath.Int{}, errors.Wrapf(ErrArithmeticOverflow, "%s * %s: %v", balance, power, err)
	}
	share, err := product.SafeQuo(totalPower)
	if err != nil {
		return sdkmath.Int{}, errors.Wrapf(ErrZeroVotingPower, "%v", err)
	}
	if bitLen(share) > MaxAmountBits {
		// only reachable when power > totalPower, i.e. the oracle is inconsistent
		return sdkmath.Int{}, errors.Wrapf(ErrArithmeticOverflow, "share of %s exceeds %d bits", balance, MaxAmountBits)
	}

	return share, nil
}

// Entitlement returns what a claimant is still owed of an asset:
// floor(balance * power / totalPower) - previousClaim.
//
// A previous claim larger than the share is reported as ErrArithmeticUnderflow and
// never clamped; it means the oracle returned a lower power than it did before, or
// the claim ledger is corrupt.
func Entitlement(balance, power, totalPower, previousClaim sdkmath.Int) (sdkmath.Int, error) {
	share, err := Share(balance, power, totalPower)
	if err != nil {
		return sdkmath.Int{}, err
	}

	owed, err := CheckedSub(share, previousClaim)
	if err != nil {
		return sdkmath.Int{}, errors.Wrapf(err, "previous claim %s exceeds share %s", previousClaim, share)
	}

	return owed, nil
}
