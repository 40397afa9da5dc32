package types

import (
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// MaxAmountBits bounds every stored amount and power figure to an unsigned 128-bit integer.
const MaxAmountBits = 128

// CheckedAdd returns a+b, or ErrArithmeticOverflow if the sum does not fit in MaxAmountBits.
func CheckedAdd(a, b sdkmath.Int) (sdkmath.Int, error) {
	if err := checkBounds(a); err != nil {
		return sdkmath.Int{}, err
	}
	if err := checkBounds(b); err != nil {
		return sdkmath.Int{}, err
	}

	sum, err := a.SafeAdd(b)
	if err != nil || bitLen(sum) > MaxAmountBits {
		return sdkmath.Int{}, errors.Wrapf(ErrArithmeticOverflow, "%s + %s", a, b)
	}

	return sum, nil
}

// CheckedSub returns a-b, or ErrArithmeticUnderflow if b > a.
func CheckedSub(a, b sdkmath.Int) (sdkmath.Int, error) {
	if err := checkBounds(a); err != nil {
		return sdkmath.Int{}, err
	}
	if err := checkBounds(b); err != nil {
		return sdkmath.Int{}, err
	}
	if b.GT(a) {
		return sdkmath.Int{}, errors.Wrapf(ErrArithmeticUnderflow, "%s - %s", a, b)
	}

	diff, err := a.SafeSub(b)
	if err != nil {
		return sdkmath.Int{}, errors.Wrapf(ErrArithmeticUnderflow, "%s - %s: %v", a, b, err)
	}

	return diff, nil
}

// ValidateAmount rejects nil, negative and out of range values.
func ValidateAmount(amount sdkmath.Int) error {
	return checkBounds(amount)
}

func checkBounds(v sdkmath.Int) error {
	if v.IsNil() {
		return errors.Wrap(ErrInvalidRequest, "nil amount")
	}
	if v.IsNegative() {
		return errors.Wrapf(ErrArithmeticUnderflow, "negative amount %s", v)
	}
	if bitLen(v) > MaxAmountBits {
		return errors.Wrapf(ErrArithmeticOverflow, "amount %s exceeds %d bits", v, MaxAmountBits)
	}
	return nil
}

func bitLen(v sdkmath.Int) int {
	return v.BigInt().BitLen()
}
