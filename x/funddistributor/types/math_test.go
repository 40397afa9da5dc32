package types

import (
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func maxAmount() sdkmath.Int {
	v := new(big.Int).Lsh(big.NewInt(1), MaxAmountBits)
	return sdkmath.NewIntFromBigInt(v.Sub(v, big.NewInt(1)))
}

func TestCheckedAdd(t *testing.T) {
	sum, err := CheckedAdd(sdkmath.NewInt(40), sdkmath.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(42).String(), sum.String())

	sum, err = CheckedAdd(maxAmount(), sdkmath.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, maxAmount().String(), sum.String())

	_, err = CheckedAdd(maxAmount(), sdkmath.OneInt())
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestCheckedSub(t *testing.T) {
	diff, err := CheckedSub(sdkmath.NewInt(1000), sdkmath.NewInt(300))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(700).String(), diff.String())

	diff, err = CheckedSub(sdkmath.NewInt(5), sdkmath.NewInt(5))
	require.NoError(t, err)
	require.True(t, diff.IsZero())

	_, err = CheckedSub(sdkmath.NewInt(5), sdkmath.NewInt(6))
	require.ErrorIs(t, err, ErrArithmeticUnderflow)
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount sdkmath.Int
		err    error
	}{
		{name: "zero", amount: sdkmath.ZeroInt()},
		{name: "max", amount: maxAmount()},
		{name: "nil", amount: sdkmath.Int{}, err: ErrInvalidRequest},
		{name: "negative", amount: sdkmath.NewInt(-1), err: ErrArithmeticUnderflow},
		{name: "too wide", amount: maxAmount().AddRaw(1), err: ErrArithmeticOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(tc.amount)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}
