package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the funddistributor module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrZeroAmount          = sdkerrors.Register(ModuleName, BaseErrorCode+1, "cannot fund with zero amount")
	ErrZeroVotingPower     = sdkerrors.Register(ModuleName, BaseErrorCode+2, "total voting power is zero")
	ErrUnknownAsset        = sdkerrors.Register(ModuleName, BaseErrorCode+3, "asset was never funded")
	ErrArithmeticOverflow  = sdkerrors.Register(ModuleName, BaseErrorCode+4, "arithmetic overflow")
	ErrArithmeticUnderflow = sdkerrors.Register(ModuleName, BaseErrorCode+5, "arithmetic underflow")
	ErrOracleQueryFailed   = sdkerrors.Register(ModuleName, BaseErrorCode+6, "voting power query failed")
	ErrNotInitialized      = sdkerrors.Register(ModuleName, BaseErrorCode+7, "distribution is not initialized")
	ErrAlreadyInitialized  = sdkerrors.Register(ModuleName, BaseErrorCode+8, "distribution is already initialized")
	ErrStaleTotalPower     = sdkerrors.Register(ModuleName, BaseErrorCode+9, "total power was measured at a different height than the distribution snapshot")
	ErrInvalidRequest      = sdkerrors.Register(ModuleName, BaseErrorCode+10, "invalid request")
)

// OracleError carries an oracle failure verbatim while still matching ErrOracleQueryFailed.
type OracleError struct {
	Err error
}

// WrapOracleError returns nil for a nil err.
func WrapOracleError(err error) error {
	if err == nil {
		return nil
	}
	return &OracleError{Err: err}
}

func (e *OracleError) Error() string {
	return ErrOracleQueryFailed.Error() + ": " + e.Err.Error()
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

func (e *OracleError) Is(target error) bool {
	return target == ErrOracleQueryFailed
}

func (e *OracleError) ABCICode() uint32 {
	return ErrOracleQueryFailed.ABCICode()
}

func (e *OracleError) Codespace() string {
	return ErrOracleQueryFailed.Codespace()
}
