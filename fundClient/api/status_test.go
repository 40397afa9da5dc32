package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", status.Error(codes.InvalidArgument, "bad"), http.StatusBadRequest},
		{"not found", status.Error(codes.NotFound, "missing"), http.StatusNotFound},
		{"failed precondition", status.Error(codes.FailedPrecondition, "stale"), http.StatusConflict},
		{"unavailable", status.Error(codes.Unavailable, "down"), http.StatusBadGateway},
		{"internal", status.Error(codes.Internal, "boom"), http.StatusInternalServerError},
		{"oracle", types.WrapOracleError(errors.New("connection refused")), http.StatusBadGateway},
		{"overflow", errorsmod.Wrap(types.ErrArithmeticOverflow, "power above total"), http.StatusInternalServerError},
		{"underflow", types.ErrArithmeticUnderflow, http.StatusInternalServerError},
		{"stale", types.ErrStaleTotalPower, http.StatusConflict},
		{"other", types.ErrZeroAmount, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpStatus(tc.err))
		})
	}
}
