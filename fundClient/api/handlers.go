package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/pushchain/fund-distributor/x/funddistributor/types"
)

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleVotingContract handles GET /api/v1/voting-contract
func (s *Server) handleVotingContract(w http.ResponseWriter, r *http.Request) {
	res, err := s.node.VotingContract()
	s.respond(w, res, err)
}

// handleTotalPower handles GET /api/v1/total-power
func (s *Server) handleTotalPower(w http.ResponseWriter, r *http.Request) {
	res, err := s.node.TotalPower()
	s.respond(w, res, err)
}

// handleBalances handles GET /api/v1/balances/{kind}?limit=<n>&key=<base64 next key>
func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	kind := types.AssetKind(mux.Vars(r)["kind"])
	if kind != types.AssetKindToken && kind != types.AssetKindNative {
		s.writeError(w, http.StatusBadRequest, errors.New("kind must be token or native"))
		return
	}

	page := &query.PageRequest{}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errors.New("invalid limit"))
			return
		}
		page.Limit = n
	}
	if key := r.URL.Query().Get("key"); key != "" {
		raw, err := base64.URLEncoding.DecodeString(key)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errors.New("invalid key"))
			return
		}
		page.Key = raw
	}

	res, err := s.node.Balances(kind, &types.QueryBalancesRequest{Pagination: page})
	s.respond(w, res, err)
}

// handleClaims handles GET /api/v1/claims/{address}
func (s *Server) handleClaims(w http.ResponseWriter, r *http.Request) {
	res, err := s.node.Claims(mux.Vars(r)["address"])
	s.respond(w, res, err)
}

// handleEntitlements handles GET /api/v1/entitlements/{address}
func (s *Server) handleEntitlements(w http.ResponseWriter, r *http.Request) {
	res, err := s.node.Entitlements(mux.Vars(r)["address"])
	s.respond(w, res, err)
}

// handlePayouts handles GET /api/v1/payouts?recipient=<address>&limit=<n>
func (s *Server) handlePayouts(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, errors.New("invalid limit"))
			return
		}
		limit = n
	}

	res, err := s.node.Payouts(r.URL.Query().Get("recipient"), limit)
	s.respond(w, res, err)
}

func (s *Server) handleFundToken(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgReceiveToken
	if !s.decode(w, r, &msg) {
		return
	}
	res, err := s.node.FundToken(&msg)
	s.respond(w, res, err)
}

func (s *Server) handleFundNative(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgFundNative
	if !s.decode(w, r, &msg) {
		return
	}
	res, err := s.node.FundNative(&msg)
	s.respond(w, res, err)
}

func (s *Server) handleClaimTokens(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgClaimTokens
	if !s.decode(w, r, &msg) {
		return
	}
	res, err := s.node.ClaimTokens(&msg)
	s.respond(w, res, err)
}

func (s *Server) handleClaimNatives(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgClaimNatives
	if !s.decode(w, r, &msg) {
		return
	}
	res, err := s.node.ClaimNatives(&msg)
	s.respond(w, res, err)
}

func (s *Server) handleClaimAll(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgClaimAll
	if !s.decode(w, r, &msg) {
		return
	}
	res, err := s.node.ClaimAll(&msg)
	s.respond(w, res, err)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, msg any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, data any, err error) {
	if err != nil {
		s.writeError(w, httpStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(QueryResponse{Height: s.node.LastHeight(), Data: data})
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	if _, abciCode, _ := errorsmod.ABCIInfo(err, false); abciCode != 1 {
		resp.Code = abciCode
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// httpStatus maps query status codes and module errors onto HTTP statuses.
func httpStatus(err error) int {
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.InvalidArgument:
			return http.StatusBadRequest
		case codes.NotFound:
			return http.StatusNotFound
		case codes.FailedPrecondition:
			return http.StatusConflict
		case codes.Unavailable:
			return http.StatusBadGateway
		case codes.Internal:
			return http.StatusInternalServerError
		}
	}

	switch {
	case errors.Is(err, types.ErrOracleQueryFailed):
		return http.StatusBadGateway
	case errors.Is(err, types.ErrArithmeticOverflow), errors.Is(err, types.ErrArithmeticUnderflow):
		return http.StatusInternalServerError
	case errors.Is(err, types.ErrNotInitialized), errors.Is(err, types.ErrStaleTotalPower):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
