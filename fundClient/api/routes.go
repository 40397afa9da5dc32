package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// setupRoutes configures all HTTP routes for the API server
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// queries
	v1.HandleFunc("/voting-contract", s.handleVotingContract).Methods(http.MethodGet)
	v1.HandleFunc("/total-power", s.handleTotalPower).Methods(http.MethodGet)
	v1.HandleFunc("/balances/{kind}", s.handleBalances).Methods(http.MethodGet)
	v1.HandleFunc("/claims/{address}", s.handleClaims).Methods(http.MethodGet)
	v1.HandleFunc("/entitlements/{address}", s.handleEntitlements).Methods(http.MethodGet)
	v1.HandleFunc("/payouts", s.handlePayouts).Methods(http.MethodGet)

	// calls; instantiate and migrate stay on the CLI, they need the authority
	v1.HandleFunc("/fund/token", s.handleFundToken).Methods(http.MethodPost)
	v1.HandleFunc("/fund/native", s.handleFundNative).Methods(http.MethodPost)
	v1.HandleFunc("/claim/tokens", s.handleClaimTokens).Methods(http.MethodPost)
	v1.HandleFunc("/claim/natives", s.handleClaimNatives).Methods(http.MethodPost)
	v1.HandleFunc("/claim/all", s.handleClaimAll).Methods(http.MethodPost)

	return r
}
