package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/travelgenie/backend/internal/service"
)

// ListParticipants handles GET /participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	l, err := s.ledger.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"participants": l.Participants})
}

// AddParticipant handles POST /participants.
func (s *Server) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	l, err := s.ledger.AddParticipant(r.Context(), body.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// RemoveParticipant handles DELETE /participants/{name}.
// The ?confirm=true query parameter acknowledges that the name will be
// stripped from the involved set of existing expenses.
func (s *Server) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	confirmed := r.URL.Query().Get("confirm") == "true"

	l, err := s.ledger.RemoveParticipant(r.Context(), name, confirmed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// ListExpenses handles GET /expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	l, err := s.ledger.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// AddExpense handles POST /expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Payer       string          `json:"payer"`
		Involved    []string        `json:"involved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	l, err := s.ledger.AddExpense(r.Context(), service.ExpenseInput{
		Description: body.Description,
		Amount:      body.Amount,
		Payer:       body.Payer,
		Involved:    body.Involved,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// RemoveExpense handles DELETE /expenses/{id}.
func (s *Server) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		requestError(w, "expense id must be a UUID")
		return
	}
	l, err := s.ledger.RemoveExpense(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// GetSettlements handles GET /settlements. Balances and the transfer plan
// are derived views, recomputed from the current snapshot on every call.
func (s *Server) GetSettlements(w http.ResponseWriter, r *http.Request) {
	balances, plan, err := s.ledger.Settlements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"balances":    balances,
		"settlements": plan,
	})
}
