package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/travelgenie/backend/internal/domain"
)

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError maps a service error onto the HTTP error taxonomy:
//
//	not found            → 404 not_found
//	validation, range    → 422 validation_error / out_of_range
//	blocked deletion     → 409 payer_of_record
//	confirmable deletion → 409 confirmation_required
//	last day             → 409 last_day
//
// Anything unrecognized is a 500; the detail stays in the server log.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not_found", err))
	case errors.Is(err, domain.ErrOutOfRange):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("out_of_range", err))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", err))
	case errors.Is(err, domain.ErrPayerOfRecord):
		writeJSON(w, http.StatusConflict, errorBody("payer_of_record", err))
	case errors.Is(err, domain.ErrConfirmationRequired):
		writeJSON(w, http.StatusConflict, errorBody("confirmation_required", err))
	case errors.Is(err, domain.ErrLastDay):
		writeJSON(w, http.StatusConflict, errorBody("last_day", err))
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal error"},
		})
	}
}

// requestError returns a 422 for a bad request rejected before reaching
// the service layer (e.g. missing or malformed body).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

func errorBody(code string, err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: unwrapMessage(err)}}
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.LedgerService.AddExpense: validation error: amount
// must be positive" → "amount must be positive".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
