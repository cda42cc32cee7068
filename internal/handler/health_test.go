package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelgenie/backend/internal/handler"
)

// newTestRouter wires a Server with the given dependencies into a chi
// router, mirroring exactly how main.go wires it in production.
func newTestRouter(it handler.ItineraryServicer, lg handler.LedgerServicer, sr handler.Searcher) http.Handler {
	r := chi.NewRouter()
	handler.NewServer(it, lg, sr).Register(r)
	return r
}

func TestHealth_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	newTestRouter(nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}
