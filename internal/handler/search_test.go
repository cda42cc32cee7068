package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/handler"
)

// mockSearcher is a test double for handler.Searcher.
type mockSearcher struct {
	search func(ctx context.Context, query, near string) ([]domain.Candidate, error)
}

func (m *mockSearcher) Search(ctx context.Context, query, near string) ([]domain.Candidate, error) {
	return m.search(ctx, query, near)
}

var _ handler.Searcher = (*mockSearcher)(nil)

func TestSearch_200(t *testing.T) {
	var gotQuery, gotNear string
	sr := &mockSearcher{
		search: func(_ context.Context, query, near string) ([]domain.Candidate, error) {
			gotQuery, gotNear = query, near
			return []domain.Candidate{
				{ID: uuid.New(), Name: "Night Market", Coordinates: domain.Coordinates{Lat: 25.06, Lng: 121.52}},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=food&near=Taipei", nil)
	newTestRouter(nil, nil, sr).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "food", gotQuery)
	assert.Equal(t, "Taipei", gotNear)

	var resp struct {
		Places []domain.Candidate `json:"places"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "Night Market", resp.Places[0].Name)
}

func TestSearch_422_MissingQuery(t *testing.T) {
	sr := &mockSearcher{}

	rec := httptest.NewRecorder()
	newTestRouter(nil, nil, sr).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSearch_500_UpstreamError(t *testing.T) {
	sr := &mockSearcher{
		search: func(_ context.Context, _, _ string) ([]domain.Candidate, error) {
			return nil, errors.New("model unavailable")
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(nil, nil, sr).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=food", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "internal_error", resp.Error.Code)
}
