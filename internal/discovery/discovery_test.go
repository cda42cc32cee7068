package discovery

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	raw := []byte(`{"places":[
		{"name":"Taipei 101","description":"skyscraper","lat":25.033964,"lng":121.564468,"estimated_time":"2 hours"},
		{"name":"","description":"nameless entries are dropped","lat":0,"lng":0},
		{"name":"Elephant Mountain","description":"trail","lat":25.0273,"lng":121.5707}
	]}`)

	candidates, err := parseCandidates(raw)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Taipei 101", candidates[0].Name)
	assert.Equal(t, "2 hours", candidates[0].EstimatedTime)
	assert.InDelta(t, 25.033964, candidates[0].Coordinates.Lat, 1e-9)
	assert.NotEqual(t, uuid.Nil, candidates[0].ID)
	assert.NotEqual(t, candidates[0].ID, candidates[1].ID)
}

func TestParseCandidates_BadJSON(t *testing.T) {
	_, err := parseCandidates([]byte("not json"))
	assert.Error(t, err)
}

func TestStatic_FreshProvisionalIDsPerCall(t *testing.T) {
	s := NewStatic()

	first, err := s.Search(context.Background(), "anything", "")
	require.NoError(t, err)
	second, err := s.Search(context.Background(), "anything", "")
	require.NoError(t, err)

	require.Len(t, first, 5)
	require.Len(t, second, 5)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}
