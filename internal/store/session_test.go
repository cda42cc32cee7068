package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/store"
)

func TestMemoryStore_SeedsStartingState(t *testing.T) {
	s := store.NewMemoryStore()

	snap, err := s.View(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Itinerary.Pool)
	require.Len(t, snap.Itinerary.Days, 1)
	assert.Equal(t, "Day 1", snap.Itinerary.Days[0].Title)
	assert.Equal(t, snap.Itinerary.Days[0].ID, snap.Itinerary.ActiveDayID)
	assert.Empty(t, snap.Ledger.Expenses)
}

func TestMemoryStore_UpdateInstallsResult(t *testing.T) {
	s := store.NewMemoryStore()

	got, err := s.Update(context.Background(), func(sess domain.Session) (domain.Session, error) {
		sess.Ledger.Participants = append(sess.Ledger.Participants, "Alice")
		return sess, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, got.Ledger.Participants)

	snap, err := s.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, snap.Ledger.Participants)
}

func TestMemoryStore_UpdateErrorLeavesSnapshotUnchanged(t *testing.T) {
	s := store.NewMemoryStore()
	boom := errors.New("boom")

	_, err := s.Update(context.Background(), func(sess domain.Session) (domain.Session, error) {
		sess.Ledger.Participants = append(sess.Ledger.Participants, "Alice")
		return sess, boom
	})

	assert.ErrorIs(t, err, boom)

	snap, err := s.View(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Ledger.Participants)
}

func TestMemoryStore_ViewReturnsCopy(t *testing.T) {
	s := store.NewMemoryStore()

	snap, err := s.View(context.Background())
	require.NoError(t, err)
	snap.Itinerary.Days[0].Title = "mutated"

	again, err := s.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Day 1", again.Itinerary.Days[0].Title)
}
