// Package service contains the business logic for the TravelGenie backend.
// Every mutation is expressed as a pure (snapshot, intent) → snapshot
// transition applied atomically through the session store; derived views
// (timeline, route, balances, settlements) are recomputed on every read
// and never stored.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/store"
)

// ItineraryService implements the place registry, the itinerary store and
// the derived day views (timeline, map route).
type ItineraryService struct {
	store store.SessionStore
}

// NewItineraryService constructs an ItineraryService backed by the
// provided session store.
func NewItineraryService(s store.SessionStore) *ItineraryService {
	return &ItineraryService{store: s}
}

// Snapshot returns the current itinerary state.
func (s *ItineraryService) Snapshot(ctx context.Context) (domain.Itinerary, error) {
	sess, err := s.store.View(ctx)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Snapshot: %w", err)
	}
	return sess.Itinerary, nil
}

// AddToPool appends a new place cloned from the candidate to the
// unscheduled pool. Offering a candidate whose provisional ID is already
// present anywhere in the itinerary is a silent no-op, so repeated adds of
// the same search result never create visual duplicates.
func (s *ItineraryService) AddToPool(ctx context.Context, c domain.Candidate) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		it := sess.Itinerary
		if c.ID != uuid.Nil && it.Contains(c.ID) {
			return sess, nil
		}
		it.Pool = append(it.Pool, domain.NewPlace(c))
		sess.Itinerary = it
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.AddToPool: %w", err)
	}
	return sess.Itinerary, nil
}

// InsertCandidate mints a new place from the candidate and inserts it
// directly at the destination. When the destination is a day, scheduling
// defaults are applied immediately; the destination index is clamped to
// the valid insertion range.
func (s *ItineraryService) InsertCandidate(ctx context.Context, c domain.Candidate, dest domain.Position) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		list, err := listRef(&sess.Itinerary, dest.Location)
		if err != nil {
			return domain.Session{}, err
		}
		place := domain.NewPlace(c)
		if !dest.Location.IsPool() {
			place = promote(place)
		}
		*list = insertAt(*list, clampIndex(dest.Index, len(*list)), place)
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.InsertCandidate: %w", err)
	}
	return sess.Itinerary, nil
}

// Move applies a move intent from the gesture layer. An absent destination
// (aborted gesture) and a same-position move are silent no-ops. The source
// index must be valid; the destination index is clamped to 0..len. A place
// entering a day sequence has unset scheduling fields populated with the
// defaults at that moment, never retroactively.
func (s *ItineraryService) Move(ctx context.Context, intent domain.MoveIntent) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		next, err := applyMove(sess.Itinerary, intent)
		if err != nil {
			return domain.Session{}, err
		}
		sess.Itinerary = next
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Move: %w", err)
	}
	return sess.Itinerary, nil
}

// RemoveAt removes and discards the place at the given position.
func (s *ItineraryService) RemoveAt(ctx context.Context, loc domain.Location, index int) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		list, err := listRef(&sess.Itinerary, loc)
		if err != nil {
			return domain.Session{}, err
		}
		if index < 0 || index >= len(*list) {
			return domain.Session{}, fmt.Errorf("%w: index %d in %s", domain.ErrOutOfRange, index, loc)
		}
		*list = append((*list)[:index], (*list)[index+1:]...)
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.RemoveAt: %w", err)
	}
	return sess.Itinerary, nil
}

// AddDay appends a new empty day with the default start time and makes it
// the active day.
func (s *ItineraryService) AddDay(ctx context.Context) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		it := sess.Itinerary
		day := domain.Day{
			ID:        uuid.New(),
			Title:     domain.DayTitle(len(it.Days)),
			StartTime: domain.DefaultStartTime,
			Places:    []domain.Place{},
		}
		it.Days = append(it.Days, day)
		it.ActiveDayID = day.ID
		sess.Itinerary = it
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.AddDay: %w", err)
	}
	return sess.Itinerary, nil
}

// RemoveDay removes the day with the given ID and renumbers the remaining
// day titles by position. Its places are discarded, not migrated — callers
// that want to keep them must move them out first. Removing the only
// remaining day is rejected with domain.ErrLastDay.
func (s *ItineraryService) RemoveDay(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		it := sess.Itinerary
		idx := dayIndex(it, id)
		if idx < 0 {
			return domain.Session{}, fmt.Errorf("%w: day %s", domain.ErrNotFound, id)
		}
		if len(it.Days) == 1 {
			return domain.Session{}, domain.ErrLastDay
		}
		it.Days = append(it.Days[:idx], it.Days[idx+1:]...)
		for i := range it.Days {
			it.Days[i].Title = domain.DayTitle(i)
		}
		if it.ActiveDayID == id {
			it.ActiveDayID = it.Days[0].ID
		}
		sess.Itinerary = it
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.RemoveDay: %w", err)
	}
	return sess.Itinerary, nil
}

// SetActiveDay marks the day with the given ID as active.
func (s *ItineraryService) SetActiveDay(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		if dayIndex(sess.Itinerary, id) < 0 {
			return domain.Session{}, fmt.Errorf("%w: day %s", domain.ErrNotFound, id)
		}
		sess.Itinerary.ActiveDayID = id
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.SetActiveDay: %w", err)
	}
	return sess.Itinerary, nil
}

// DayPatch is a partial update for a day. Nil fields are left unchanged.
type DayPatch struct {
	Title     *string
	StartTime *string // "HH:MM"
}

// UpdateDay merge-updates the day with the given ID.
func (s *ItineraryService) UpdateDay(ctx context.Context, id uuid.UUID, patch DayPatch) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		it := sess.Itinerary
		idx := dayIndex(it, id)
		if idx < 0 {
			return domain.Session{}, fmt.Errorf("%w: day %s", domain.ErrNotFound, id)
		}
		if patch.Title != nil {
			it.Days[idx].Title = *patch.Title
		}
		if patch.StartTime != nil {
			if _, err := parseClock(*patch.StartTime); err != nil {
				return domain.Session{}, fmt.Errorf("%w: start_time must be HH:MM", domain.ErrValidation)
			}
			it.Days[idx].StartTime = *patch.StartTime
		}
		sess.Itinerary = it
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.UpdateDay: %w", err)
	}
	return sess.Itinerary, nil
}

// PlacePatch is a partial update for a scheduled place. Nil fields are
// left unchanged. Stay and travel minutes are clamped to their valid
// domains (≥1 and ≥0) rather than rejected.
type PlacePatch struct {
	Name                *string
	Description         *string
	StayMinutes         *int
	TransportToNext     *domain.TransportMode
	TravelMinutesToNext *int
	TransportNotes      *string
}

// UpdatePlace merge-updates the place at the given index of a day.
func (s *ItineraryService) UpdatePlace(ctx context.Context, dayID uuid.UUID, index int, patch PlacePatch) (domain.Itinerary, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		it := sess.Itinerary
		idx := dayIndex(it, dayID)
		if idx < 0 {
			return domain.Session{}, fmt.Errorf("%w: day %s", domain.ErrNotFound, dayID)
		}
		places := it.Days[idx].Places
		if index < 0 || index >= len(places) {
			return domain.Session{}, fmt.Errorf("%w: index %d in %s", domain.ErrOutOfRange, index, dayID)
		}
		p := places[index]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.StayMinutes != nil {
			v := max(1, *patch.StayMinutes)
			p.StayMinutes = &v
		}
		if patch.TravelMinutesToNext != nil {
			v := max(0, *patch.TravelMinutesToNext)
			p.TravelMinutesToNext = &v
		}
		if patch.TransportToNext != nil {
			if !patch.TransportToNext.Valid() {
				return domain.Session{}, fmt.Errorf("%w: unknown transport mode %q", domain.ErrValidation, *patch.TransportToNext)
			}
			p.TransportToNext = *patch.TransportToNext
		}
		if patch.TransportNotes != nil {
			p.TransportNotes = *patch.TransportNotes
		}
		places[index] = p
		sess.Itinerary = it
		return sess, nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.UpdatePlace: %w", err)
	}
	return sess.Itinerary, nil
}

// Timeline returns the derived visit timeline for the day with the given ID.
func (s *ItineraryService) Timeline(ctx context.Context, dayID uuid.UUID) ([]domain.TimeSlot, error) {
	sess, err := s.store.View(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Timeline: %w", err)
	}
	day, ok := sess.Itinerary.Day(dayID)
	if !ok {
		return nil, fmt.Errorf("service.ItineraryService.Timeline: %w: day %s", domain.ErrNotFound, dayID)
	}
	return Timeline(day), nil
}

// Route returns the ordered marker/path data for the day with the given
// ID, as consumed by the map visualization collaborator.
func (s *ItineraryService) Route(ctx context.Context, dayID uuid.UUID) ([]domain.RoutePoint, error) {
	sess, err := s.store.View(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Route: %w", err)
	}
	day, ok := sess.Itinerary.Day(dayID)
	if !ok {
		return nil, fmt.Errorf("service.ItineraryService.Route: %w: day %s", domain.ErrNotFound, dayID)
	}
	points := make([]domain.RoutePoint, len(day.Places))
	for i, p := range day.Places {
		points[i] = domain.RoutePoint{Name: p.Name, Description: p.Description, Coordinates: p.Coordinates}
	}
	return points, nil
}

// --- pure transitions -------------------------------------------------------

// applyMove is the pure move transition. It operates on a private copy of
// the itinerary and returns the next state.
func applyMove(it domain.Itinerary, intent domain.MoveIntent) (domain.Itinerary, error) {
	if intent.Dest == nil {
		return it, nil
	}
	src, dst := intent.Source, *intent.Dest
	if src.Location == dst.Location && src.Index == dst.Index {
		return it, nil
	}

	srcList, err := listRef(&it, src.Location)
	if err != nil {
		return domain.Itinerary{}, err
	}
	dstList := srcList
	if src.Location != dst.Location {
		dstList, err = listRef(&it, dst.Location)
		if err != nil {
			return domain.Itinerary{}, err
		}
	}

	if src.Index < 0 || src.Index >= len(*srcList) {
		return domain.Itinerary{}, fmt.Errorf("%w: index %d in %s", domain.ErrOutOfRange, src.Index, src.Location)
	}
	item := (*srcList)[src.Index]
	*srcList = append((*srcList)[:src.Index], (*srcList)[src.Index+1:]...)

	// Defaults are filled in exactly once, at the moment the place enters
	// a scheduled context.
	if !dst.Location.IsPool() {
		item = promote(item)
	}

	*dstList = insertAt(*dstList, clampIndex(dst.Index, len(*dstList)), item)
	return it, nil
}

// promote fills unset scheduling fields with their defaults.
func promote(p domain.Place) domain.Place {
	if p.StayMinutes == nil {
		v := domain.DefaultStayMinutes
		p.StayMinutes = &v
	}
	if p.TravelMinutesToNext == nil {
		v := domain.DefaultTravelMinutes
		p.TravelMinutesToNext = &v
	}
	if p.TransportToNext == "" {
		p.TransportToNext = domain.DefaultTransportMode
	}
	return p
}

// listRef resolves a location to the place sequence it names.
// Returns domain.ErrNotFound when the location is a day that no longer exists.
func listRef(it *domain.Itinerary, loc domain.Location) (*[]domain.Place, error) {
	if loc.IsPool() {
		return &it.Pool, nil
	}
	id, _ := loc.DayID()
	if idx := dayIndex(*it, id); idx >= 0 {
		return &it.Days[idx].Places, nil
	}
	return nil, fmt.Errorf("%w: day %s", domain.ErrNotFound, id)
}

func dayIndex(it domain.Itinerary, id uuid.UUID) int {
	for i, d := range it.Days {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func insertAt(list []domain.Place, index int, p domain.Place) []domain.Place {
	list = append(list, domain.Place{})
	copy(list[index+1:], list[index:])
	list[index] = p
	return list
}

// clampIndex clamps an insertion index to the valid range 0..length.
func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index > length {
		return length
	}
	return index
}
