package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Location identifies where a place lives: the unscheduled pool or one
// day's sequence. It is a small tagged union so destination handling is
// matched exhaustively instead of string-compared at every call site.
type Location struct {
	day   bool
	dayID uuid.UUID
}

// PoolLocation returns the location of the unscheduled pool.
func PoolLocation() Location { return Location{} }

// DayLocation returns the location of the day with the given ID.
func DayLocation(id uuid.UUID) Location { return Location{day: true, dayID: id} }

// IsPool reports whether the location is the unscheduled pool.
func (l Location) IsPool() bool { return !l.day }

// DayID returns the day ID and true when the location is a day.
func (l Location) DayID() (uuid.UUID, bool) { return l.dayID, l.day }

// String renders the location in its wire form: "pool" or the day's UUID.
func (l Location) String() string {
	if l.day {
		return l.dayID.String()
	}
	return "pool"
}

// ParseLocation parses the wire form of a location: the literal "pool" or
// a day UUID. The day's existence is checked by the service, not here.
func ParseLocation(s string) (Location, error) {
	if s == "pool" {
		return PoolLocation(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return Location{}, fmt.Errorf("%w: location must be \"pool\" or a day id", ErrValidation)
	}
	return DayLocation(id), nil
}

// Position is one end of a move intent: a location plus an index into its
// sequence.
type Position struct {
	Location Location
	Index    int
}

// MoveIntent is the minimal value the gesture layer hands to the engine.
// A nil Dest means the gesture was aborted and the move is a no-op.
type MoveIntent struct {
	Source Position
	Dest   *Position
}

// Itinerary is the full planning state: the unscheduled pool plus the
// ordered day sequences. The multiset of place IDs across the pool and all
// days never contains duplicates.
type Itinerary struct {
	Pool        []Place   `json:"pool"`
	Days        []Day     `json:"days"`
	ActiveDayID uuid.UUID `json:"active_day_id"`
}

// NewItinerary returns the starting state: an empty pool and a single
// active "Day 1".
func NewItinerary() Itinerary {
	day := Day{
		ID:        uuid.New(),
		Title:     DayTitle(0),
		StartTime: DefaultStartTime,
		Places:    []Place{},
	}
	return Itinerary{
		Pool:        []Place{},
		Days:        []Day{day},
		ActiveDayID: day.ID,
	}
}

// Clone returns a deep copy of the itinerary.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Pool = make([]Place, len(it.Pool))
	for i, p := range it.Pool {
		out.Pool[i] = p.Clone()
	}
	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Day returns the day with the given ID, or false when it does not exist.
func (it Itinerary) Day(id uuid.UUID) (Day, bool) {
	for _, d := range it.Days {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}

// Contains reports whether a place with the given ID exists anywhere in
// the itinerary (pool or any day).
func (it Itinerary) Contains(id uuid.UUID) bool {
	for _, p := range it.Pool {
		if p.ID == id {
			return true
		}
	}
	for _, d := range it.Days {
		for _, p := range d.Places {
			if p.ID == id {
				return true
			}
		}
	}
	return false
}
