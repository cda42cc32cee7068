package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultStartTime is the start time assigned to newly created days.
const DefaultStartTime = "09:00"

// Day is one day of the itinerary: an ordered sequence of places
// interpreted as visit order.
//
// Title is a positional label ("Day 1", "Day 2", ...) that is renumbered
// whenever the day collection's membership changes, not when days are
// reordered.
type Day struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartTime string    `json:"start_time"` // "HH:MM"
	Places    []Place   `json:"places"`
}

// DayTitle returns the positional label for the day at index i (0-based).
func DayTitle(i int) string {
	return fmt.Sprintf("Day %d", i+1)
}

// Clone returns a deep copy of the day and its place sequence.
func (d Day) Clone() Day {
	out := d
	out.Places = make([]Place, len(d.Places))
	for i, p := range d.Places {
		out.Places[i] = p.Clone()
	}
	return out
}

// TimeSlot is the derived visit window for one stop of a day.
// Times are wall-clock "HH:MM" strings; arithmetic wraps past midnight.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
