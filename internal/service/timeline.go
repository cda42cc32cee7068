package service

import (
	"fmt"

	"github.com/travelgenie/backend/internal/domain"
)

const minutesPerDay = 24 * 60

// Timeline derives the visit timeline for a day: one wall-clock
// start/end window per place, in sequence order.
//
// The clock walks forward from the day's start time: each place is visited
// for its stay duration, then the clock advances by the travel time to the
// next stop (unset travel counts as zero). Times wrap modulo 24 hours; an
// itinerary whose cumulative duration passes midnight wraps back toward
// the start of day rather than rolling into a next-day label. The last
// place's travel time affects nothing since there is no next stop.
func Timeline(day domain.Day) []domain.TimeSlot {
	t, err := parseClock(day.StartTime)
	if err != nil {
		// Start times are validated on write; fall back to the default
		// rather than failing a pure derivation.
		t, _ = parseClock(domain.DefaultStartTime)
	}

	slots := make([]domain.TimeSlot, len(day.Places))
	for i, p := range day.Places {
		start := t
		end := (start + p.Stay()) % minutesPerDay
		slots[i] = domain.TimeSlot{Start: formatClock(start), End: formatClock(end)}
		t = (end + p.Travel()) % minutesPerDay
	}
	return slots
}

// parseClock parses an "HH:MM" string into minutes since midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return h*60 + m, nil
}

// formatClock renders minutes since midnight as "HH:MM".
func formatClock(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
