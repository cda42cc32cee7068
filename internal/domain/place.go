// Package domain contains the core data types for the TravelGenie backend.
// This package has no dependencies on other internal packages and is
// imported by every other internal package (store, service, handler).
package domain

import "github.com/google/uuid"

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TransportMode is how the traveller gets from one place to the next.
type TransportMode string

const (
	TransportCar     TransportMode = "CAR"
	TransportWalk    TransportMode = "WALK"
	TransportTransit TransportMode = "TRANSIT"
)

// Valid reports whether m is one of the known transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportCar, TransportWalk, TransportTransit:
		return true
	}
	return false
}

// Scheduling defaults applied when a place first enters a day sequence.
const (
	DefaultStayMinutes   = 60
	DefaultTravelMinutes = 15
	DefaultTransportMode = TransportCar
)

// Candidate is a place suggestion from the discovery collaborator.
// Its ID is provisional — it identifies the search result so that offering
// the same result twice is detected, but a fresh identity is minted the
// moment the candidate actually enters the itinerary.
type Candidate struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Coordinates   Coordinates `json:"coordinates"`
	EstimatedTime string      `json:"estimated_time,omitempty"`
}

// Place is a single place entry in the itinerary.
// A place lives in exactly one location at a time: the unscheduled pool or
// one day's sequence.
//
// StayMinutes, TransportToNext and TravelMinutesToNext are nil until the
// place enters a day sequence, at which point unset fields are populated
// with the scheduling defaults. They are ignored for pool entries and for
// the last entry of a day.
type Place struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Coordinates   Coordinates `json:"coordinates"`
	EstimatedTime string      `json:"estimated_time,omitempty"` // advisory text from discovery

	StayMinutes         *int          `json:"stay_minutes,omitempty"`
	TransportToNext     TransportMode `json:"transport_to_next,omitempty"`
	TravelMinutesToNext *int          `json:"travel_minutes_to_next,omitempty"`
	TransportNotes      string        `json:"transport_notes,omitempty"`
}

// Stay returns the stay duration in minutes, falling back to the default
// when the field is unset.
func (p Place) Stay() int {
	if p.StayMinutes != nil {
		return *p.StayMinutes
	}
	return DefaultStayMinutes
}

// Travel returns the travel time to the next stop in minutes. An unset
// field counts as zero for timeline purposes.
func (p Place) Travel() int {
	if p.TravelMinutesToNext != nil {
		return *p.TravelMinutesToNext
	}
	return 0
}

// Clone returns a deep copy of the place. Pointer fields are duplicated so
// snapshots never share mutable memory.
func (p Place) Clone() Place {
	out := p
	if p.StayMinutes != nil {
		v := *p.StayMinutes
		out.StayMinutes = &v
	}
	if p.TravelMinutesToNext != nil {
		v := *p.TravelMinutesToNext
		out.TravelMinutesToNext = &v
	}
	return out
}

// NewPlace mints a Place from a candidate with a fresh identity.
// Scheduling fields are left unset; they are populated only when the place
// enters a day sequence.
func NewPlace(c Candidate) Place {
	return Place{
		ID:            uuid.New(),
		Name:          c.Name,
		Description:   c.Description,
		Coordinates:   c.Coordinates,
		EstimatedTime: c.EstimatedTime,
	}
}

// RoutePoint is the map collaborator's view of one stop: just enough to
// render a marker and a connecting path in sequence order.
type RoutePoint struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}
