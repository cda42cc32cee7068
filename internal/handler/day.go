package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/service"
)

func parseUUIDString(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// dayID extracts and parses the {dayID} URL parameter.
func dayID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "dayID"))
	return id, err == nil
}

// AddDay handles POST /days.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	it, err := s.itinerary.AddDay(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// RemoveDay handles DELETE /days/{dayID}.
func (s *Server) RemoveDay(w http.ResponseWriter, r *http.Request) {
	id, ok := dayID(r)
	if !ok {
		requestError(w, "day id must be a UUID")
		return
	}
	it, err := s.itinerary.RemoveDay(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// UpdateDay handles PATCH /days/{dayID}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	id, ok := dayID(r)
	if !ok {
		requestError(w, "day id must be a UUID")
		return
	}
	var body struct {
		Title     *string `json:"title"`
		StartTime *string `json:"start_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	it, err := s.itinerary.UpdateDay(r.Context(), id, service.DayPatch{Title: body.Title, StartTime: body.StartTime})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// ActivateDay handles POST /days/{dayID}/activate.
func (s *Server) ActivateDay(w http.ResponseWriter, r *http.Request) {
	id, ok := dayID(r)
	if !ok {
		requestError(w, "day id must be a UUID")
		return
	}
	it, err := s.itinerary.SetActiveDay(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// UpdatePlace handles PATCH /days/{dayID}/places/{index}.
func (s *Server) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, ok := dayID(r)
	if !ok {
		requestError(w, "day id must be a UUID")
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		requestError(w, "index must be an integer")
		return
	}
	var body struct {
		Name                *string               `json:"name"`
		Description         *string               `json:"description"`
		StayMinutes         *int                  `json:"stay_minutes"`
		TransportToNext     *domain.TransportMode `json:"transport_to_next"`
		TravelMinutesToNext *int                  `json:"travel_minutes_to_next"`
		TransportNotes      *string               `json:"transport_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	it, err := s.itinerary.UpdatePlace(r.Context(), id, index, service.PlacePatch{
		Name:                body.Name,
		Description:         body.Description,
		StayMinutes:         body.StayMinutes,
		TransportToNext:     body.TransportToNext,
		TravelMinutesToNext: body.TravelMinutesToNext,
		TransportNotes:      body.TransportNotes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// GetTimeline handles GET /days/{dayID}/timeline.
func (s *Server) GetTimeline(w http.ResponseWriter, r *http.Request) {
	id, ok := dayID(r)
	if !ok {
		requestError(w, "day id must be a UUID")
		return
	}
	slots, err := s.itinerary.Timeline(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"timeline": slots})
}

// GetRoute handles GET /days/{dayID}/route: the ordered marker/path data
// consumed by the map visualization.
func (s *Server) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := dayID(r)
	if !ok {
		requestError(w, "day id must be a UUID")
		return
	}
	points, err := s.itinerary.Route(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"route": points})
}
