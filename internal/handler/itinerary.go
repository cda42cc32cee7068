package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/travelgenie/backend/internal/domain"
)

// candidateRequest is the wire form of a place candidate. The ID is the
// provisional identity assigned by the discovery collaborator; it may be
// omitted for hand-entered places.
type candidateRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	EstimatedTime string  `json:"estimated_time"`
}

func (c candidateRequest) toDomain() (domain.Candidate, error) {
	if c.Name == "" {
		return domain.Candidate{}, errors.New("name is required")
	}
	out := domain.Candidate{
		Name:          c.Name,
		Description:   c.Description,
		Coordinates:   domain.Coordinates{Lat: c.Lat, Lng: c.Lng},
		EstimatedTime: c.EstimatedTime,
	}
	if c.ID != "" {
		id, err := parseUUIDString(c.ID)
		if err != nil {
			return domain.Candidate{}, errors.New("id must be a UUID")
		}
		out.ID = id
	}
	return out, nil
}

// moveRequest is the wire form of a move intent from the gesture layer.
// An absent destination means the gesture was aborted.
type moveRequest struct {
	SourceLocation string  `json:"source_location"`
	SourceIndex    int     `json:"source_index"`
	DestLocation   *string `json:"dest_location"`
	DestIndex      *int    `json:"dest_index"`
}

// GetItinerary handles GET /itinerary.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := s.itinerary.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// AddToPool handles POST /pool/places.
func (s *Server) AddToPool(w http.ResponseWriter, r *http.Request) {
	var body candidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	c, err := body.toDomain()
	if err != nil {
		requestError(w, err.Error())
		return
	}
	it, err := s.itinerary.AddToPool(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// InsertCandidate handles POST /places: minting a place from a candidate
// directly at a destination, as when a search result is dragged straight
// into a day.
func (s *Server) InsertCandidate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Candidate candidateRequest `json:"candidate"`
		Location  string           `json:"location"`
		Index     int              `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	c, err := body.Candidate.toDomain()
	if err != nil {
		requestError(w, err.Error())
		return
	}
	loc, err := domain.ParseLocation(body.Location)
	if err != nil {
		writeError(w, err)
		return
	}
	it, err := s.itinerary.InsertCandidate(r.Context(), c, domain.Position{Location: loc, Index: body.Index})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Move handles POST /moves.
func (s *Server) Move(w http.ResponseWriter, r *http.Request) {
	var body moveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	src, err := domain.ParseLocation(body.SourceLocation)
	if err != nil {
		writeError(w, err)
		return
	}
	intent := domain.MoveIntent{Source: domain.Position{Location: src, Index: body.SourceIndex}}

	if body.DestLocation != nil {
		dst, err := domain.ParseLocation(*body.DestLocation)
		if err != nil {
			writeError(w, err)
			return
		}
		index := 0
		if body.DestIndex != nil {
			index = *body.DestIndex
		}
		intent.Dest = &domain.Position{Location: dst, Index: index}
	}

	it, err := s.itinerary.Move(r.Context(), intent)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// RemovePlace handles DELETE /lists/{location}/places/{index}.
func (s *Server) RemovePlace(w http.ResponseWriter, r *http.Request) {
	loc, err := domain.ParseLocation(chi.URLParam(r, "location"))
	if err != nil {
		writeError(w, err)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		requestError(w, "index must be an integer")
		return
	}
	it, err := s.itinerary.RemoveAt(r.Context(), loc, index)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}
