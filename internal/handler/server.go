// Package handler implements the HTTP handlers for the TravelGenie API.
// All handlers are methods on Server. Methods are split into feature files
// (itinerary.go, day.go, expense.go, search.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/service"
)

// ItineraryServicer defines the itinerary operations the handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type ItineraryServicer interface {
	Snapshot(ctx context.Context) (domain.Itinerary, error)
	AddToPool(ctx context.Context, c domain.Candidate) (domain.Itinerary, error)
	InsertCandidate(ctx context.Context, c domain.Candidate, dest domain.Position) (domain.Itinerary, error)
	Move(ctx context.Context, intent domain.MoveIntent) (domain.Itinerary, error)
	RemoveAt(ctx context.Context, loc domain.Location, index int) (domain.Itinerary, error)
	AddDay(ctx context.Context) (domain.Itinerary, error)
	RemoveDay(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	SetActiveDay(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	UpdateDay(ctx context.Context, id uuid.UUID, patch service.DayPatch) (domain.Itinerary, error)
	UpdatePlace(ctx context.Context, dayID uuid.UUID, index int, patch service.PlacePatch) (domain.Itinerary, error)
	Timeline(ctx context.Context, dayID uuid.UUID) ([]domain.TimeSlot, error)
	Route(ctx context.Context, dayID uuid.UUID) ([]domain.RoutePoint, error)
}

// LedgerServicer defines the expense ledger operations the handlers
// depend on.
type LedgerServicer interface {
	Snapshot(ctx context.Context) (domain.Ledger, error)
	AddParticipant(ctx context.Context, name string) (domain.Ledger, error)
	RemoveParticipant(ctx context.Context, name string, confirmed bool) (domain.Ledger, error)
	AddExpense(ctx context.Context, in service.ExpenseInput) (domain.Ledger, error)
	RemoveExpense(ctx context.Context, id uuid.UUID) (domain.Ledger, error)
	Settlements(ctx context.Context) ([]domain.Balance, []domain.Settlement, error)
}

// Searcher defines the place discovery collaborator the search handler
// depends on.
type Searcher interface {
	Search(ctx context.Context, query, near string) ([]domain.Candidate, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	itinerary ItineraryServicer
	ledger    LedgerServicer
	search    Searcher
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itinerary ItineraryServicer, ledger LedgerServicer, search Searcher) *Server {
	return &Server{itinerary: itinerary, ledger: ledger, search: search}
}

// Register mounts every API route on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.Health)

	r.Get("/itinerary", s.GetItinerary)
	r.Post("/pool/places", s.AddToPool)
	r.Post("/places", s.InsertCandidate)
	r.Post("/moves", s.Move)
	r.Delete("/lists/{location}/places/{index}", s.RemovePlace)

	r.Post("/days", s.AddDay)
	r.Delete("/days/{dayID}", s.RemoveDay)
	r.Patch("/days/{dayID}", s.UpdateDay)
	r.Post("/days/{dayID}/activate", s.ActivateDay)
	r.Patch("/days/{dayID}/places/{index}", s.UpdatePlace)
	r.Get("/days/{dayID}/timeline", s.GetTimeline)
	r.Get("/days/{dayID}/route", s.GetRoute)

	r.Get("/participants", s.ListParticipants)
	r.Post("/participants", s.AddParticipant)
	r.Delete("/participants/{name}", s.RemoveParticipant)

	r.Get("/expenses", s.ListExpenses)
	r.Post("/expenses", s.AddExpense)
	r.Delete("/expenses/{id}", s.RemoveExpense)
	r.Get("/settlements", s.GetSettlements)

	r.Get("/search", s.Search)
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
