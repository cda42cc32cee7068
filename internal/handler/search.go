package handler

import (
	"net/http"
)

// Search handles GET /search?q=...&near=... against the place discovery
// collaborator. The returned candidates carry provisional identities only;
// the engine mints real ones when a candidate is added to the itinerary.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		requestError(w, "query parameter q is required")
		return
	}
	near := r.URL.Query().Get("near")

	candidates, err := s.search.Search(r.Context(), query, near)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"places": candidates})
}
