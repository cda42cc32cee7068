package discovery

import (
	"context"

	"github.com/google/uuid"

	"github.com/travelgenie/backend/internal/domain"
)

// Static is an offline Searcher that serves a fixed candidate list.
// It keeps the app usable when no Gemini API key is configured.
type Static struct{}

// NewStatic constructs the offline searcher.
func NewStatic() *Static { return &Static{} }

var staticPlaces = []domain.Candidate{
	{
		Name:          "Taipei 101",
		Description:   "World-famous skyscraper with an observatory overlooking the city. (offline result)",
		Coordinates:   domain.Coordinates{Lat: 25.033964, Lng: 121.564468},
		EstimatedTime: "2 hours",
	},
	{
		Name:          "Chiang Kai-shek Memorial Hall",
		Description:   "National monument with a vast plaza and distinctive architecture. (offline result)",
		Coordinates:   domain.Coordinates{Lat: 25.0354, Lng: 121.5197},
		EstimatedTime: "1.5 hours",
	},
	{
		Name:          "Elephant Mountain Trail",
		Description:   "Popular hiking trail with skyline views of Taipei 101. (offline result)",
		Coordinates:   domain.Coordinates{Lat: 25.0273, Lng: 121.5707},
		EstimatedTime: "2 hours",
	},
	{
		Name:          "Raohe Street Night Market",
		Description:   "Famous night market packed with traditional street food. (offline result)",
		Coordinates:   domain.Coordinates{Lat: 25.0509, Lng: 121.5775},
		EstimatedTime: "2 hours",
	},
	{
		Name:          "Songshan Cultural and Creative Park",
		Description:   "Former tobacco factory turned arts and exhibition space. (offline result)",
		Coordinates:   domain.Coordinates{Lat: 25.0436, Lng: 121.5606},
		EstimatedTime: "3 hours",
	},
}

// Search returns the fixed list regardless of the query. Each call mints
// fresh provisional IDs so separate searches behave like separate result
// sets, matching the online searcher.
func (s *Static) Search(ctx context.Context, query, near string) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, len(staticPlaces))
	for i, c := range staticPlaces {
		c.ID = uuid.New()
		out[i] = c
	}
	return out, nil
}
