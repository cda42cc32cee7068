// Package discovery implements the AI place-discovery collaborator: given
// a free-text query (and optionally a nearby place for context) it returns
// candidate places. The engine never awaits discovery from within its own
// logic — handlers call Search and feed the finished list back in.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/travelgenie/backend/internal/domain"
)

// model is pinned so prompt/schema behavior stays reproducible.
const model = "gemini-2.5-flash"

// responseSchema constrains the model to a JSON object wrapping the place
// list. Wrapping the array in an object keeps the schema stable.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"places": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"lat":         {Type: genai.TypeNumber},
					"lng":         {Type: genai.TypeNumber},
					"estimated_time": {
						Type:        genai.TypeString,
						Description: "Suggested duration of visit, e.g. \"2 hours\"",
					},
				},
				Required: []string{"name", "description", "lat", "lng"},
			},
		},
	},
	Required: []string{"places"},
}

// Gemini is the production Searcher backed by the Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini constructs a Gemini searcher with the given API key.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("discovery.NewGemini: %w", err)
	}
	return &Gemini{client: client}, nil
}

// Search asks the model for five attractions matching the query. When near
// is non-empty the prompt anchors the suggestions around that place.
func (g *Gemini) Search(ctx context.Context, query, near string) ([]domain.Candidate, error) {
	prompt := fmt.Sprintf("List 5 popular tourist attractions related to %q. Provide real latitude (lat) and longitude (lng) values.", query)
	if near != "" {
		prompt = fmt.Sprintf("List 5 popular tourist attractions near %q, or places related to %q. Provide real latitude (lat) and longitude (lng) values.", near, query)
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("discovery.Gemini.Search: %w", err)
	}

	candidates, err := parseCandidates([]byte(resp.Text()))
	if err != nil {
		return nil, fmt.Errorf("discovery.Gemini.Search: %w", err)
	}
	return candidates, nil
}

// parseCandidates decodes the model's JSON payload and assigns each result
// a provisional identity.
func parseCandidates(raw []byte) ([]domain.Candidate, error) {
	var payload struct {
		Places []struct {
			Name          string  `json:"name"`
			Description   string  `json:"description"`
			Lat           float64 `json:"lat"`
			Lng           float64 `json:"lng"`
			EstimatedTime string  `json:"estimated_time"`
		} `json:"places"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(payload.Places))
	for _, p := range payload.Places {
		if p.Name == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			ID:            uuid.New(),
			Name:          p.Name,
			Description:   p.Description,
			Coordinates:   domain.Coordinates{Lat: p.Lat, Lng: p.Lng},
			EstimatedTime: p.EstimatedTime,
		})
	}
	return candidates, nil
}
