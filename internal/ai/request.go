package ai

import (
	"context"

	"github.com/bilgisen/newspulse/internal/models"
)

// Intent names what a request asks the search service for.
type Intent string

const (
	IntentCategoryFeed    Intent = "category_feed"
	IntentMarketSnapshot  Intent = "market_snapshot"
	IntentWeatherSnapshot Intent = "weather_snapshot"
	IntentLiveSearch      Intent = "live_search"
)

// SchemaType is the OpenAPI subset type name understood by the service.
type SchemaType string

const (
	TypeString  SchemaType = "STRING"
	TypeNumber  SchemaType = "NUMBER"
	TypeBoolean SchemaType = "BOOLEAN"
	TypeObject  SchemaType = "OBJECT"
	TypeArray   SchemaType = "ARRAY"
)

// Schema is the strict output-shape contract sent with structured requests.
type Schema struct {
	Type       SchemaType         `json:"type"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// Request is a natural-language instruction plus an optional schema.
// A nil Schema asks for free text.
type Request struct {
	Intent      Intent
	Instruction string
	Schema      *Schema
}

// Structured reports whether the request expects a JSON payload.
func (r Request) Structured() bool {
	return r.Schema != nil
}

// Response is the raw payload of one generate call.
type Response struct {
	Text      string            `json:"text"`
	Citations []models.Citation `json:"citations,omitempty"`
}

// Generator is the generative search service.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
