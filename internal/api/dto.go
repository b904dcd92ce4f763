package api

import "github.com/bilgisen/newspulse/internal/models"

// NewsQuery is the query of GET /news.
type NewsQuery struct {
	Category string `query:"category" validate:"omitempty,category"`
}

// WeatherQuery is the query of GET /weather.
type WeatherQuery struct {
	Location string `query:"location" validate:"omitempty,max=128"`
}

// SearchQuery is the query of GET /search.
type SearchQuery struct {
	Q string `query:"q" validate:"required,max=256"`
}

type CategoryResponse struct {
	Name models.Category `json:"name"`
	Slug string          `json:"slug"`
}
