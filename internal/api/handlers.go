package api

import (
	"context"
	"time"

	"github.com/bilgisen/newspulse/internal/feed"
	"github.com/bilgisen/newspulse/internal/middleware"
	"github.com/bilgisen/newspulse/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// FeedService is what the handlers need from the orchestrator.
type FeedService interface {
	LoadCategoryFeed(ctx context.Context, category models.Category) models.FeedResult
	LoadMarketAndWeather(ctx context.Context) models.Dashboard
	LoadWeather(ctx context.Context, location string) models.WeatherResult
	Search(ctx context.Context, query string) models.SearchResult
	Snapshot() feed.Snapshot
}

type Handlers struct {
	feeds   FeedService
	version string
}

func NewHandlers(feeds FeedService, version string) *Handlers {
	return &Handlers{
		feeds:   feeds,
		version: version,
	}
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.version,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// GetCategories handles GET /api/v1/categories
func (h *Handlers) GetCategories(c *fiber.Ctx) error {
	categories := make([]CategoryResponse, 0, len(models.Categories))
	for _, category := range models.Categories {
		categories = append(categories, CategoryResponse{Name: category, Slug: category.Slug()})
	}
	return c.JSON(categories)
}

// GetNews handles GET /api/v1/news
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	params := middleware.QueryParams[NewsQuery](c)

	category := models.CategoryForYou
	if params.Category != "" {
		parsed, err := models.ParseCategory(params.Category)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		category = parsed
	}

	return c.JSON(h.feeds.LoadCategoryFeed(c.UserContext(), category))
}

// GetDashboard handles GET /api/v1/dashboard
func (h *Handlers) GetDashboard(c *fiber.Ctx) error {
	return c.JSON(h.feeds.LoadMarketAndWeather(c.UserContext()))
}

// GetWeather handles GET /api/v1/weather
func (h *Handlers) GetWeather(c *fiber.Ctx) error {
	params := middleware.QueryParams[WeatherQuery](c)
	// Parsed values alias the request buffer; the view outlives the request.
	return c.JSON(h.feeds.LoadWeather(c.UserContext(), utils.CopyString(params.Location)))
}

// Search handles GET /api/v1/search
func (h *Handlers) Search(c *fiber.Ctx) error {
	params := middleware.QueryParams[SearchQuery](c)
	return c.JSON(h.feeds.Search(c.UserContext(), utils.CopyString(params.Q)))
}

// GetView handles GET /api/v1/view
func (h *Handlers) GetView(c *fiber.Ctx) error {
	return c.JSON(h.feeds.Snapshot())
}
