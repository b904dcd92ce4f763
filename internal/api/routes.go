package api

import (
	"github.com/bilgisen/newspulse/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	// API group with versioning
	api := app.Group("/api/v1")

	api.Get("/health", handlers.HealthCheck)
	api.Get("/categories", handlers.GetCategories)

	api.Get("/news", middleware.ValidateQuery[NewsQuery](), handlers.GetNews)
	api.Get("/dashboard", handlers.GetDashboard)
	api.Get("/weather", middleware.ValidateQuery[WeatherQuery](), handlers.GetWeather)
	api.Get("/search", middleware.ValidateQuery[SearchQuery](), handlers.Search)
	api.Get("/view", handlers.GetView)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
