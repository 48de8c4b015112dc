package routes

import (
	"github.com/JohnBalawejder/watcha/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, requireAuth fiber.Handler, authHandler *handlers.AuthHandler, catalogHandler *handlers.CatalogHandler, watchedHandler *handlers.WatchedHandler, swipeHandler *handlers.SwipeHandler) {
	// Public routes
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/thumbnails", catalogHandler.SearchThumbnails)

	// Example protected route
	app.Get("/protected", requireAuth, authHandler.Protected)

	// Watched list
	watched := app.Group("/watched", requireAuth)
	{
		watched.Post("/", watchedHandler.Add)
		watched.Get("/", watchedHandler.List)
		watched.Delete("/:id", watchedHandler.Delete)
	}

	// Swipes
	swipes := app.Group("/swipes", requireAuth)
	{
		swipes.Post("/", swipeHandler.Create)
		swipes.Get("/", swipeHandler.List)
	}
}
