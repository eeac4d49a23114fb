package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	flightHandler *FlightHandler,
	airportHandler *AirportHandler,
	healthHandler *HealthHandler,
	authMiddleware fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authMiddleware, authHandler.Me)

	// Flight routes (protected, mutations ownership-scoped in the service)
	flights := app.Group("/flights", authMiddleware)
	flights.Post("/", flightHandler.Create)
	flights.Get("/", flightHandler.ListAll)
	flights.Get("/mine", flightHandler.ListMine)
	flights.Get("/count", flightHandler.Count)
	flights.Get("/stats", flightHandler.Stats)
	flights.Get("/:id", flightHandler.GetByID)
	flights.Put("/:id", flightHandler.Update)
	flights.Delete("/:id", flightHandler.Delete)

	// Airport routes (protected; shared reference data, no ownership)
	airports := app.Group("/airports", authMiddleware)
	airports.Post("/", airportHandler.Create)
	airports.Get("/", airportHandler.List)
	airports.Get("/:id", airportHandler.GetByID)
	airports.Delete("/:id", airportHandler.Delete)
}
