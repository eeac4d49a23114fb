package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonybyrt/ready-to-fly/internal/handler/middleware"
	"github.com/Antonybyrt/ready-to-fly/internal/service"
	"github.com/Antonybyrt/ready-to-fly/pkg/validator"
)

type FlightHandler struct {
	flightService *service.FlightService
	validator     *validator.Validator
}

func NewFlightHandler(flightService *service.FlightService, validator *validator.Validator) *FlightHandler {
	return &FlightHandler{
		flightService: flightService,
		validator:     validator,
	}
}

// Create handles flight creation. The owner is always the session identity;
// any owner field in the payload is simply not parsed.
// POST /flights
func (h *FlightHandler) Create(c *fiber.Ctx) error {
	var input service.FlightInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Validate(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	flight, err := h.flightService.Create(c.Context(), input, middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error creating flight",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(flight)
}

// ListAll returns every flight for dashboard aggregation, unscoped by owner.
// GET /flights
func (h *FlightHandler) ListAll(c *fiber.Ctx) error {
	flights, err := h.flightService.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching flights",
		})
	}

	return c.Status(fiber.StatusOK).JSON(flights)
}

// ListMine returns the caller's flights.
// GET /flights/mine
func (h *FlightHandler) ListMine(c *fiber.Ctx) error {
	flights, err := h.flightService.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching flights",
		})
	}

	return c.Status(fiber.StatusOK).JSON(flights)
}

// Count returns how many flights the caller owns.
// GET /flights/count
func (h *FlightHandler) Count(c *fiber.Ctx) error {
	count, err := h.flightService.Count(c.Context(), middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error counting flights",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

// Stats returns the dashboard aggregates, optionally for a given year.
// GET /flights/stats?year=2024
func (h *FlightHandler) Stats(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	stats, err := h.flightService.Stats(c.Context(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error computing flight stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetByID returns one of the caller's flights. A flight owned by someone else
// answers 404 exactly like a missing one.
// GET /flights/:id
func (h *FlightHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return flightNotFound(c)
	}

	flight, err := h.flightService.GetByID(c.Context(), int64(id), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return flightNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching flight",
		})
	}

	return c.Status(fiber.StatusOK).JSON(flight)
}

// Update replaces a flight's fields, ownership-scoped.
// PUT /flights/:id
func (h *FlightHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return flightNotFound(c)
	}

	var input service.FlightInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Validate(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	flight, err := h.flightService.Update(c.Context(), int64(id), input, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return flightNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error updating flight",
		})
	}

	return c.Status(fiber.StatusOK).JSON(flight)
}

// Delete removes a flight, ownership-scoped.
// DELETE /flights/:id
func (h *FlightHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return flightNotFound(c)
	}

	if err := h.flightService.Delete(c.Context(), int64(id), middleware.UserID(c)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return flightNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting flight",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func flightNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Flight not found",
	})
}
