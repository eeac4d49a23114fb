package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonybyrt/ready-to-fly/internal/service"
	"github.com/Antonybyrt/ready-to-fly/pkg/validator"
)

type AirportHandler struct {
	airportService *service.AirportService
	validator      *validator.Validator
}

func NewAirportHandler(airportService *service.AirportService, validator *validator.Validator) *AirportHandler {
	return &AirportHandler{
		airportService: airportService,
		validator:      validator,
	}
}

// Create adds an airport to the shared reference set.
// POST /airports
func (h *AirportHandler) Create(c *fiber.Ctx) error {
	var input service.AirportInput
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

	airport, err := h.airportService.Create(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error creating airport",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(airport)
}

// List returns all airports.
// GET /airports
func (h *AirportHandler) List(c *fiber.Ctx) error {
	airports, err := h.airportService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching airports",
		})
	}

	return c.Status(fiber.StatusOK).JSON(airports)
}

// GetByID returns one airport.
// GET /airports/:id
func (h *AirportHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return airportNotFound(c)
	}

	airport, err := h.airportService.GetByID(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return airportNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching airport",
		})
	}

	return c.Status(fiber.StatusOK).JSON(airport)
}

// Delete removes an airport; dependent flights go with it via the schema's
// cascade.
// DELETE /airports/:id
func (h *AirportHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return airportNotFound(c)
	}

	if err := h.airportService.Delete(c.Context(), int64(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return airportNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting airport",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func airportNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Airport not found",
	})
}
