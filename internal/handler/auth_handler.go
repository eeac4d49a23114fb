package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonybyrt/ready-to-fly/internal/handler/middleware"
	"github.com/Antonybyrt/ready-to-fly/internal/service"
	"github.com/Antonybyrt/ready-to-fly/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *validator.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		// One message for every failure mode; no user enumeration.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "email or password incorrect",
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Me returns the account behind the presented session token
// GET /auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	user, err := h.authService.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "user not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
