package handlers

import (
	"errors"

	"github.com/JohnBalawejder/watcha/internal/services"
	"github.com/JohnBalawejder/watcha/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AccountService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AccountService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register creates a new account. Duplicate usernames are rejected with 400.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username and password are required")
	}

	if _, err := h.service.Register(c.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username already exists")
		}
		h.logger.WithError(err).Error("Failed to register user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return utils.MessageResponse(c, fiber.StatusCreated, "User registered successfully")
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		h.logger.WithError(err).Error("Failed to log in user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
	})
}

// Protected is an example route that only responds to valid bearer tokens.
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	return utils.MessageResponse(c, fiber.StatusOK, "You have access to this protected route")
}
