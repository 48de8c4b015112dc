package handlers

import (
	"errors"

	"github.com/JohnBalawejder/watcha/internal/middleware"
	"github.com/JohnBalawejder/watcha/internal/services"
	"github.com/JohnBalawejder/watcha/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SwipeHandler struct {
	service services.WatchlistService
	logger  *logrus.Logger
}

func NewSwipeHandler(service services.WatchlistService, logger *logrus.Logger) *SwipeHandler {
	return &SwipeHandler{
		service: service,
		logger:  logger,
	}
}

// Create records a left or right swipe on a title for the caller.
func (h *SwipeHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req SwipeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Title is required")
	}

	swipe, err := h.service.RecordSwipe(c.Context(), userID, req.Title, req.Swipe)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSwipe) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("title", req.Title).Error("Failed to record swipe")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record swipe")
	}

	return c.Status(fiber.StatusCreated).JSON(swipe)
}

// List returns the caller's swipes in storage order.
func (h *SwipeHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	swipes, err := h.service.ListSwipes(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to list swipes")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve swipes")
	}

	return c.Status(fiber.StatusOK).JSON(swipes)
}
