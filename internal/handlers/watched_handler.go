package handlers

import (
	"errors"
	"strconv"

	"github.com/JohnBalawejder/watcha/internal/middleware"
	"github.com/JohnBalawejder/watcha/internal/services"
	"github.com/JohnBalawejder/watcha/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WatchedHandler struct {
	service services.WatchlistService
	logger  *logrus.Logger
}

func NewWatchedHandler(service services.WatchlistService, logger *logrus.Logger) *WatchedHandler {
	return &WatchedHandler{
		service: service,
		logger:  logger,
	}
}

// Add records a watched movie or show, enriched with OMDb metadata.
func (h *WatchedHandler) Add(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req AddWatchedRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" || req.Type == "" || req.Ranking == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Title, type, and ranking are required")
	}

	entry, err := h.service.AddWatched(c.Context(), userID, req.Title, req.Type, req.Ranking)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("title", req.Title).Error("Failed to add watched movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add watched movie")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List returns the caller's watched list in storage order.
func (h *WatchedHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	entries, err := h.service.ListWatched(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to list watched movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve watched movies")
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

// Delete removes a watched entry owned by the caller.
func (h *WatchedHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	entryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteWatched(c.Context(), userID, uint(entryID)); err != nil {
		if errors.Is(err, services.ErrWatchedNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found in your watchlist")
		}
		h.logger.WithError(err).WithField("id", entryID).Error("Failed to delete watched movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie")
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Movie removed from your watchlist")
}
