package handlers

import (
	"github.com/JohnBalawejder/watcha/internal/services"
	"github.com/JohnBalawejder/watcha/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// SearchThumbnails returns poster thumbnails with genre and year for every
// OMDb search hit matching the query.
func (h *CatalogHandler) SearchThumbnails(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter is required")
	}

	thumbnails, err := h.service.SearchThumbnails(c.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to fetch thumbnails")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch data from OMDb")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"thumbnails": thumbnails,
	})
}
