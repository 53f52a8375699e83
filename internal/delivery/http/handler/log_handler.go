package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docstamp/internal/domain/entity"
	"docstamp/internal/infrastructure/repository"
)

const defaultLogLimit = 100

type LogHandler struct {
	logRepo repository.PlacementLogRepository
}

func NewLogHandler(logRepo repository.PlacementLogRepository) *LogHandler {
	return &LogHandler{logRepo: logRepo}
}

// GetLogs godoc
// @Summary Get recent placement logs
// @Description Retrieve the most recent placement diagnostic entries
// @Tags logs
// @Accept json
// @Produce json
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/logs [get]
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLogLimit)))
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logs, err := h.logRepo.Recent(ctx, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
		)
	}

	return c.JSON(entity.NewSuccessResponse(logs, "Logs retrieved successfully"))
}

// SearchLogs godoc
// @Summary Search placement logs by document
// @Description Retrieve placement diagnostic entries for one document
// @Tags logs
// @Accept json
// @Produce json
// @Param document_id query string true "Document ID"
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/logs/search [get]
func (h *LogHandler) SearchLogs(c *fiber.Ctx) error {
	ctx := c.UserContext()

	documentID := c.Query("document_id")
	if documentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "document_id is required"),
		)
	}

	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLogLimit)))
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logs, err := h.logRepo.FindByDocument(ctx, documentID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
		)
	}

	return c.JSON(entity.NewSuccessResponse(logs, "Logs retrieved successfully"))
}
