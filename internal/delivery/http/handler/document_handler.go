package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docstamp/internal/domain/entity"
	"docstamp/internal/usecase"
)

type DocumentHandler struct {
	usecase usecase.DocumentUsecase
	logger  *zap.Logger
}

func NewDocumentHandler(usecase usecase.DocumentUsecase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// ListDocuments godoc
// @Summary List incoming documents
// @Description List the documents awaiting signatures
// @Tags documents
// @Accept json
// @Produce json
// @Success 200 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	docs, err := h.usecase.ListDocuments(ctx)
	if err != nil {
		h.logger.Error("Failed to list documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
		)
	}

	return c.JSON(entity.NewSuccessResponse(docs, "Documents retrieved successfully"))
}

// GetGeometry godoc
// @Summary Get document geometry
// @Description Extract normalized page geometry for every page of a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} entity.APIResponse
// @Failure 404 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/documents/{id}/geometry [get]
func (h *DocumentHandler) GetGeometry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	documentID := c.Params("id")
	geometry, err := h.usecase.GetGeometry(ctx, documentID)
	if err != nil {
		h.logger.Error("Failed to get document geometry",
			zap.String("document_id", documentID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusNotFound).JSON(
			entity.NewErrorResponse("NOT_FOUND", err.Error()),
		)
	}

	return c.JSON(entity.NewSuccessResponse(geometry, "Geometry retrieved successfully"))
}

// GetPageGeometry godoc
// @Summary Get page geometry
// @Description Extract normalized geometry for one page of a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param page path int true "Page number (1-based)"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 404 {object} entity.APIResponse
// @Router /api/v1/documents/{id}/geometry/{page} [get]
func (h *DocumentHandler) GetPageGeometry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	documentID := c.Params("id")
	page, err := strconv.Atoi(c.Params("page"))
	if err != nil || page < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Page must be a positive integer"),
		)
	}

	geometry, err := h.usecase.GetPageGeometry(ctx, documentID, page)
	if err != nil {
		h.logger.Error("Failed to get page geometry",
			zap.String("document_id", documentID),
			zap.Int("page", page),
			zap.Error(err),
		)
		return c.Status(fiber.StatusNotFound).JSON(
			entity.NewErrorResponse("NOT_FOUND", err.Error()),
		)
	}

	return c.JSON(entity.NewSuccessResponse(geometry, "Page geometry retrieved successfully"))
}
