package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docstamp/internal/domain/entity"
	"docstamp/internal/usecase"
)

type PlacementHandler struct {
	usecase usecase.PlacementUsecase
	logger  *zap.Logger
}

func NewPlacementHandler(usecase usecase.PlacementUsecase, logger *zap.Logger) *PlacementHandler {
	return &PlacementHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Validate godoc
// @Summary Validate placement input
// @Description Pre-check a signature placement request against the page geometry
// @Tags placements
// @Accept json
// @Produce json
// @Param request body entity.PlacementRequest true "Placement request"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/placements/validate [post]
func (h *PlacementHandler) Validate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req entity.PlacementRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "document_id is required"),
		)
	}

	result, err := h.usecase.Validate(ctx, &req)
	if err != nil {
		h.logger.Error("Failed to validate placement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
		)
	}

	message := "Placement input is valid"
	if !result.Valid {
		message = "Placement input is invalid"
	}
	return c.JSON(entity.NewSuccessResponse(result, message))
}

// Preview godoc
// @Summary Preview signature placement
// @Description Compute overlay and merge placements for a signature without modifying the document
// @Tags placements
// @Accept json
// @Produce json
// @Param request body entity.PlacementRequest true "Placement request"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/placements/preview [post]
func (h *PlacementHandler) Preview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req entity.PlacementRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "document_id is required"),
		)
	}

	result, err := h.usecase.Preview(ctx, &req)
	if err != nil {
		h.logger.Error("Failed to compute placement preview", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
		)
	}

	return c.JSON(entity.NewSuccessResponse(result, "Placement computed successfully"))
}

// Stamp godoc
// @Summary Stamp a signature into a document
// @Description Compute the placement and permanently draw the signature image into a stamped copy
// @Tags placements
// @Accept json
// @Produce json
// @Param request body entity.StampRequest true "Stamp request"
// @Success 201 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /api/v1/placements/stamp [post]
func (h *PlacementHandler) Stamp(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req entity.StampRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	if req.DocumentID == "" || req.SignatureImage == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "document_id and signature_image are required"),
		)
	}

	result, err := h.usecase.Stamp(ctx, &req)
	if err != nil {
		h.logger.Error("Failed to stamp signature", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			entity.NewErrorResponse("INTERNAL_ERROR", err.Error()),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(
		entity.NewSuccessResponse(result, "Signature stamped successfully"),
	)
}
