package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/validator"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
)

// ImportHandler triggers geodata imports over HTTP.
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// Run godoc
// @Summary Import accessibility features from OpenStreetMap
// @Description Fetches tagged elements around the center, classifies them and merges them in, skipping near-duplicates
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Center and radius"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/import [post]
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.importUC.Run(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:   result.Added,
		Skipped: result.Suppressed,
	})
}
