package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/validator"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
)

// ScoreHandler handles area accessibility score queries.
type ScoreHandler struct {
	scoreUC *usecase.ScoreUseCase
	logger  *zap.Logger
}

func NewScoreHandler(scoreUC *usecase.ScoreUseCase, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		scoreUC: scoreUC,
		logger:  logger,
	}
}

// AreaScore godoc
// @Summary Score an area's accessibility 0-100
// @Description Combines spot quantity, working share and type variety into a single score
// @Tags Score
// @Accept json
// @Produce json
// @Param request body dto.AreaScoreRequest true "Center and radius"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/radius/score [post]
func (h *ScoreHandler) AreaScore(c *fiber.Ctx) error {
	var req dto.AreaScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scoreUC.AreaScore(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
