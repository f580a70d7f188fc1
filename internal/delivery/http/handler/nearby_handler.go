package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/validator"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
)

// NearbyHandler handles proximity queries.
type NearbyHandler struct {
	proximityUC *usecase.ProximityUseCase
	logger      *zap.Logger
}

func NewNearbyHandler(proximityUC *usecase.ProximityUseCase, logger *zap.Logger) *NearbyHandler {
	return &NearbyHandler{
		proximityUC: proximityUC,
		logger:      logger,
	}
}

// SearchByRadius godoc
// @Summary Find accessibility spots within a radius
// @Description Returns spots inside the radius, nearest first, each with its distance in meters
// @Tags Nearby
// @Accept json
// @Produce json
// @Param request body dto.RadiusSpotsRequest true "Center and radius"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/radius/spots [post]
func (h *NearbyHandler) SearchByRadius(c *fiber.Ctx) error {
	var req dto.RadiusSpotsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.proximityUC.SearchByRadius(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
