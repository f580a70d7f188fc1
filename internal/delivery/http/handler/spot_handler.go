package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/validator"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
)

// SpotHandler handles the spot CRUD and voting endpoints.
type SpotHandler struct {
	spotUC *usecase.SpotUseCase
	logger *zap.Logger
}

func NewSpotHandler(spotUC *usecase.SpotUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Submit a new accessibility spot
// @Tags Spots
// @Accept json
// @Produce json
// @Param request body dto.CreateSpotRequest true "Spot to create"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spots [post]
func (h *SpotHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	spot, err := h.spotUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// List godoc
// @Summary List all accessibility spots
// @Tags Spots
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/spots [get]
func (h *SpotHandler) List(c *fiber.Ctx) error {
	spots := h.spotUC.List(c.Context())

	return utils.SendSuccess(c, fiber.Map{
		"spots": spots,
	}, &utils.Meta{
		Total: len(spots),
	})
}

// Get godoc
// @Summary Get one spot by id
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [get]
func (h *SpotHandler) Get(c *fiber.Ctx) error {
	spot, err := h.spotUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Update godoc
// @Summary Replace a spot's mutable state
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Param request body dto.UpdateSpotRequest true "New spot state"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [put]
func (h *SpotHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	spot, err := h.spotUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Delete godoc
// @Summary Delete a spot
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [delete]
func (h *SpotHandler) Delete(c *fiber.Ctx) error {
	if err := h.spotUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// Upvote godoc
// @Summary Upvote a spot
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/upvote [post]
func (h *SpotHandler) Upvote(c *fiber.Ctx) error {
	spot, err := h.spotUC.Upvote(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Downvote godoc
// @Summary Downvote a spot
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/downvote [post]
func (h *SpotHandler) Downvote(c *fiber.Ctx) error {
	spot, err := h.spotUC.Downvote(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}
