package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/pkg/response"
)

type trainerService interface {
	List(ctx context.Context) ([]models.Trainer, error)
	Get(ctx context.Context, trainerID int) (*models.Trainer, error)
	Create(ctx context.Context, payload dto.CreateTrainerRequest) (*models.Trainer, error)
	Update(ctx context.Context, trainerID int, payload dto.UpdateTrainerRequest) error
	Delete(ctx context.Context, trainerID int) error
}

// TrainerHandler wires trainer services to HTTP routes.
type TrainerHandler struct {
	trainers trainerService
}

// NewTrainerHandler constructs a TrainerHandler.
func NewTrainerHandler(trainers trainerService) *TrainerHandler {
	return &TrainerHandler{trainers: trainers}
}

// List godoc
// @Summary List trainers
// @Tags Trainers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /get-trainer [get]
func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.trainers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, trainers, nil)
}

// Get godoc
// @Summary Get trainer detail
// @Tags Trainers
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /get-trainer/{id} [get]
func (h *TrainerHandler) Get(c *gin.Context) {
	trainerID, ok := intParam(c, "id")
	if !ok {
		return
	}
	trainer, err := h.trainers.Get(c.Request.Context(), trainerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, trainer, nil)
}

// Create godoc
// @Summary Add a trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Param payload body dto.CreateTrainerRequest true "Trainer payload"
// @Success 201 {object} response.Envelope
// @Router /add-trainer [post]
func (h *TrainerHandler) Create(c *gin.Context) {
	var payload dto.CreateTrainerRequest
	if !bindJSON(c, &payload) {
		return
	}
	trainer, err := h.trainers.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, trainer)
}

// Update godoc
// @Summary Edit a trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Param id path int true "Trainer ID"
// @Param payload body dto.UpdateTrainerRequest true "Trainer payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /edit-trainer/{id} [put]
func (h *TrainerHandler) Update(c *gin.Context) {
	trainerID, ok := intParam(c, "id")
	if !ok {
		return
	}
	var payload dto.UpdateTrainerRequest
	if !bindJSON(c, &payload) {
		return
	}
	if err := h.trainers.Update(c.Request.Context(), trainerID, payload); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.MessageResponse{Message: "Trainer updated successfully"}, nil)
}

// Delete godoc
// @Summary Remove a trainer
// @Tags Trainers
// @Produce json
// @Param id path int true "Trainer ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete-trainer/{id} [delete]
func (h *TrainerHandler) Delete(c *gin.Context) {
	trainerID, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.trainers.Delete(c.Request.Context(), trainerID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.MessageResponse{Message: "Trainer deleted successfully"}, nil)
}
