package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/internal/service"
	"github.com/noah-isme/training-enrollment-api/pkg/response"
)

type rosterService interface {
	List(ctx context.Context) ([]models.Trainee, error)
	Get(ctx context.Context, traineeID int) (*models.Trainee, error)
	Update(ctx context.Context, traineeID int, payload dto.UpdateTraineeRequest) error
	Delete(ctx context.Context, traineeID int) error
	Attendance(ctx context.Context) (*models.Attendance, error)
	Export(ctx context.Context, format string) (*service.ExportFile, error)
}

// RosterHandler exposes the active roster.
type RosterHandler struct {
	roster rosterService
}

// NewRosterHandler constructs a RosterHandler.
func NewRosterHandler(roster rosterService) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// List godoc
// @Summary List roster entries
// @Tags Trainees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /get-trainee [get]
func (h *RosterHandler) List(c *gin.Context) {
	trainees, err := h.roster.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, trainees, nil)
}

// Get godoc
// @Summary Get a roster entry
// @Tags Trainees
// @Produce json
// @Param id path int true "Trainee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /get-trainee/{id} [get]
func (h *RosterHandler) Get(c *gin.Context) {
	traineeID, ok := intParam(c, "id")
	if !ok {
		return
	}
	trainee, err := h.roster.Get(c.Request.Context(), traineeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, trainee, nil)
}

// Update godoc
// @Summary Edit a roster entry
// @Tags Trainees
// @Accept json
// @Produce json
// @Param id path int true "Trainee ID"
// @Param payload body dto.UpdateTraineeRequest true "Trainee details"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /edit-trainee/{id} [put]
func (h *RosterHandler) Update(c *gin.Context) {
	traineeID, ok := intParam(c, "id")
	if !ok {
		return
	}
	var payload dto.UpdateTraineeRequest
	if !bindJSON(c, &payload) {
		return
	}
	if err := h.roster.Update(c.Request.Context(), traineeID, payload); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.MessageResponse{Message: "Trainee updated successfully"}, nil)
}

// Delete godoc
// @Summary Remove a roster entry
// @Tags Trainees
// @Produce json
// @Param id path int true "Trainee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete-trainee/{id} [delete]
func (h *RosterHandler) Delete(c *gin.Context) {
	traineeID, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.roster.Delete(c.Request.Context(), traineeID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.MessageResponse{Message: "Trainee deleted successfully"}, nil)
}

// Attendance godoc
// @Summary Roster head count
// @Tags Trainees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *RosterHandler) Attendance(c *gin.Context) {
	attendance, err := h.roster.Attendance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendance, nil)
}

// Export godoc
// @Summary Download the roster
// @Tags Trainees
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /attendance/export [get]
func (h *RosterHandler) Export(c *gin.Context) {
	file, err := h.roster.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}
