package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/pkg/response"
)

const requestSubmittedMessage = "Trainee request submitted."

type traineeRequestService interface {
	Submit(ctx context.Context, payload dto.SubmitTraineeRequest) (*models.TraineeRequest, error)
	ListPending(ctx context.Context) ([]models.TraineeRequest, bool, error)
}

type enrollmentDecider interface {
	Decide(ctx context.Context, traineeID int, decision models.RequestStatus) (*models.DecisionResult, error)
}

// TraineeRequestHandler exposes the enrollment request lifecycle.
type TraineeRequestHandler struct {
	requests traineeRequestService
	workflow enrollmentDecider
}

// NewTraineeRequestHandler constructs a TraineeRequestHandler.
func NewTraineeRequestHandler(requests traineeRequestService, workflow enrollmentDecider) *TraineeRequestHandler {
	return &TraineeRequestHandler{requests: requests, workflow: workflow}
}

// Submit godoc
// @Summary Submit an enrollment request
// @Tags TraineeRequests
// @Accept json
// @Produce json
// @Param payload body dto.SubmitTraineeRequest true "Trainee details"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /request-trainee [post]
func (h *TraineeRequestHandler) Submit(c *gin.Context) {
	var payload dto.SubmitTraineeRequest
	if !bindJSON(c, &payload) {
		return
	}
	req, err := h.requests.Submit(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitResponse{Message: requestSubmittedMessage, Request: req})
}

// ListPending godoc
// @Summary List pending enrollment requests
// @Tags TraineeRequests
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /trainee-requests [get]
func (h *TraineeRequestHandler) ListPending(c *gin.Context) {
	requests, cached, err := h.requests.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, map[string]interface{}{"cached": cached, "total": len(requests)})
}

// Decide godoc
// @Summary Accept or reject an enrollment request
// @Tags TraineeRequests
// @Accept json
// @Produce json
// @Param id path int true "Trainee ID"
// @Param payload body dto.DecisionRequest true "Decision (Accepted or Rejected)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /approve-trainee/{id} [put]
func (h *TraineeRequestHandler) Decide(c *gin.Context) {
	traineeID, ok := intParam(c, "id")
	if !ok {
		return
	}
	var payload dto.DecisionRequest
	if !bindJSON(c, &payload) {
		return
	}
	result, err := h.workflow.Decide(c.Request.Context(), traineeID, models.RequestStatus(payload.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.DecisionResponse{
		Message:        "Trainee request " + string(result.Status),
		DecisionResult: *result,
	}, nil)
}
