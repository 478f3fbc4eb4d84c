package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/pkg/response"
)

type signupService interface {
	Signup(ctx context.Context, payload dto.SignupRequest) (*models.SignupResponse, error)
	List(ctx context.Context) ([]models.TraineeAccount, error)
}

// SignupHandler exposes trainee self-service accounts.
type SignupHandler struct {
	signups signupService
}

// NewSignupHandler constructs a SignupHandler.
func NewSignupHandler(signups signupService) *SignupHandler {
	return &SignupHandler{signups: signups}
}

// Signup godoc
// @Summary Create a trainee account
// @Tags Signup
// @Accept json
// @Produce json
// @Param payload body dto.SignupRequest true "Credentials"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /signup [post]
func (h *SignupHandler) Signup(c *gin.Context) {
	var payload dto.SignupRequest
	if !bindJSON(c, &payload) {
		return
	}
	resp, err := h.signups.Signup(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// List godoc
// @Summary List trainee accounts
// @Tags Signup
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /trainees [get]
func (h *SignupHandler) List(c *gin.Context) {
	accounts, err := h.signups.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, accounts, nil)
}
