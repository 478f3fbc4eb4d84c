package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/noah-isme/training-enrollment-api/internal/handler"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/pkg/config"
)

type rejectAllTokens struct{}

func (rejectAllTokens) ValidateToken(string) (*models.JWTClaims, error) {
	return nil, errors.New("rejected")
}

func testRoutes() routes {
	return routes{
		requests: handler.NewTraineeRequestHandler(nil, nil),
		roster:   handler.NewRosterHandler(nil),
		trainers: handler.NewTrainerHandler(nil),
		signups:  handler.NewSignupHandler(nil),
		metrics:  handler.NewMetricsHandler(nil, nil),
		tokens:   rejectAllTokens{},
	}
}

func TestRouterRegistersLegacyRoutes(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment}
	r := newRouter(cfg, zap.NewNop(), testRoutes())

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"POST /request-trainee",
		"GET /trainee-requests",
		"PUT /approve-trainee/:id",
		"GET /get-trainee",
		"GET /get-trainee/:id",
		"PUT /edit-trainee/:id",
		"DELETE /delete-trainee/:id",
		"GET /attendance",
		"GET /attendance/export",
		"GET /get-trainer",
		"GET /get-trainer/:id",
		"POST /add-trainer",
		"PUT /edit-trainer/:id",
		"DELETE /delete-trainer/:id",
		"POST /signup",
		"GET /trainees",
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"GET /docs/*any",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRouterProtectsOperatorRoutesWhenConfigured(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, JWT: config.JWTConfig{ProtectOperatorRoutes: true}}
	r := newRouter(cfg, zap.NewNop(), testRoutes())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trainee-requests", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
