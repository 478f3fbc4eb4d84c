package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
)

const pendingRequestsCacheKey = "trainee-requests:pending"

type traineeRequestRepository interface {
	Create(ctx context.Context, req *models.TraineeRequest) error
	FindPending(ctx context.Context) ([]models.TraineeRequest, error)
}

// TraineeRequestService handles submission and listing of enrollment requests.
type TraineeRequestService struct {
	repo      traineeRequestRepository
	cache     *CacheService
	store     storeRunner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTraineeRequestService constructs TraineeRequestService.
func NewTraineeRequestService(repo traineeRequestRepository, cache *CacheService, metrics *MetricsService, storeTimeout time.Duration, validate *validator.Validate, logger *zap.Logger) *TraineeRequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TraineeRequestService{
		repo:      repo,
		cache:     cache,
		store:     storeRunner{timeout: storeTimeout, metrics: metrics},
		validator: validate,
		logger:    logger,
	}
}

// Submit stores a new Pending request.
func (s *TraineeRequestService) Submit(ctx context.Context, payload dto.SubmitTraineeRequest) (*models.TraineeRequest, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid trainee request payload")
	}

	req := &models.TraineeRequest{TraineeProfile: payload.Profile()}
	err := s.store.run(ctx, "create_trainee_request", func(ctx context.Context) error {
		return s.repo.Create(ctx, req)
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to submit trainee request")
	}

	s.cache.Invalidate(ctx, pendingRequestsCacheKey)
	s.logger.Info("trainee request submitted", zap.Int("trainee_id", req.TraineeID), zap.String("request_id", req.ID))
	return req, nil
}

// ListPending returns requests awaiting a decision and reports whether the
// listing was served from cache.
func (s *TraineeRequestService) ListPending(ctx context.Context) ([]models.TraineeRequest, bool, error) {
	var cached []models.TraineeRequest
	if s.cache.Get(ctx, pendingRequestsCacheKey, &cached) {
		return cached, true, nil
	}

	var requests []models.TraineeRequest
	err := s.store.run(ctx, "list_pending_trainee_requests", func(ctx context.Context) error {
		var listErr error
		requests, listErr = s.repo.FindPending(ctx)
		return listErr
	})
	if err != nil {
		return nil, false, appErrors.Store(err, "failed to list trainee requests")
	}

	s.cache.Set(ctx, pendingRequestsCacheKey, requests, 0)
	return requests, false, nil
}
