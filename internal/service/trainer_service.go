package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
)

type trainerRepository interface {
	List(ctx context.Context) ([]models.Trainer, error)
	FindByTrainerID(ctx context.Context, trainerID int) (*models.Trainer, error)
	Create(ctx context.Context, trainer *models.Trainer) error
	Update(ctx context.Context, trainer *models.Trainer) (bool, error)
	Delete(ctx context.Context, trainerID int) (bool, error)
}

// TrainerService manages the trainer roster.
type TrainerService struct {
	repo      trainerRepository
	store     storeRunner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTrainerService constructs a TrainerService.
func NewTrainerService(repo trainerRepository, metrics *MetricsService, storeTimeout time.Duration, validate *validator.Validate, logger *zap.Logger) *TrainerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainerService{
		repo:      repo,
		store:     storeRunner{timeout: storeTimeout, metrics: metrics},
		validator: validate,
		logger:    logger,
	}
}

// List returns every trainer.
func (s *TrainerService) List(ctx context.Context) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := s.store.run(ctx, "list_trainers", func(ctx context.Context) error {
		var listErr error
		trainers, listErr = s.repo.List(ctx)
		return listErr
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to list trainers")
	}
	return trainers, nil
}

// Get returns a trainer by trainer id.
func (s *TrainerService) Get(ctx context.Context, trainerID int) (*models.Trainer, error) {
	var trainer *models.Trainer
	err := s.store.run(ctx, "get_trainer", func(ctx context.Context) error {
		var getErr error
		trainer, getErr = s.repo.FindByTrainerID(ctx, trainerID)
		return getErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Trainer not found")
		}
		return nil, appErrors.Store(err, "failed to load trainer")
	}
	return trainer, nil
}

// Create registers a trainer.
func (s *TrainerService) Create(ctx context.Context, payload dto.CreateTrainerRequest) (*models.Trainer, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid trainer payload")
	}
	trainer := &models.Trainer{
		TrainerID:   int(payload.TrainerID),
		TrainerName: payload.TrainerName,
		Mobile:      string(payload.Mobile),
		Subject:     payload.Subject,
		Salary:      string(payload.Salary),
	}
	err := s.store.run(ctx, "create_trainer", func(ctx context.Context) error {
		return s.repo.Create(ctx, trainer)
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to create trainer")
	}
	s.logger.Info("trainer added", zap.Int("trainer_id", trainer.TrainerID))
	return trainer, nil
}

// Update edits the trainer identified by trainerID.
func (s *TrainerService) Update(ctx context.Context, trainerID int, payload dto.UpdateTrainerRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid trainer payload")
	}
	trainer := &models.Trainer{
		TrainerID:   trainerID,
		TrainerName: payload.TrainerName,
		Mobile:      payload.Phone(),
		Subject:     payload.Subject,
		Salary:      string(payload.Salary),
	}
	var updated bool
	err := s.store.run(ctx, "update_trainer", func(ctx context.Context) error {
		var updateErr error
		updated, updateErr = s.repo.Update(ctx, trainer)
		return updateErr
	})
	if err != nil {
		return appErrors.Store(err, "failed to update trainer")
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "Trainer not found")
	}
	return nil
}

// Delete removes the trainer identified by trainerID.
func (s *TrainerService) Delete(ctx context.Context, trainerID int) error {
	var deleted bool
	err := s.store.run(ctx, "delete_trainer", func(ctx context.Context) error {
		var deleteErr error
		deleted, deleteErr = s.repo.Delete(ctx, trainerID)
		return deleteErr
	})
	if err != nil {
		return appErrors.Store(err, "failed to delete trainer")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Trainer not found")
	}
	s.logger.Info("trainer removed", zap.Int("trainer_id", trainerID))
	return nil
}
