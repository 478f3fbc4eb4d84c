package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
	"github.com/noah-isme/training-enrollment-api/pkg/export"
)

type rosterRepository interface {
	FindAll(ctx context.Context) ([]models.Trainee, error)
	FindByTraineeID(ctx context.Context, traineeID int) (*models.Trainee, error)
	Update(ctx context.Context, traineeID int, patch models.TraineePatch) (bool, error)
	Delete(ctx context.Context, traineeID int) (bool, error)
}

var rosterExportColumns = []string{"TraineeId", "TraineeName", "Class", "Number", "Age", "Dob", "Gender", "TrainingRoom"}

// ExportFile is a rendered roster document.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// RosterService exposes the active roster to operators.
type RosterService struct {
	repo      rosterRepository
	store     storeRunner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRosterService constructs a RosterService.
func NewRosterService(repo rosterRepository, metrics *MetricsService, storeTimeout time.Duration, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		repo:      repo,
		store:     storeRunner{timeout: storeTimeout, metrics: metrics},
		validator: validate,
		logger:    logger,
	}
}

// List returns the whole roster.
func (s *RosterService) List(ctx context.Context) ([]models.Trainee, error) {
	var trainees []models.Trainee
	err := s.store.run(ctx, "list_trainees", func(ctx context.Context) error {
		var listErr error
		trainees, listErr = s.repo.FindAll(ctx)
		return listErr
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to list trainees")
	}
	return trainees, nil
}

// Get returns a roster entry by trainee id.
func (s *RosterService) Get(ctx context.Context, traineeID int) (*models.Trainee, error) {
	var trainee *models.Trainee
	err := s.store.run(ctx, "get_trainee", func(ctx context.Context) error {
		var getErr error
		trainee, getErr = s.repo.FindByTraineeID(ctx, traineeID)
		return getErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Trainee not found")
		}
		return nil, appErrors.Store(err, "failed to load trainee")
	}
	return trainee, nil
}

// Update edits the descriptive fields of a roster entry.
func (s *RosterService) Update(ctx context.Context, traineeID int, payload dto.UpdateTraineeRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid trainee payload")
	}
	var updated bool
	err := s.store.run(ctx, "update_trainee", func(ctx context.Context) error {
		var updateErr error
		updated, updateErr = s.repo.Update(ctx, traineeID, payload.Patch())
		return updateErr
	})
	if err != nil {
		return appErrors.Store(err, "failed to update trainee")
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "Trainee not found")
	}
	return nil
}

// Delete removes a roster entry.
func (s *RosterService) Delete(ctx context.Context, traineeID int) error {
	var deleted bool
	err := s.store.run(ctx, "delete_trainee", func(ctx context.Context) error {
		var deleteErr error
		deleted, deleteErr = s.repo.Delete(ctx, traineeID)
		return deleteErr
	})
	if err != nil {
		return appErrors.Store(err, "failed to delete trainee")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Trainee not found")
	}
	s.logger.Info("trainee removed from roster", zap.Int("trainee_id", traineeID))
	return nil
}

// Attendance returns the roster with its head count.
func (s *RosterService) Attendance(ctx context.Context) (*models.Attendance, error) {
	trainees, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Attendance{Attendance: len(trainees), Trainees: trainees}, nil
}

// Export renders the roster as CSV (default) or PDF.
func (s *RosterService) Export(ctx context.Context, format string) (*ExportFile, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnsupportedFormat.Code, appErrors.ErrUnsupportedFormat.Status, appErrors.ErrUnsupportedFormat.Message)
	}

	trainees, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	content, err := renderer.Render(rosterTable(trainees))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("roster-%s.%s", time.Now().UTC().Format("20060102"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func rosterTable(trainees []models.Trainee) export.Table {
	rows := make([][]string, 0, len(trainees))
	for _, t := range trainees {
		rows = append(rows, []string{
			strconv.Itoa(t.TraineeID),
			t.TraineeName,
			t.Class,
			t.Number,
			strconv.Itoa(t.Age),
			t.Dob,
			t.Gender,
			t.TrainingRoom,
		})
	}
	return export.Table{Title: "Training Roster", Columns: rosterExportColumns, Rows: rows}
}
