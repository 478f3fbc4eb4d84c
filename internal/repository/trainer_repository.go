package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

const trainerColumns = `id, trainer_id, trainer_name, mobile, subject, salary, created_at, updated_at`

// TrainerRepository manages persistence for trainers.
type TrainerRepository struct {
	db *sqlx.DB
}

// NewTrainerRepository constructs a TrainerRepository.
func NewTrainerRepository(db *sqlx.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

// List returns all trainers.
func (r *TrainerRepository) List(ctx context.Context) ([]models.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers ORDER BY trainer_id`
	trainers := []models.Trainer{}
	if err := r.db.SelectContext(ctx, &trainers, query); err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return trainers, nil
}

// FindByTrainerID fetches a trainer or returns sql.ErrNoRows.
func (r *TrainerRepository) FindByTrainerID(ctx context.Context, trainerID int) (*models.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE trainer_id = $1 ORDER BY created_at LIMIT 1`
	var trainer models.Trainer
	if err := r.db.GetContext(ctx, &trainer, query, trainerID); err != nil {
		return nil, err
	}
	return &trainer, nil
}

// Create inserts a new trainer record.
func (r *TrainerRepository) Create(ctx context.Context, trainer *models.Trainer) error {
	if trainer.ID == "" {
		trainer.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = now
	}
	trainer.UpdatedAt = now

	const query = `INSERT INTO trainers (id, trainer_id, trainer_name, mobile, subject, salary, created_at, updated_at)
		VALUES (:id, :trainer_id, :trainer_name, :mobile, :subject, :salary, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, trainer); err != nil {
		return fmt.Errorf("create trainer: %w", err)
	}
	return nil
}

// Update modifies the trainers matching trainer.TrainerID and reports whether any matched.
func (r *TrainerRepository) Update(ctx context.Context, trainer *models.Trainer) (bool, error) {
	trainer.UpdatedAt = time.Now().UTC()
	const query = `UPDATE trainers SET trainer_name = :trainer_name, mobile = :mobile, subject = :subject, salary = :salary, updated_at = :updated_at WHERE trainer_id = :trainer_id`
	res, err := r.db.NamedExecContext(ctx, query, trainer)
	if err != nil {
		return false, fmt.Errorf("update trainer: %w", err)
	}
	return rowsChanged(res, "update trainer")
}

// Delete removes the trainers with the given id and reports whether any existed.
func (r *TrainerRepository) Delete(ctx context.Context, trainerID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE trainer_id = $1`, trainerID)
	if err != nil {
		return false, fmt.Errorf("delete trainer: %w", err)
	}
	return rowsChanged(res, "delete trainer")
}
