package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

const traineeColumns = `id, trainee_id, trainee_name, class, number, age, dob, gender, training_room, created_at, updated_at`

// RosterRepository persists the active trainee roster.
type RosterRepository struct {
	db *sqlx.DB
}

// NewRosterRepository constructs a RosterRepository.
func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Exists reports whether the trainee is already on the roster.
func (r *RosterRepository) Exists(ctx context.Context, traineeID int) (bool, error) {
	const query = `SELECT 1 FROM trainees WHERE trainee_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, traineeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check roster entry: %w", err)
	}
	return true, nil
}

// Insert adds a roster entry. It reports false without error when an entry
// for the trainee id already exists.
func (r *RosterRepository) Insert(ctx context.Context, trainee *models.Trainee) (bool, error) {
	if trainee.ID == "" {
		trainee.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if trainee.CreatedAt.IsZero() {
		trainee.CreatedAt = now
	}
	trainee.UpdatedAt = now

	const query = `INSERT INTO trainees (id, trainee_id, trainee_name, class, number, age, dob, gender, training_room, created_at, updated_at)
        VALUES (:id, :trainee_id, :trainee_name, :class, :number, :age, :dob, :gender, :training_room, :created_at, :updated_at)
        ON CONFLICT (trainee_id) DO NOTHING`
	res, err := r.db.NamedExecContext(ctx, query, trainee)
	if err != nil {
		return false, fmt.Errorf("insert roster entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert roster entry: %w", err)
	}
	return affected > 0, nil
}

// FindAll returns the whole roster.
func (r *RosterRepository) FindAll(ctx context.Context) ([]models.Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees ORDER BY trainee_id`
	trainees := []models.Trainee{}
	if err := r.db.SelectContext(ctx, &trainees, query); err != nil {
		return nil, fmt.Errorf("list trainees: %w", err)
	}
	return trainees, nil
}

// FindByTraineeID returns a roster entry or sql.ErrNoRows.
func (r *RosterRepository) FindByTraineeID(ctx context.Context, traineeID int) (*models.Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees WHERE trainee_id = $1`
	var trainee models.Trainee
	if err := r.db.GetContext(ctx, &trainee, query, traineeID); err != nil {
		return nil, err
	}
	return &trainee, nil
}

// Update overwrites the editable fields of a roster entry and reports whether
// it existed.
func (r *RosterRepository) Update(ctx context.Context, traineeID int, patch models.TraineePatch) (bool, error) {
	const query = `UPDATE trainees SET trainee_name = $2, class = $3, number = $4, age = $5, dob = $6, gender = $7, updated_at = $8 WHERE trainee_id = $1`
	res, err := r.db.ExecContext(ctx, query, traineeID, patch.TraineeName, patch.Class, patch.Number, patch.Age, patch.Dob, patch.Gender, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("update trainee: %w", err)
	}
	return rowsChanged(res, "update trainee")
}

// Delete removes a roster entry and reports whether it existed.
func (r *RosterRepository) Delete(ctx context.Context, traineeID int) (bool, error) {
	const query = `DELETE FROM trainees WHERE trainee_id = $1`
	res, err := r.db.ExecContext(ctx, query, traineeID)
	if err != nil {
		return false, fmt.Errorf("delete trainee: %w", err)
	}
	return rowsChanged(res, "delete trainee")
}

func rowsChanged(res sql.Result, op string) (bool, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return affected > 0, nil
}
