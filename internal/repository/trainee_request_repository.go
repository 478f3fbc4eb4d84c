package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

const traineeRequestColumns = `id, trainee_id, trainee_name, class, number, age, dob, gender, status, training_room, created_at, updated_at`

// TraineeRequestRepository persists enrollment requests.
type TraineeRequestRepository struct {
	db *sqlx.DB
}

// NewTraineeRequestRepository constructs the repository.
func NewTraineeRequestRepository(db *sqlx.DB) *TraineeRequestRepository {
	return &TraineeRequestRepository{db: db}
}

// Create inserts a new request. Status is always Pending and the room empty,
// whatever the caller set. Duplicate trainee ids are not checked.
func (r *TraineeRequestRepository) Create(ctx context.Context, req *models.TraineeRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	req.Status = models.RequestStatusPending
	req.TrainingRoom = ""
	req.CreatedAt = now
	req.UpdatedAt = now

	const query = `INSERT INTO trainee_requests (id, trainee_id, trainee_name, class, number, age, dob, gender, status, training_room, created_at, updated_at)
        VALUES (:id, :trainee_id, :trainee_name, :class, :number, :age, :dob, :gender, :status, :training_room, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("create trainee request: %w", err)
	}
	return nil
}

// FindPending returns every request still awaiting a decision.
func (r *TraineeRequestRepository) FindPending(ctx context.Context) ([]models.TraineeRequest, error) {
	query := `SELECT ` + traineeRequestColumns + ` FROM trainee_requests WHERE status = $1 ORDER BY created_at`
	requests := []models.TraineeRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, models.RequestStatusPending); err != nil {
		return nil, fmt.Errorf("list pending trainee requests: %w", err)
	}
	return requests, nil
}

// FindByTraineeID returns the earliest request for a trainee. It returns
// sql.ErrNoRows unwrapped when none exists.
func (r *TraineeRequestRepository) FindByTraineeID(ctx context.Context, traineeID int) (*models.TraineeRequest, error) {
	query := `SELECT ` + traineeRequestColumns + ` FROM trainee_requests WHERE trainee_id = $1 ORDER BY created_at LIMIT 1`
	var req models.TraineeRequest
	if err := r.db.GetContext(ctx, &req, query, traineeID); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateDecision records a decision on the request identified by id. It
// reports whether a row was changed; a missing row is not an error.
func (r *TraineeRequestRepository) UpdateDecision(ctx context.Context, id string, status models.RequestStatus, room string) (bool, error) {
	const query = `UPDATE trainee_requests SET status = $2, training_room = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status, room, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("update trainee request decision: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update trainee request decision: %w", err)
	}
	return affected > 0, nil
}
