package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

// ErrDuplicateEmail is returned by Create when another account already holds
// the email.
var ErrDuplicateEmail = errors.New("signup email already registered")

const uniqueViolation = "23505"

// SignupRepository stores trainee self-service accounts.
type SignupRepository struct {
	db *sqlx.DB
}

// NewSignupRepository constructs a SignupRepository.
func NewSignupRepository(db *sqlx.DB) *SignupRepository {
	return &SignupRepository{db: db}
}

// ExistsByEmail checks whether an account already uses the email.
func (r *SignupRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM trainee_signups WHERE LOWER(email) = LOWER($1) LIMIT 1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check signup email: %w", err)
	}
	return true, nil
}

// Create inserts a new account.
func (r *SignupRepository) Create(ctx context.Context, account *models.TraineeAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO trainee_signups (id, email, password_hash, created_at) VALUES (:id, :email, :password_hash, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, account); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create signup: %w", err)
	}
	return nil
}

// List returns every account, oldest first.
func (r *SignupRepository) List(ctx context.Context) ([]models.TraineeAccount, error) {
	accounts := []models.TraineeAccount{}
	if err := r.db.SelectContext(ctx, &accounts, `SELECT id, email, password_hash, created_at FROM trainee_signups ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	return accounts, nil
}
