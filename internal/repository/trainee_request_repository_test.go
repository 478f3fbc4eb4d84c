package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var requestRowColumns = []string{"id", "trainee_id", "trainee_name", "class", "number", "age", "dob", "gender", "status", "training_room", "created_at", "updated_at"}

func TestTraineeRequestRepositoryCreateForcesPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTraineeRequestRepository(db)

	mock.ExpectExec("INSERT INTO trainee_requests").
		WithArgs(sqlmock.AnyArg(), 7, "A", "5", "123", 10, "2015-01-01", "F", models.RequestStatusPending, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	req := &models.TraineeRequest{
		TraineeProfile: models.TraineeProfile{TraineeID: 7, TraineeName: "A", Class: "5", Number: "123", Age: 10, Dob: "2015-01-01", Gender: "F"},
		Status:         models.RequestStatusAccepted,
		TrainingRoom:   "Room A",
	}
	require.NoError(t, repo.Create(context.Background(), req))
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Empty(t, req.TrainingRoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRequestRepositoryFindPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTraineeRequestRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(requestRowColumns).
		AddRow("r1", 7, "A", "5", "123", 10, "2015-01-01", "F", "Pending", "", now, now).
		AddRow("r2", 8, "B", "6", "456", 11, "2014-01-01", "M", "Pending", "", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM trainee_requests WHERE status = $1 ORDER BY created_at")).
		WithArgs(models.RequestStatusPending).
		WillReturnRows(rows)

	requests, err := repo.FindPending(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, 7, requests[0].TraineeID)
	assert.Equal(t, "B", requests[1].TraineeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRequestRepositoryFindByTraineeIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTraineeRequestRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trainee_requests WHERE trainee_id = $1 ORDER BY created_at LIMIT 1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(requestRowColumns))

	_, err := repo.FindByTraineeID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRequestRepositoryUpdateDecision(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTraineeRequestRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trainee_requests SET status = $2, training_room = $3")).
		WithArgs("r1", models.RequestStatusAccepted, "Room B", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trainee_requests SET status = $2, training_room = $3")).
		WithArgs("gone", models.RequestStatusRejected, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.UpdateDecision(context.Background(), "r1", models.RequestStatusAccepted, "Room B")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.UpdateDecision(context.Background(), "gone", models.RequestStatusRejected, "")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
