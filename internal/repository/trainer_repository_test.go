package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

func TestTrainerRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTrainerRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "trainer_id", "trainer_name", "mobile", "subject", "salary", "created_at", "updated_at"}).
		AddRow("id-1", 1, "Trainer A", "0800", "Math", "1000", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM trainers ORDER BY trainer_id")).WillReturnRows(rows)

	trainers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trainers, 1)
	assert.Equal(t, "Trainer A", trainers[0].TrainerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainerRepositoryCreateUpdateDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTrainerRepository(db)

	mock.ExpectExec("INSERT INTO trainers").
		WithArgs(sqlmock.AnyArg(), 1, "Trainer A", "0800", "Math", "1000", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE trainers SET").
		WithArgs("Trainer B", "0811", "Physics", "1200", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trainers WHERE trainer_id = $1")).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	trainer := &models.Trainer{TrainerID: 1, TrainerName: "Trainer A", Mobile: "0800", Subject: "Math", Salary: "1000"}
	require.NoError(t, repo.Create(context.Background(), trainer))
	assert.NotEmpty(t, trainer.ID)

	trainer.TrainerName = "Trainer B"
	trainer.Mobile = "0811"
	trainer.Subject = "Physics"
	trainer.Salary = "1200"
	updated, err := repo.Update(context.Background(), trainer)
	require.NoError(t, err)
	assert.True(t, updated)

	deleted, err := repo.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
