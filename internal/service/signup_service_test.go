package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/internal/repository"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
)

type mockSignupRepo struct {
	accounts  []models.TraineeAccount
	createErr error
}

func (m *mockSignupRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, acc := range m.accounts {
		if strings.EqualFold(acc.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSignupRepo) Create(ctx context.Context, account *models.TraineeAccount) error {
	if m.createErr != nil {
		return m.createErr
	}
	account.ID = "acc-1"
	m.accounts = append(m.accounts, *account)
	return nil
}

func (m *mockSignupRepo) List(ctx context.Context) ([]models.TraineeAccount, error) {
	return m.accounts, nil
}

func newTestSignupService(repo *mockSignupRepo) *SignupService {
	return NewSignupService(repo, nil, time.Second, nil, nil, TokenConfig{Secret: "test-secret", Expiry: time.Hour})
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	repo := &mockSignupRepo{}
	svc := newTestSignupService(repo)

	resp, err := svc.Signup(context.Background(), dto.SignupRequest{Email: " asha@example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Signup successful", resp.Message)
	require.NotEmpty(t, resp.Token)

	require.Len(t, repo.accounts, 1)
	stored := repo.accounts[0]
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "acc-1", claims.Subject)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := &mockSignupRepo{accounts: []models.TraineeAccount{{Email: "asha@example.com"}}}
	svc := newTestSignupService(repo)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{Email: "ASHA@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, 409, appErrors.FromError(err).Status)
}

func TestSignupConflictWhenInsertLosesRace(t *testing.T) {
	repo := &mockSignupRepo{createErr: fmt.Errorf("create signup: %w", repository.ErrDuplicateEmail)}
	svc := newTestSignupService(repo)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{Email: "asha@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, 409, appErrors.FromError(err).Status)

	repo.createErr = errors.New("connection reset")
	_, err = svc.Signup(context.Background(), dto.SignupRequest{Email: "asha@example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, appErrors.ErrStoreUnavailable))
}

func TestSignupValidation(t *testing.T) {
	svc := newTestSignupService(&mockSignupRepo{})

	_, err := svc.Signup(context.Background(), dto.SignupRequest{Email: "not-an-email", Password: "secret123"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.Signup(context.Background(), dto.SignupRequest{Email: "a@example.com", Password: "123"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestValidateTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	repo := &mockSignupRepo{}
	svc := newTestSignupService(repo)
	resp, err := svc.Signup(context.Background(), dto.SignupRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(resp.Token)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	other := NewSignupService(repo, nil, time.Second, nil, nil, TokenConfig{Secret: "other-secret"})
	_, err = other.ValidateToken(resp.Token)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}
