package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	"github.com/noah-isme/training-enrollment-api/internal/repository"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
)

const signupMessage = "Signup successful"

type signupRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, account *models.TraineeAccount) error
	List(ctx context.Context) ([]models.TraineeAccount, error)
}

// TokenConfig defines how signup tokens are signed.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// SignupService registers trainee accounts and verifies the tokens it issues.
type SignupService struct {
	repo      signupRepository
	store     storeRunner
	validator *validator.Validate
	logger    *zap.Logger
	config    TokenConfig
	now       func() time.Time
}

// NewSignupService constructs a SignupService.
func NewSignupService(repo signupRepository, metrics *MetricsService, storeTimeout time.Duration, validate *validator.Validate, logger *zap.Logger, config TokenConfig) *SignupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &SignupService{
		repo:      repo,
		store:     storeRunner{timeout: storeTimeout, metrics: metrics},
		validator: validate,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// Signup stores a new account and returns a signed token for it.
func (s *SignupService) Signup(ctx context.Context, payload dto.SignupRequest) (*models.SignupResponse, error) {
	payload.Email = strings.TrimSpace(payload.Email)
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}

	var exists bool
	err := s.store.run(ctx, "signup_exists", func(ctx context.Context) error {
		var existsErr error
		exists, existsErr = s.repo.ExistsByEmail(ctx, payload.Email)
		return existsErr
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to check signup email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	account := &models.TraineeAccount{Email: payload.Email, PasswordHash: string(hash)}
	err = s.store.run(ctx, "create_signup", func(ctx context.Context) error {
		return s.repo.Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
		}
		return nil, appErrors.Store(err, "failed to store signup")
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue token")
	}
	s.logger.Info("trainee account created", zap.String("account_id", account.ID))
	return &models.SignupResponse{Message: signupMessage, Token: token}, nil
}

// List returns every account. Password hashes are never serialised.
func (s *SignupService) List(ctx context.Context) ([]models.TraineeAccount, error) {
	var accounts []models.TraineeAccount
	err := s.store.run(ctx, "list_signups", func(ctx context.Context) error {
		var listErr error
		accounts, listErr = s.repo.List(ctx)
		return listErr
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to list trainees")
	}
	return accounts, nil
}

// ValidateToken parses a token issued by Signup and returns its claims.
func (s *SignupService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func (s *SignupService) issueToken(account *models.TraineeAccount) (string, error) {
	issuedAt := s.now().UTC()
	claims := &models.JWTClaims{
		Email: account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
}
