package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TraineeAccount is a self-service signup record.
type TraineeAccount struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"Email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SignupResponse carries the token issued after signup.
type SignupResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// JWTClaims represents the payload of issued access tokens.
type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
