package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/training-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
	"github.com/noah-isme/training-enrollment-api/pkg/response"
)

// ContextClaimsKey is the gin context key storing verified token claims.
const ContextClaimsKey = "tokenClaims"

// TokenValidator verifies bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// JWT requires a valid bearer token issued at signup.
func JWT(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			var appErr *appErrors.Error
			if !errors.As(err, &appErr) {
				err = appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
			}
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// Optional returns JWT(tokens) when enabled and a pass-through otherwise.
func Optional(enabled bool, tokens TokenValidator) gin.HandlerFunc {
	if !enabled || tokens == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return JWT(tokens)
}

// ClaimsFromContext returns the claims stored by JWT, if any.
func ClaimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*models.JWTClaims)
	return claims
}
