package middleware

import (
	"context"
	"strings"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey contextKey = "user_id"
	// TokenIDKey is the context key for the auth token ID
	TokenIDKey contextKey = "token_id"
)

// TokenValidator provides bearer token validation
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.AuthToken, error)
}

// AuthMiddleware provides opaque bearer token authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// Authenticate returns an Echo middleware that validates bearer tokens and
// injects the authenticated user ID into the request context.
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorizedError(c, "Missing authorization header")
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return unauthorizedError(c, "Invalid authorization header format")
			}

			token := parts[1]

			// Validate token format - must start with "cnt_"
			if !strings.HasPrefix(token, "cnt_") {
				return unauthorizedError(c, "Invalid token format")
			}

			authToken, err := m.validator.ValidateToken(c.Request().Context(), token)
			if err != nil {
				if err == domain.ErrTokenNotFound {
					log.Debug().Msg("Auth token not found")
					return unauthorizedError(c, "Invalid token")
				}
				log.Error().Err(err).Msg("Token validation failed")
				return unauthorizedError(c, "Token validation failed")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, UserIDKey, authToken.UserID)
			ctx = context.WithValue(ctx, TokenIDKey, authToken.ID)

			c.SetRequest(c.Request().WithContext(ctx))

			log.Debug().
				Str("user_id", authToken.UserID.String()).
				Msg("Token authentication successful")

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user ID from the context
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Request().Context().Value(UserIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetTokenID extracts the auth token ID from the context
func GetTokenID(c echo.Context) uuid.UUID {
	if id, ok := c.Request().Context().Value(TokenIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
