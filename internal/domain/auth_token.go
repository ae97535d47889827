package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthToken represents an opaque bearer credential issued at registration
type AuthToken struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	TokenHash   string     `json:"-"` // Never expose hash
	TokenPrefix string     `json:"tokenPrefix"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AuthTokenRepository defines the interface for auth token persistence
type AuthTokenRepository interface {
	Create(ctx context.Context, token *AuthToken) error
	GetByHash(ctx context.Context, hash string) (*AuthToken, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*AuthToken, error)
	UpdateLastUsed(ctx context.Context, id uuid.UUID) error
}
