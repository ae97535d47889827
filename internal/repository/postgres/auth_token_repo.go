package postgres

import (
	"context"
	"errors"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthTokenRepository implements domain.AuthTokenRepository using PostgreSQL
type AuthTokenRepository struct {
	pool *pgxpool.Pool
}

// NewAuthTokenRepository creates a new AuthTokenRepository
func NewAuthTokenRepository(pool *pgxpool.Pool) *AuthTokenRepository {
	return &AuthTokenRepository{pool: pool}
}

// Create stores a new auth token
func (r *AuthTokenRepository) Create(ctx context.Context, token *domain.AuthToken) error {
	query := `INSERT INTO auth_tokens (user_id, token_hash, token_prefix)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, token.UserID, token.TokenHash, token.TokenPrefix).Scan(
		&token.ID,
		&token.CreatedAt,
	)
}

// GetByHash retrieves a token by its SHA-256 hash
func (r *AuthTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.AuthToken, error) {
	query := `SELECT id, user_id, token_hash, token_prefix, last_used_at, created_at
	          FROM auth_tokens WHERE token_hash = $1`

	token := &domain.AuthToken{}
	err := r.pool.QueryRow(ctx, query, hash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.TokenPrefix,
		&token.LastUsedAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return token, nil
}

// GetByUser retrieves the most recently issued token for a user
func (r *AuthTokenRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error) {
	query := `SELECT id, user_id, token_hash, token_prefix, last_used_at, created_at
	          FROM auth_tokens WHERE user_id = $1
	          ORDER BY created_at DESC LIMIT 1`

	token := &domain.AuthToken{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.TokenPrefix,
		&token.LastUsedAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return token, nil
}

// UpdateLastUsed stamps the token's last_used_at
func (r *AuthTokenRepository) UpdateLastUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE auth_tokens SET last_used_at = now() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
