package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	// tokenPrefix is the prefix for all issued bearer tokens
	tokenPrefix = "cnt_"
	// tokenRandomBytes is the number of random bytes for the token (32 bytes = 256 bits)
	tokenRandomBytes = 32
	// tokenPrefixLength is the length of the displayable prefix (e.g., "cnt_abc...")
	tokenPrefixLength = 8
)

// AuthService handles registration, login and bearer token validation
type AuthService struct {
	userRepo  domain.UserRepository
	tokenRepo domain.AuthTokenRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, tokenRepo domain.AuthTokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// RegisterResult carries the created user and their bearer token. The token
// is returned in plaintext exactly once; only its hash is stored.
type RegisterResult struct {
	User  *domain.User
	Token string
}

// Register creates a new user and issues their bearer token
func (s *AuthService) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	if len(username) > domain.MaxUsernameLength {
		return nil, domain.ErrNameTooLong
	}
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		log.Error().Err(err).Str("username", username).Msg("Failed to create user")
		return nil, err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", username).Msg("User registered")

	return &RegisterResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a fresh bearer token. Previously
// issued tokens stay valid; only hashes are stored, so an existing token
// cannot be re-displayed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*RegisterResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidLogin
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("User logged in")

	return &RegisterResult{User: user, Token: token}, nil
}

// ValidateToken validates a bearer token and returns the stored token record
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	if len(token) < len(tokenPrefix) || token[:len(tokenPrefix)] != tokenPrefix {
		return nil, domain.ErrTokenNotFound
	}

	hash := hashToken(token)

	authToken, err := s.tokenRepo.GetByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	// Update last used timestamp asynchronously
	go func() {
		if updateErr := s.tokenRepo.UpdateLastUsed(context.Background(), authToken.ID); updateErr != nil {
			log.Error().Err(updateErr).Str("token_id", authToken.ID.String()).Msg("Failed to update last_used_at")
		}
	}()

	return authToken, nil
}

func (s *AuthService) issueToken(ctx context.Context, user *domain.User) (string, error) {
	rawToken, err := generateSecureToken()
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate secure token")
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	fullToken := tokenPrefix + rawToken

	authToken := &domain.AuthToken{
		UserID:      user.ID,
		TokenHash:   hashToken(fullToken),
		TokenPrefix: tokenPrefix + rawToken[:tokenPrefixLength] + "...",
	}

	if err := s.tokenRepo.Create(ctx, authToken); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to store auth token")
		return "", err
	}

	return fullToken, nil
}

// generateSecureToken generates a cryptographically secure random token
func generateSecureToken() (string, error) {
	bytes := make([]byte, tokenRandomBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	// Use URL-safe base64 encoding without padding
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// hashToken creates a SHA-256 hash of the token
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", hash)
}
