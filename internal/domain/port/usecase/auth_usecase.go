package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
)

// LoginResult is the outcome of a successful login or refresh
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
	TgID      string
	Created   bool // true when the login registered a new user
}

// AuthUseCase defines the identity gateway operations
type AuthUseCase interface {
	// Authenticate verifies Telegram init data, finds or creates the user and issues a token
	// This is the operation behind POST /users/login.
	// A blocked user still passes verification but gets ErrUserBlocked (403) instead of a token.
	Authenticate(ctx context.Context, credential string) (*LoginResult, error)

	// Refresh issues a new token for the user named by still-valid claims
	Refresh(ctx context.Context, claims entity.SessionClaims) (*LoginResult, error)
}
