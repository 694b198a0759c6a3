package persistence

import (
	"context"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
)

// UserRepository defines the storage operations needed for Telegram users
type UserRepository interface {
	// GetByTgID retrieves a user by Telegram ID, deleted or not
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this Telegram ID
	// - ErrStorageUnavailable: If the database cannot be reached
	GetByTgID(ctx context.Context, tgID string) (*entity.User, error)

	// GetByID retrieves a user by its UUID
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrStorageUnavailable: If the database cannot be reached
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// Create inserts a new user; an existing row with the same Telegram ID is left untouched
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same Telegram ID already exists
	// - ErrWriteConflict: If a concurrent transaction forced a serialization failure
	// - ErrStorageUnavailable: If the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// ListActive returns every user not flagged as deleted, oldest first
	ListActive(ctx context.Context) ([]*entity.User, error)
}
