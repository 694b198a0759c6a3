package persistence

import (
	"context"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
)

// KeyRepository defines the storage operations for vault keys.
// Every lookup is scoped to the owner; keys of other users behave as missing.
type KeyRepository interface {
	// ListByUser returns the owner's keys, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Key, error)

	// GetByID retrieves one of the owner's keys
	//
	// Possible errors:
	// - ErrKeyNotFound: If the key doesn't exist or has another owner
	GetByID(ctx context.Context, userID, keyID string) (*entity.Key, error)

	// Create stores a new key
	Create(ctx context.Context, key *entity.Key) error

	// Update persists the mutable fields of an existing key
	//
	// Possible errors:
	// - ErrKeyNotFound: If the key vanished in the meantime
	Update(ctx context.Context, key *entity.Key) error

	// Delete soft-deletes one of the owner's keys
	//
	// Possible errors:
	// - ErrKeyNotFound: If the key doesn't exist or has another owner
	Delete(ctx context.Context, userID, keyID string) error
}
