package usecase

import (
	"context"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
)

// KeyInput carries the fields of a key to create
type KeyInput struct {
	Name        string
	Type        string
	Value       string
	Description string
}

// KeyUseCase defines the vault operations, always scoped to the owning user
type KeyUseCase interface {
	ListKeys(ctx context.Context, userID string) ([]*entity.Key, error)
	CreateKey(ctx context.Context, userID string, input KeyInput) (*entity.Key, error)
	UpdateKey(ctx context.Context, userID, keyID string, changes entity.KeyChanges) (*entity.Key, error)
	DeleteKey(ctx context.Context, userID, keyID string) error
}
