package key

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/usecase"
)

// KeyUseCase manages the keys in a user's vault
type KeyUseCase struct {
	keyRepo      persistence.KeyRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewKeyUseCase creates a new KeyUseCase
func NewKeyUseCase(
	keyRepo persistence.KeyRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *KeyUseCase {
	return &KeyUseCase{
		keyRepo:      keyRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.KeyUseCase = (*KeyUseCase)(nil)

// ListKeys returns the owner's keys, newest first
func (k *KeyUseCase) ListKeys(ctx context.Context, userID string) ([]*entity.Key, error) {
	keys, err := k.keyRepo.ListByUser(ctx, userID)
	if err != nil {
		k.logger.Error("Failed to list keys", map[string]any{"user_id": userID, "error": err.Error()})
		return nil, storageFailure(err)
	}
	if keys == nil {
		keys = []*entity.Key{}
	}
	return keys, nil
}

// CreateKey validates the input and stores a new key for the owner
func (k *KeyUseCase) CreateKey(ctx context.Context, userID string, input usecase.KeyInput) (*entity.Key, error) {
	key, err := entity.NewKey(userID, input.Name, input.Type, input.Value, input.Description, k.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := k.keyRepo.Create(ctx, key); err != nil {
		k.logger.Error("Failed to create key", map[string]any{"user_id": userID, "error": err.Error()})
		return nil, storageFailure(err)
	}

	k.logger.Info("Key created", map[string]any{
		"user_id": userID,
		"key_id":  key.ID,
		"type":    string(key.Type),
	})
	return key, nil
}

// UpdateKey applies a partial update to one of the owner's keys
func (k *KeyUseCase) UpdateKey(ctx context.Context, userID, keyID string, changes entity.KeyChanges) (*entity.Key, error) {
	if changes.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", errs.ErrInvalidKeyData)
	}

	key, err := k.keyRepo.GetByID(ctx, userID, keyID)
	if err != nil {
		return nil, passNotFound(err)
	}

	if err := key.Apply(changes, k.timeProvider); err != nil {
		return nil, err
	}

	if err := k.keyRepo.Update(ctx, key); err != nil {
		k.logger.Error("Failed to update key", map[string]any{"key_id": keyID, "error": err.Error()})
		return nil, passNotFound(err)
	}

	k.logger.Info("Key updated", map[string]any{"user_id": userID, "key_id": keyID})
	return key, nil
}

// DeleteKey soft-deletes one of the owner's keys
func (k *KeyUseCase) DeleteKey(ctx context.Context, userID, keyID string) error {
	if err := k.keyRepo.Delete(ctx, userID, keyID); err != nil {
		return passNotFound(err)
	}

	k.logger.Info("Key deleted", map[string]any{"user_id": userID, "key_id": keyID})
	return nil
}

func passNotFound(err error) error {
	if errors.Is(err, errs.ErrKeyNotFound) {
		return err
	}
	return storageFailure(err)
}

func storageFailure(err error) error {
	if errors.Is(err, errs.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
}
