package repository

import (
	"context"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// KeyRepository implements KeyRepository interface using GORM.
// Every query is scoped to the owning user.
type KeyRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewKeyRepository creates a new KeyRepository instance
func NewKeyRepository(db *gorm.DB, logger coreport.Logger) *KeyRepository {
	return &KeyRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.KeyRepository = (*KeyRepository)(nil)

func keyModelToEntity(m *model.Key) *entity.Key {
	return &entity.Key{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        entity.KeyType(m.Type),
		Value:       m.Value,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *KeyRepository) handleDatabaseError(operation string, err error, userID, keyID string) error {
	mapped := r.errorClassifier.MapError(err, errs.ErrKeyNotFound, errs.ErrDuplicateKey)
	if errs.IsNotFoundError(mapped) {
		return mapped
	}

	r.logger.Error("Database error on vault keys", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"key_id":    keyID,
		"error":     err.Error(),
	})
	return mapped
}

// ListByUser returns the owner's keys, newest first
func (r *KeyRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Key, error) {
	var keyModels []model.Key
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc").
		Find(&keyModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list", result.Error, userID, "")
	}

	keys := make([]*entity.Key, 0, len(keyModels))
	for i := range keyModels {
		keys = append(keys, keyModelToEntity(&keyModels[i]))
	}
	return keys, nil
}

// GetByID returns one of the owner's keys
func (r *KeyRepository) GetByID(ctx context.Context, userID, keyID string) (*entity.Key, error) {
	var keyModel model.Key
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", keyID, userID).
		Take(&keyModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get", result.Error, userID, keyID)
	}
	return keyModelToEntity(&keyModel), nil
}

// Create inserts a new key
func (r *KeyRepository) Create(ctx context.Context, key *entity.Key) error {
	keyModel := model.Key{
		ID:          key.ID,
		UserID:      key.UserID,
		Name:        key.Name,
		Type:        string(key.Type),
		Value:       key.Value,
		Description: key.Description,
		IsActive:    key.IsActive,
		CreatedAt:   key.CreatedAt,
		UpdatedAt:   key.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&keyModel).Error; err != nil {
		return r.handleDatabaseError("create", err, key.UserID, key.ID)
	}

	r.logger.Debug("Vault key created", map[string]any{
		"user_id": key.UserID,
		"key_id":  key.ID,
		"type":    string(key.Type),
	})
	return nil
}

// Update writes every mutable field of the key
func (r *KeyRepository) Update(ctx context.Context, key *entity.Key) error {
	result := r.db.WithContext(ctx).Model(&model.Key{}).
		Where("id = ? AND user_id = ?", key.ID, key.UserID).
		Updates(map[string]any{
			"name":        key.Name,
			"type":        string(key.Type),
			"value":       key.Value,
			"description": key.Description,
			"is_active":   key.IsActive,
			"updated_at":  key.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, key.UserID, key.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrKeyNotFound
	}
	return nil
}

// Delete soft-deletes one of the owner's keys
func (r *KeyRepository) Delete(ctx context.Context, userID, keyID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", keyID, userID).
		Delete(&model.Key{})
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, userID, keyID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrKeyNotFound
	}

	r.logger.Debug("Vault key deleted", map[string]any{
		"user_id": userID,
		"key_id":  keyID,
	})
	return nil
}
