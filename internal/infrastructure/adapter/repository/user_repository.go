package repository

import (
	"context"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.UserRepository = (*UserRepository)(nil)

func userModelToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(entity.User{
		ID:        m.ID,
		TgID:      m.TgID,
		Name:      m.Name,
		Username:  m.Username,
		ReferCode: m.ReferCode,
		ReferBy:   m.ReferBy,
		JoinedAt:  m.JoinedAt,
		IsBlock:   m.IsBlock,
		IsDelete:  m.IsDelete,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, m.Balance)
}

func userEntityToModel(u *entity.User) *model.User {
	return &model.User{
		ID:        u.ID,
		TgID:      u.TgID,
		Name:      u.Name,
		Username:  u.Username,
		ReferCode: u.ReferCode,
		ReferBy:   u.ReferBy,
		Balance:   u.Balance(),
		JoinedAt:  u.JoinedAt,
		IsBlock:   u.IsBlock,
		IsDelete:  u.IsDelete,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.MapError(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	if errs.IsUserNotFoundError(mapped) {
		r.logger.Debug("User not found", fields)
		return mapped
	}

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if errs.IsConflictError(mapped) {
		r.logger.Warn("Concurrent write on users", logFields)
	} else {
		r.logger.Error("Database error on users", logFields)
	}
	return mapped
}

// GetByTgID retrieves a user by Telegram ID regardless of its deleted flag
func (r *UserRepository) GetByTgID(ctx context.Context, tgID string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("tg_id = ?", tgID).Take(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get_by_tg_id", result.Error, map[string]any{"tg_id": tgID})
	}

	return userModelToEntity(&userModel), nil
}

// GetByID retrieves a user by its UUID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).Take(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get_by_id", result.Error, map[string]any{"user_id": id})
	}

	return userModelToEntity(&userModel), nil
}

// Create inserts the user. An existing row with the same Telegram ID is left
// untouched and reported as ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"tg_id":   user.TgID,
	})

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tg_id"}},
			DoNothing: true,
		}).
		Create(userEntityToModel(user))

	if result.Error != nil {
		return r.handleDatabaseError("create", result.Error, map[string]any{"tg_id": user.TgID})
	}

	if result.RowsAffected == 0 {
		r.logger.Info("User already registered by a concurrent login", map[string]any{
			"tg_id": user.TgID,
		})
		return errs.ErrDuplicateUser
	}

	return nil
}

// ListActive returns every user not flagged as deleted, oldest first
func (r *UserRepository) ListActive(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Where("is_delete = ?", false).
		Order("joined_at asc").
		Order("id asc").
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list_active", result.Error, nil)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}
