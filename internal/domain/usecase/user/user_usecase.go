package user

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

// UserUseCase handles read-side user logic: the profile reader and the directory listing
type UserUseCase struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo persistence.UserRepository, logger coreport.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// GetProfile returns the profile of the user with the given Telegram ID
func (u *UserUseCase) GetProfile(ctx context.Context, tgID string) (*usecase.UserProfile, error) {
	user, err := u.userRepo.GetByTgID(ctx, tgID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Warn("Profile requested for unknown user", map[string]any{"tg_id": tgID})
			return nil, err
		}
		u.logger.Error("Failed to load profile", map[string]any{
			"tg_id": tgID,
			"error": err.Error(),
		})
		return nil, storageFailure(err)
	}

	return toProfile(user), nil
}

// ListUsers returns a summary of every user not flagged as deleted
func (u *UserUseCase) ListUsers(ctx context.Context) ([]usecase.UserSummary, error) {
	users, err := u.userRepo.ListActive(ctx)
	if err != nil {
		u.logger.Error("Failed to list users", map[string]any{"error": err.Error()})
		return nil, storageFailure(err)
	}

	summaries := make([]usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, usecase.UserSummary{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			TgID:     user.TgID,
			Balance:  user.GetBalance(),
			JoinedAt: user.JoinedAt,
			IsBlock:  user.IsBlock,
		})
	}

	u.logger.Debug("Users listed", map[string]any{"count": len(summaries)})
	return summaries, nil
}

func toProfile(user *entity.User) *usecase.UserProfile {
	return &usecase.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		TgID:      user.TgID,
		ReferCode: user.ReferCode,
		JoinedAt:  user.JoinedAt,
		IsBlock:   user.IsBlock,
	}
}

func storageFailure(err error) error {
	if errors.Is(err, errs.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
}
