package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	"github.com/amirhossein-jamali/golden-key-vault/mocks/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/mocks/port/persistence"
)

func TestUserUseCase_GetProfile(t *testing.T) {
	joined := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return profile without balance", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		handle := "ab"
		stored := entity.RestoreUser(entity.User{
			ID:        "user-1",
			TgID:      "42",
			Name:      "A B",
			Username:  &handle,
			ReferCode: "42",
			ReferBy:   "0",
			JoinedAt:  joined,
		}, 5000)
		mockUserRepo.On("GetByTgID", ctx, "42").Return(stored, nil)

		useCase := NewUserUseCase(mockUserRepo, mockLogger)

		// Act
		profile, err := useCase.GetProfile(ctx, "42")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, "A B", profile.Name)
		assert.Equal(t, "ab", *profile.Username)
		assert.Equal(t, "42", profile.TgID)
		assert.Equal(t, "42", profile.ReferCode)
		assert.Equal(t, joined, profile.JoinedAt)
		assert.False(t, profile.IsBlock)

		// Verify mocks
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should return not found for unknown user", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByTgID", ctx, "404").Return(nil, errs.ErrUserNotFound)
		mockLogger.On("Warn", "Profile requested for unknown user", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockLogger)

		// Act
		profile, err := useCase.GetProfile(ctx, "404")

		// Assert
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, profile)

		// Verify mocks
		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should map repository failure to storage unavailable", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByTgID", ctx, "42").Return(nil, errors.New("connection reset"))
		mockLogger.On("Error", "Failed to load profile", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, mockLogger)

		// Act
		profile, err := useCase.GetProfile(ctx, "42")

		// Assert
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, profile)
		mockLogger.AssertExpectations(t)
	})
}

func TestUserUseCase_ListUsers(t *testing.T) {
	t.Run("should project users with formatted balance", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUserRepo := persistence.NewMockUserRepository(t)
		mockLogger := core.NewMockLogger(t)

		first := entity.RestoreUser(entity.User{ID: "u-1", TgID: "1", Name: "One"}, 0)
		second := entity.RestoreUser(entity.User{ID: "u-2", TgID: "2", Name: "Two", IsBlock: true}, 12345)

		mockUserRepo.EXPECT().ListActive(ctx).Return([]*entity.User{first, second}, nil).Once()
		mockLogger.EXPECT().Debug("Users listed", mock.Anything).Once()

		useCase := NewUserUseCase(mockUserRepo, mockLogger)

		// Act
		users, err := useCase.ListUsers(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "0.00", users[0].Balance)
		assert.Equal(t, "123.45", users[1].Balance)
		assert.True(t, users[1].IsBlock)
		assert.Nil(t, users[0].Username)
	})

	t.Run("should return an empty slice when there are no users", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := persistence.NewMockUserRepository(t)
		mockLogger := core.NewMockLogger(t)

		mockUserRepo.EXPECT().ListActive(ctx).Return(nil, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		users, err := NewUserUseCase(mockUserRepo, mockLogger).ListUsers(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("should propagate storage failure", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := persistence.NewMockUserRepository(t)
		mockLogger := core.NewMockLogger(t)

		mockUserRepo.EXPECT().ListActive(ctx).Return(nil, errs.ErrStorageUnavailable).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		users, err := NewUserUseCase(mockUserRepo, mockLogger).ListUsers(ctx)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, users)
	})
}
