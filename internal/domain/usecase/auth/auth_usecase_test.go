package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/golden-key-vault/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/golden-key-vault/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/golden-key-vault/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validInitData = "user=%7B%22id%22%3A42%2C%22first_name%22%3A%22A%22%7D&auth_date=1700000000&hash=abc"

type authFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	userRepo *persistencemocks.MockUserRepository
	txRepo   *persistencemocks.MockUserRepository
	verifier *securitymocks.MockCredentialVerifier
	issuer   *securitymocks.MockTokenIssuer
	logger   *coremocks.MockLogger
	useCase  *AuthUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Since(mock.Anything).Return(core.Duration(0)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f := &authFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		txRepo:   persistencemocks.NewMockUserRepository(t),
		verifier: securitymocks.NewMockCredentialVerifier(t),
		issuer:   securitymocks.NewMockTokenIssuer(t),
		logger:   mockLogger,
	}
	f.useCase = NewAuthUseCase(f.uow, f.userRepo, f.verifier, f.issuer, mockTime, mockLogger)
	return f
}

func (f *authFixture) expectVerified(identity *entity.TelegramIdentity) {
	f.issuer.EXPECT().Ready().Return(true).Once()
	f.verifier.EXPECT().VerificationEnabled().Return(true).Once()
	f.verifier.EXPECT().Verify(mock.Anything, validInitData).Return(identity, nil).Once()
}

func (f *authFixture) expectTransaction(createErr error) {
	txCtx := context.WithValue(context.Background(), struct{}{}, "tx")
	f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	f.uow.EXPECT().GetUserRepository(txCtx).Return(f.txRepo).Once()
	f.txRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.User")).Return(createErr).Once()
	if createErr == nil {
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
	}
}

func existingUser() *entity.User {
	return &entity.User{ID: "user-1", TgID: "42", Name: "A B", ReferCode: "42", ReferBy: "0"}
}

func TestAuthenticate_CredentialChecks(t *testing.T) {
	t.Run("should reject empty credential", func(t *testing.T) {
		f := newAuthFixture(t)

		result, err := f.useCase.Authenticate(context.Background(), "   ")

		assert.ErrorIs(t, err, errs.ErrMissingCredential)
		assert.Nil(t, result)
	})

	t.Run("should reject credential without user and auth_date", func(t *testing.T) {
		f := newAuthFixture(t)

		for _, credential := range []string{"hello", "auth_date=1700000000", "user=%7B%7D", "%zz"} {
			result, err := f.useCase.Authenticate(context.Background(), credential)

			assert.ErrorIs(t, err, errs.ErrMalformedCredential, credential)
			assert.Nil(t, result)
		}
	})

	t.Run("should refuse when signing secret is missing", func(t *testing.T) {
		f := newAuthFixture(t)
		f.issuer.EXPECT().Ready().Return(false).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		assert.ErrorIs(t, err, errs.ErrServerMisconfigured)
		assert.Nil(t, result)
	})

	t.Run("should propagate unauthorized source", func(t *testing.T) {
		f := newAuthFixture(t)
		f.issuer.EXPECT().Ready().Return(true).Once()
		f.verifier.EXPECT().VerificationEnabled().Return(true).Once()
		f.verifier.EXPECT().Verify(mock.Anything, validInitData).
			Return(nil, errs.NewCredentialError("verify", errs.ErrUnauthorizedSource, errors.New("sign invalid"))).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		assert.ErrorIs(t, err, errs.ErrUnauthorizedSource)
		assert.Nil(t, result)
	})

	t.Run("should warn when verification is disabled", func(t *testing.T) {
		f := newAuthFixture(t)
		f.issuer.EXPECT().Ready().Return(true).Once()
		f.verifier.EXPECT().VerificationEnabled().Return(false).Once()
		f.verifier.EXPECT().Verify(mock.Anything, validInitData).Return(&entity.TelegramIdentity{TgID: 42}, nil).Once()
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(existingUser(), nil).Once()
		f.issuer.EXPECT().Issue("user-1", "42").Return(&entity.IssuedToken{Token: "tok"}, nil).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		require.NoError(t, err)
		assert.Equal(t, "tok", result.Token)
		f.logger.AssertCalled(t, "Warn", "Bot token not configured, accepting init data without signature verification", mock.Anything)
	})
}

func TestAuthenticate_Resolution(t *testing.T) {
	identity := &entity.TelegramIdentity{TgID: 42, FirstName: "A", LastName: "B", Username: "ab"}
	expiry := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	t.Run("should reuse existing user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(existingUser(), nil).Once()
		f.issuer.EXPECT().Issue("user-1", "42").Return(&entity.IssuedToken{Token: "tok", ExpiresAt: expiry}, nil).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		require.NoError(t, err)
		assert.Equal(t, "tok", result.Token)
		assert.Equal(t, expiry, result.ExpiresAt)
		assert.Equal(t, "user-1", result.UserID)
		assert.False(t, result.Created)
	})

	t.Run("should register unseen user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(nil, errs.ErrUserNotFound).Once()
		f.expectTransaction(nil)

		var issuedFor string
		f.issuer.EXPECT().Issue(mock.Anything, "42").
			RunAndReturn(func(userID, tgID string) (*entity.IssuedToken, error) {
				issuedFor = userID
				return &entity.IssuedToken{Token: "tok"}, nil
			}).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, "42", result.TgID)
		assert.Equal(t, issuedFor, result.UserID)

		created := f.txRepo.Calls[0].Arguments.Get(1).(*entity.User)
		assert.Equal(t, "A B", created.Name)
		assert.Equal(t, "42", created.ReferCode)
		assert.Equal(t, entity.NoReferrer, created.ReferBy)
		assert.Equal(t, "ab", created.UsernameValue())
		assert.Equal(t, "0.00", created.GetBalance())
	})

	t.Run("should re-read after losing the registration race", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(nil, errs.ErrUserNotFound).Once()
		f.expectTransaction(errs.ErrDuplicateUser)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(existingUser(), nil).Once()
		f.issuer.EXPECT().Issue("user-1", "42").Return(&entity.IssuedToken{Token: "tok"}, nil).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		require.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
		assert.False(t, result.Created)
	})

	t.Run("should re-read after a serialization conflict", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(nil, errs.ErrUserNotFound).Once()
		f.expectTransaction(errs.ErrWriteConflict)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(existingUser(), nil).Once()
		f.issuer.EXPECT().Issue("user-1", "42").Return(&entity.IssuedToken{Token: "tok"}, nil).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		require.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("should give up after one failed re-read", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(nil, errs.ErrUserNotFound).Twice()
		f.expectTransaction(errs.ErrDuplicateUser)

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, result)
	})

	t.Run("should propagate storage failure instead of inventing a user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(nil, errors.New("connection refused")).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, result)
	})

	t.Run("should propagate begin failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(nil, errs.ErrUserNotFound).Once()
		f.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), errs.ErrStorageUnavailable).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, result)
	})

	t.Run("should refuse blocked user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectVerified(identity)
		blocked := existingUser()
		blocked.IsBlock = true
		f.userRepo.EXPECT().GetByTgID(mock.Anything, "42").Return(blocked, nil).Once()

		result, err := f.useCase.Authenticate(context.Background(), validInitData)

		assert.ErrorIs(t, err, errs.ErrUserBlocked)
		assert.Nil(t, result)
	})
}

func TestRefresh(t *testing.T) {
	claims := entity.SessionClaims{UserID: "user-1", TgID: "42", TokenID: "jti-1"}

	t.Run("should issue a new token for the same user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(existingUser(), nil).Once()
		f.issuer.EXPECT().Issue("user-1", "42").Return(&entity.IssuedToken{Token: "fresh"}, nil).Once()

		result, err := f.useCase.Refresh(context.Background(), claims)

		require.NoError(t, err)
		assert.Equal(t, "fresh", result.Token)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("should fail for a user that no longer exists", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.useCase.Refresh(context.Background(), claims)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should reject claims with a different Telegram ID", func(t *testing.T) {
		f := newAuthFixture(t)
		other := existingUser()
		other.TgID = "43"
		f.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(other, nil).Once()

		_, err := f.useCase.Refresh(context.Background(), claims)

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should refuse blocked user", func(t *testing.T) {
		f := newAuthFixture(t)
		blocked := existingUser()
		blocked.IsBlock = true
		f.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(blocked, nil).Once()

		_, err := f.useCase.Refresh(context.Background(), claims)

		assert.ErrorIs(t, err, errs.ErrUserBlocked)
	})

	t.Run("should map storage failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errors.New("timeout")).Once()

		_, err := f.useCase.Refresh(context.Background(), claims)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}
