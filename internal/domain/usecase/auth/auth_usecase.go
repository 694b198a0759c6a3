package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/security"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/usecase"
)

// AuthUseCase is the identity gateway: it turns Telegram init data into a session token
type AuthUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	verifier     security.CredentialVerifier
	issuer       security.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	verifier security.CredentialVerifier,
	issuer security.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		uow:          uow,
		userRepo:     userRepo,
		verifier:     verifier,
		issuer:       issuer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.AuthUseCase = (*AuthUseCase)(nil)

// Authenticate validates the credential in order (presence, shape, server secret,
// signature, payload), resolves the user and signs a token for it.
// A known user whose account is blocked gets ErrUserBlocked, which maps to 403,
// and no token is issued.
func (a *AuthUseCase) Authenticate(ctx context.Context, credential string) (*usecase.LoginResult, error) {
	start := a.timeProvider.Now()

	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, errs.NewCredentialError("presence", errs.ErrMissingCredential, nil)
	}

	if err := checkShape(credential); err != nil {
		return nil, err
	}

	if !a.issuer.Ready() {
		a.logger.Error("Session signing secret is not configured", nil)
		return nil, errs.ErrServerMisconfigured
	}

	if !a.verifier.VerificationEnabled() {
		a.logger.Warn("Bot token not configured, accepting init data without signature verification", nil)
	}

	identity, err := a.verifier.Verify(ctx, credential)
	if err != nil {
		fields := map[string]any{"error": err.Error()}
		var credErr *errs.CredentialError
		if errors.As(err, &credErr) {
			fields = credErr.LogFields()
		}
		a.logger.Warn("Rejected login credential", fields)
		return nil, err
	}

	user, created, err := a.findOrCreate(ctx, *identity)
	if err != nil {
		return nil, err
	}

	if err := user.CanSignIn(); err != nil {
		a.logger.Warn("Blocked user attempted to log in", map[string]any{
			"user_id": user.ID,
			"tg_id":   user.TgID,
		})
		return nil, err
	}

	token, err := a.issuer.Issue(user.ID, user.TgID)
	if err != nil {
		a.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User logged in", map[string]any{
		"user_id":     user.ID,
		"tg_id":       user.TgID,
		"created":     created,
		"duration_ms": a.timeProvider.Since(start).Std().Milliseconds(),
	})

	return &usecase.LoginResult{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		UserID:    user.ID,
		TgID:      user.TgID,
		Created:   created,
	}, nil
}

// Refresh issues a fresh token for the user the claims point at
func (a *AuthUseCase) Refresh(ctx context.Context, claims entity.SessionClaims) (*usecase.LoginResult, error) {
	user, err := a.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			a.logger.Warn("Refresh requested for unknown user", map[string]any{"user_id": claims.UserID})
			return nil, err
		}
		return nil, storageFailure(err)
	}

	if user.TgID != claims.TgID {
		a.logger.Warn("Token Telegram ID does not match stored user", map[string]any{
			"user_id":     user.ID,
			"token_tg_id": claims.TgID,
		})
		return nil, errs.ErrInvalidToken
	}

	if err := user.CanSignIn(); err != nil {
		return nil, err
	}

	token, err := a.issuer.Issue(user.ID, user.TgID)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Session token refreshed", map[string]any{
		"user_id":      user.ID,
		"previous_jti": claims.TokenID,
	})

	return &usecase.LoginResult{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		UserID:    user.ID,
		TgID:      user.TgID,
	}, nil
}

// checkShape rejects payloads that cannot be init data before any crypto runs
func checkShape(credential string) error {
	values, err := url.ParseQuery(credential)
	if err != nil {
		return errs.NewCredentialError("shape", errs.ErrMalformedCredential, err)
	}
	if !values.Has("user") || !values.Has("auth_date") {
		return errs.NewCredentialError("shape", errs.ErrMalformedCredential,
			errors.New("user and auth_date fields are required"))
	}
	return nil
}

// findOrCreate returns the stored user for the identity, registering it on first login.
// A lost insert race is resolved by exactly one re-read.
func (a *AuthUseCase) findOrCreate(ctx context.Context, identity entity.TelegramIdentity) (*entity.User, bool, error) {
	tgID := identity.TgIDString()

	user, err := a.userRepo.GetByTgID(ctx, tgID)
	if err == nil {
		return user, false, nil
	}
	if !errs.IsUserNotFoundError(err) {
		a.logger.Error("Failed to look up user", map[string]any{"tg_id": tgID, "error": err.Error()})
		return nil, false, storageFailure(err)
	}

	newUser, err := entity.NewUserFromIdentity(identity, a.timeProvider)
	if err != nil {
		return nil, false, err
	}

	err = a.createUser(ctx, newUser)
	if err == nil {
		a.logger.Info("Registered new user", map[string]any{
			"user_id": newUser.ID,
			"tg_id":   tgID,
		})
		return newUser, true, nil
	}
	if !errs.IsConflictError(err) {
		a.logger.Error("Failed to create user", map[string]any{"tg_id": tgID, "error": err.Error()})
		return nil, false, storageFailure(err)
	}

	a.logger.Info("Concurrent registration detected, re-reading user", map[string]any{
		"tg_id":  tgID,
		"reason": err.Error(),
	})

	user, err = a.userRepo.GetByTgID(ctx, tgID)
	if err != nil {
		a.logger.Error("Re-read after registration conflict failed", map[string]any{
			"tg_id": tgID,
			"error": err.Error(),
		})
		return nil, false, fmt.Errorf("%w: re-read after conflict: %v", errs.ErrStorageUnavailable, err)
	}
	return user, false, nil
}

// createUser inserts the user inside a unit of work
func (a *AuthUseCase) createUser(ctx context.Context, user *entity.User) error {
	txCtx, err := a.uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := a.uow.Rollback(txCtx); rbErr != nil {
			a.logger.Warn("Failed to roll back user registration", map[string]any{"error": rbErr.Error()})
		}
	}()

	if err := a.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
		return err
	}
	if err := a.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

func storageFailure(err error) error {
	if errors.Is(err, errs.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
}
