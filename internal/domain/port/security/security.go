package security

import (
	"context"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
)

// CredentialVerifier turns raw Telegram init data into a verified identity
type CredentialVerifier interface {
	// Verify checks the signature (when a bot token is configured) and parses the payload
	//
	// Possible errors:
	// - ErrMalformedCredential: If the payload cannot be parsed or lacks a user
	// - ErrUnauthorizedSource: If the signature does not match or the payload expired
	Verify(ctx context.Context, initData string) (*entity.TelegramIdentity, error)

	// VerificationEnabled reports whether signatures are checked
	VerificationEnabled() bool
}

// TokenIssuer signs and parses session tokens
type TokenIssuer interface {
	// Ready reports whether a signing secret is configured
	Ready() bool

	// Issue signs a token for the given user
	//
	// Possible errors:
	// - ErrServerMisconfigured: If no signing secret is configured
	Issue(userID, tgID string) (*entity.IssuedToken, error)

	// Parse verifies a token and returns its claims
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, expired or signed with another secret
	Parse(token string) (*entity.SessionClaims, error)
}
