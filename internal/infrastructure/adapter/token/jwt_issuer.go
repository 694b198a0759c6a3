package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/security"
)

// Claims is the payload of a session token. sub holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
	TgID string `json:"tg_id"`
}

// JWTIssuer signs and verifies HS256 session tokens
type JWTIssuer struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates an issuer. An empty secret leaves the issuer not ready.
func NewJWTIssuer(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

var _ security.TokenIssuer = (*JWTIssuer)(nil)

// Ready reports whether a signing secret is configured
func (i *JWTIssuer) Ready() bool {
	return len(i.secret) > 0
}

// Issue signs a token for the user
func (i *JWTIssuer) Issue(userID, tgID string) (*entity.IssuedToken, error) {
	if !i.Ready() {
		return nil, errs.ErrServerMisconfigured
	}

	now := i.timeProvider.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.NewString(),
		},
		TgID: tgID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: sign session token: %v", errs.ErrInternalServer, err)
	}

	return &entity.IssuedToken{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.UTC(),
	}, nil
}

// Parse verifies the signature, algorithm, issuer and expiry of a token.
// Claim times are returned in UTC.
func (i *JWTIssuer) Parse(tokenString string) (*entity.SessionClaims, error) {
	if !i.Ready() {
		return nil, errs.ErrServerMisconfigured
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.TgID == "" {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidToken, errors.New("subject or tg_id claim is missing"))
	}

	session := &entity.SessionClaims{
		UserID:  claims.Subject,
		TgID:    claims.TgID,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.UTC()
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.UTC()
	}
	return session, nil
}
