package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-telegram/bot"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/security"
)

// Init data field names
const (
	fieldUser     = "user"
	fieldAuthDate = "auth_date"
	fieldHash     = "hash"
)

var (
	errSignMissing    = errors.New("hash is missing")
	errSignInvalid    = errors.New("hash does not match the bot token")
	errExpired        = errors.New("init data is expired")
	errAuthDateFormat = errors.New("auth_date is not a unix timestamp")
	errUserMissingID  = errors.New("user id is missing")
)

// Verifier checks Telegram Mini App init data against the bot token
type Verifier struct {
	botToken     string
	maxAge       time.Duration
	timeProvider coreport.TimeProvider
}

// NewVerifier creates a verifier. An empty bot token disables the signature
// check; a zero maxAge disables the freshness check.
func NewVerifier(botToken string, maxAge time.Duration, timeProvider coreport.TimeProvider) *Verifier {
	return &Verifier{
		botToken:     botToken,
		maxAge:       maxAge,
		timeProvider: timeProvider,
	}
}

var _ security.CredentialVerifier = (*Verifier)(nil)

// VerificationEnabled reports whether signatures are checked
func (v *Verifier) VerificationEnabled() bool {
	return v.botToken != ""
}

// Verify authenticates the init data and extracts the Telegram identity
func (v *Verifier) Verify(_ context.Context, initData string) (*entity.TelegramIdentity, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, errs.NewCredentialError("format", errs.ErrMalformedCredential, err)
	}

	authDate, err := parseAuthDate(values.Get(fieldAuthDate))
	if err != nil {
		return nil, errs.NewCredentialError("format", errs.ErrMalformedCredential, err)
	}

	if v.VerificationEnabled() {
		if err := v.checkSignature(values); err != nil {
			return nil, err
		}
		if v.maxAge > 0 && v.timeProvider.Now().Sub(authDate) > v.maxAge {
			return nil, errs.NewCredentialError("expiry", errs.ErrUnauthorizedSource, errExpired)
		}
	}

	user, err := decodeUser(values.Get(fieldUser))
	if err != nil {
		return nil, errs.NewCredentialError("payload", errs.ErrMalformedCredential, err)
	}

	return &entity.TelegramIdentity{
		TgID:      user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		AuthDate:  authDate,
	}, nil
}

func (v *Verifier) checkSignature(values url.Values) error {
	if values.Get(fieldHash) == "" {
		return errs.NewCredentialError("signature", errs.ErrUnauthorizedSource, errSignMissing)
	}

	if _, ok := bot.ValidateWebappRequest(escapedCopy(values), v.botToken); ok {
		return nil
	}

	// The library also fails on an undecodable user; report that as a payload problem
	if _, err := decodeUser(values.Get(fieldUser)); err != nil {
		return errs.NewCredentialError("payload", errs.ErrMalformedCredential, err)
	}
	return errs.NewCredentialError("signature", errs.ErrUnauthorizedSource, errSignInvalid)
}

// escapedCopy returns the first value of every field query-escaped.
// ValidateWebappRequest unescapes each value and deletes the hash, so it gets
// its own copy in the form it expects.
func escapedCopy(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		out.Set(k, url.QueryEscape(v[0]))
	}
	return out
}

func parseAuthDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errAuthDateFormat
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds <= 0 {
		return time.Time{}, errAuthDateFormat
	}
	return time.Unix(seconds, 0).UTC(), nil
}

func decodeUser(raw string) (*bot.WebAppUser, error) {
	if raw == "" {
		return nil, errors.New("user field is missing")
	}

	var user bot.WebAppUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if user.ID == 0 {
		return nil, errUserMissingID
	}
	return &user, nil
}
