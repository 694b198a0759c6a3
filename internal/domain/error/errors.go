package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingCredential   = 4000
	CodeMalformedCredential = 4001
	CodeInvalidKeyData      = 4002
	CodeUnauthorizedSource  = 4010
	CodeInvalidToken        = 4011
	CodeAdminRequired       = 4012
	CodeUserBlocked         = 4030
	CodeUserNotFound        = 4040
	CodeKeyNotFound         = 4041
	CodeDuplicateUser       = 4090
	CodeWriteConflict       = 4091
	CodeDuplicateKey        = 4092

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeServerMisconfigured = 5001
	CodeStorageUnavailable  = 5030
)

// Base error types
var (
	// ErrMissingCredential is returned when the login request carries no init data
	ErrMissingCredential = errors.New("credential is missing")

	// ErrMalformedCredential is returned when the init data cannot be parsed
	ErrMalformedCredential = errors.New("credential is malformed")

	// ErrUnauthorizedSource is returned when the init data signature does not match the bot token
	ErrUnauthorizedSource = errors.New("credential does not come from an authorized source")

	// ErrServerMisconfigured is returned when the token signing secret is not configured
	ErrServerMisconfigured = errors.New("server is misconfigured")

	// ErrStorageUnavailable is returned when the database cannot serve the request
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidToken is returned when a session token is absent, expired or badly signed
	ErrInvalidToken = errors.New("invalid token")

	// ErrAdminRequired is returned when an administrative route is called without the admin key
	ErrAdminRequired = errors.New("admin key required")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserBlocked is returned when a blocked user tries to obtain a session
	ErrUserBlocked = errors.New("user is blocked")

	// ErrDuplicateUser is returned when a user with the same Telegram ID already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrWriteConflict is returned when a concurrent transaction touched the same rows
	ErrWriteConflict = errors.New("concurrent write conflict")

	// ErrKeyNotFound is returned when the key doesn't exist or belongs to another user
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateKey is returned when a vault key violates a uniqueness constraint
	ErrDuplicateKey = errors.New("key already exists")

	// ErrInvalidKeyData is returned when key fields fail validation
	ErrInvalidKeyData = errors.New("invalid key data")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return CodeMissingCredential
	case errors.Is(err, ErrMalformedCredential):
		return CodeMalformedCredential
	case errors.Is(err, ErrInvalidKeyData):
		return CodeInvalidKeyData
	case errors.Is(err, ErrUnauthorizedSource):
		return CodeUnauthorizedSource
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrAdminRequired):
		return CodeAdminRequired
	case errors.Is(err, ErrUserBlocked):
		return CodeUserBlocked
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrKeyNotFound):
		return CodeKeyNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrWriteConflict):
		return CodeWriteConflict
	case errors.Is(err, ErrDuplicateKey):
		return CodeDuplicateKey
	case errors.Is(err, ErrServerMisconfigured):
		return CodeServerMisconfigured
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// CredentialError describes which login stage rejected the init data
type CredentialError struct {
	Stage string
	TgID  int64
	Err   error
	Cause error
}

// Error implements the error interface for CredentialError
func (e *CredentialError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("credential rejected at %s stage: %v: %v", e.Stage, e.Err, e.Cause)
	}
	return fmt.Sprintf("credential rejected at %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the domain error so errors.Is matches the sentinel
func (e *CredentialError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CredentialError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "credential_error",
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
	if e.TgID != 0 {
		fields["tg_id"] = e.TgID
	}
	if e.Cause != nil {
		fields["cause"] = e.Cause.Error()
	}
	return fields
}

// NewCredentialError creates a credential error for the given stage
func NewCredentialError(stage string, err, cause error) error {
	return &CredentialError{
		Stage: stage,
		Err:   err,
		Cause: cause,
	}
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrKeyNotFound)
}

// IsConflictError checks if the error means a concurrent writer got there first
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrWriteConflict)
}

// IsClientError checks if the error was caused by the caller rather than the server
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
