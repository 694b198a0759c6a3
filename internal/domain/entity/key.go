package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/google/uuid"
)

// Field limits for vault keys
const (
	MaxKeyNameLength        = 100
	MaxKeyDescriptionLength = 500
	MaxKeyValueLength       = 255
)

// KeyType classifies a vault key
type KeyType string

// Supported key types
const (
	KeyTypeAccess      KeyType = "access"
	KeyTypeGift        KeyType = "gift"
	KeyTypeAchievement KeyType = "achievement"
	KeyTypeAsset       KeyType = "asset"
)

// ParseKeyType validates a key type, defaulting to access when empty
func ParseKeyType(value string) (KeyType, error) {
	switch KeyType(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return KeyTypeAccess, nil
	case KeyTypeAccess:
		return KeyTypeAccess, nil
	case KeyTypeGift:
		return KeyTypeGift, nil
	case KeyTypeAchievement:
		return KeyTypeAchievement, nil
	case KeyTypeAsset:
		return KeyTypeAsset, nil
	default:
		return "", fmt.Errorf("%w: unknown type %q", errs.ErrInvalidKeyData, value)
	}
}

// Key is an item stored in a user's vault
type Key struct {
	ID          string
	UserID      string
	Name        string
	Type        KeyType
	Value       string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KeyChanges holds the optional fields of a key update; nil means unchanged
type KeyChanges struct {
	Name        *string
	Type        *string
	Value       *string
	Description *string
	IsActive    *bool
}

// IsEmpty reports whether the update carries no field at all
func (c KeyChanges) IsEmpty() bool {
	return c.Name == nil && c.Type == nil && c.Value == nil && c.Description == nil && c.IsActive == nil
}

// NewKey creates an active key for the owner, generating a value when none is given
func NewKey(userID, name, keyType, value, description string, timeProvider coreport.TimeProvider) (*Key, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: owner is required", errs.ErrInvalidKeyData)
	}

	parsedType, err := ParseKeyType(keyType)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	key := &Key{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Type:        parsedType,
		Value:       strings.TrimSpace(value),
		Description: strings.TrimSpace(description),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if key.Value == "" {
		generated, err := GenerateKeyValue(now)
		if err != nil {
			return nil, err
		}
		key.Value = generated
	}

	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

// Apply merges the changes into the key and validates the result
func (k *Key) Apply(changes KeyChanges, timeProvider coreport.TimeProvider) error {
	if changes.Name != nil {
		k.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.Type != nil {
		parsedType, err := ParseKeyType(*changes.Type)
		if err != nil {
			return err
		}
		k.Type = parsedType
	}
	if changes.Value != nil {
		k.Value = strings.TrimSpace(*changes.Value)
	}
	if changes.Description != nil {
		k.Description = strings.TrimSpace(*changes.Description)
	}
	if changes.IsActive != nil {
		k.IsActive = *changes.IsActive
	}

	if err := k.Validate(); err != nil {
		return err
	}
	k.UpdatedAt = timeProvider.Now()
	return nil
}

// Validate checks the field limits of a key
func (k *Key) Validate() error {
	nameLen := utf8.RuneCountInString(k.Name)
	if nameLen == 0 {
		return fmt.Errorf("%w: name is required", errs.ErrInvalidKeyData)
	}
	if nameLen > MaxKeyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", errs.ErrInvalidKeyData, MaxKeyNameLength)
	}
	if k.Value == "" {
		return fmt.Errorf("%w: value is required", errs.ErrInvalidKeyData)
	}
	if utf8.RuneCountInString(k.Value) > MaxKeyValueLength {
		return fmt.Errorf("%w: value exceeds %d characters", errs.ErrInvalidKeyData, MaxKeyValueLength)
	}
	if utf8.RuneCountInString(k.Description) > MaxKeyDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", errs.ErrInvalidKeyData, MaxKeyDescriptionLength)
	}
	return nil
}

// GenerateKeyValue returns a value of the form KEY_<unix millis>_<6 hex chars>
func GenerateKeyValue(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate key value: %w", err)
	}
	return fmt.Sprintf("KEY_%d_%s", now.UnixMilli(), strings.ToUpper(hex.EncodeToString(suffix))), nil
}
