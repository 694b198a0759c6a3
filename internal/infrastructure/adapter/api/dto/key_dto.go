package dto

import (
	"time"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
)

// CreateKeyRequest represents the API request for adding a key to the vault
type CreateKeyRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Type        string `json:"type" binding:"omitempty,oneof=access gift achievement asset"`
	Value       string `json:"value" binding:"max=255"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateKeyRequest represents a partial key update; absent fields stay unchanged
type UpdateKeyRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Type        *string `json:"type" binding:"omitempty,oneof=access gift achievement asset"`
	Value       *string `json:"value" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// ToChanges converts the request into domain key changes
func (r UpdateKeyRequest) ToChanges() entity.KeyChanges {
	return entity.KeyChanges{
		Name:        r.Name,
		Type:        r.Type,
		Value:       r.Value,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// KeyResponse represents a vault key in API responses
type KeyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewKeyResponse builds the API view of a key
func NewKeyResponse(key *entity.Key) KeyResponse {
	return KeyResponse{
		ID:          key.ID,
		Name:        key.Name,
		Type:        string(key.Type),
		Value:       key.Value,
		Description: key.Description,
		IsActive:    key.IsActive,
		CreatedAt:   key.CreatedAt,
		UpdatedAt:   key.UpdatedAt,
	}
}

// NewKeyResponses builds the API view of a list of keys
func NewKeyResponses(keys []*entity.Key) []KeyResponse {
	out := make([]KeyResponse, 0, len(keys))
	for _, key := range keys {
		out = append(out, NewKeyResponse(key))
	}
	return out
}
