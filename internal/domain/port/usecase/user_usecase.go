package usecase

import (
	"context"
	"time"
)

// UserProfile is the public-safe projection returned to the user themselves
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  *string   `json:"username"`
	TgID      string    `json:"tgId"`
	ReferCode string    `json:"referCode"`
	JoinedAt  time.Time `json:"joinedAt"`
	IsBlock   bool      `json:"isBlock"`
}

// UserSummary is the row returned by the administrative listing
type UserSummary struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username *string   `json:"username"`
	TgID     string    `json:"tgId"`
	Balance  string    `json:"balance"` // Formatted with 2 decimal places
	JoinedAt time.Time `json:"joinedAt"`
	IsBlock  bool      `json:"isBlock"`
}

// UserUseCase defines read operations over users
type UserUseCase interface {
	// GetProfile resolves the Telegram ID carried by a session token to a profile
	// This is the operation behind GET /users/profile
	GetProfile(ctx context.Context, tgID string) (*UserProfile, error)

	// ListUsers returns all users that are not flagged as deleted
	ListUsers(ctx context.Context) ([]UserSummary, error)
}
