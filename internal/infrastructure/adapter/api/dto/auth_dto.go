package dto

import "time"

// LoginRequest carries the raw Telegram init data string
type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
