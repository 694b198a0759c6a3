package model

import (
	"time"
)

// User represents the database model for vault users
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	TgID      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_users_tg_id"`
	Name      string    `gorm:"type:varchar(255);not null;default:''"`
	Username  *string   `gorm:"type:varchar(64)"`
	ReferCode string    `gorm:"type:varchar(32);not null"`
	ReferBy   string    `gorm:"type:varchar(32);not null;default:'0'"`
	Balance   int64     `gorm:"not null;default:0"` // Balance in cents
	JoinedAt  time.Time `gorm:"not null;index:idx_users_joined_at"`
	IsBlock   bool      `gorm:"not null;default:false"`
	IsDelete  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
