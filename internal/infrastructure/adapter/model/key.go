package model

import (
	"time"

	"gorm.io/gorm"
)

// Key represents the database model for vault keys
type Key struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)"`
	UserID      string         `gorm:"type:varchar(36);not null;index:idx_vault_keys_user_id"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Type        string         `gorm:"type:varchar(20);not null"`
	Value       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:varchar(500);not null;default:''"`
	IsActive    bool           `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Key
func (Key) TableName() string {
	return "vault_keys"
}
