package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
)

// TestDBManager provides a migrated SQLite database in a temporary directory
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager backed by a fresh SQLite file
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Database = filepath.Join(t.TempDir(), "vault_test.db")
	config.MaxOpenConns = 10
	config.MaxIdleConns = 5
	config.QueryTimeout = 5 * time.Second
	config.RetryAttempts = 1
	config.RetryDelay = 0

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// SetupTestDB connects, migrates and registers cleanup with t
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables removes every user and key row
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{"vault_keys", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}

// CreateTestUser inserts a user row directly and returns it
func (m *TestDBManager) CreateTestUser(t *testing.T, tgID, name string, blocked, deleted bool) *model.User {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:        uuid.NewString(),
		TgID:      tgID,
		Name:      name,
		ReferCode: tgID,
		ReferBy:   "0",
		JoinedAt:  now,
		IsBlock:   blocked,
		IsDelete:  deleted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// gorm skips zero values of columns with a default, so the flags are written explicitly
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	if err := m.Manager.DB().Model(&model.User{}).Where("id = ?", user.ID).
		Updates(map[string]any{"is_block": blocked, "is_delete": deleted}).Error; err != nil {
		t.Fatalf("Failed to set test user flags: %v", err)
	}
	return &user
}

// CountUsersByTgID returns the number of rows stored for a Telegram ID
func (m *TestDBManager) CountUsersByTgID(t *testing.T, tgID string) int64 {
	t.Helper()

	var count int64
	if err := m.Manager.DB().Model(&model.User{}).Where("tg_id = ?", tgID).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	return count
}
