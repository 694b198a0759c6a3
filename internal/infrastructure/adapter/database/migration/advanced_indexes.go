package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager creates the secondary indexes gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// Both PostgreSQL and SQLite accept partial indexes with this syntax
var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		name: "idx_users_active_joined_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_users_active_joined_at
			ON users (joined_at) WHERE is_delete = false`,
	},
	{
		name: "idx_vault_keys_user_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_vault_keys_user_created
			ON vault_keys (user_id, created_at) WHERE deleted_at IS NULL`,
	},
}

// CreateAdvancedIndexes creates partial indexes for the directory listing and key lookups
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Debug("Secondary indexes ensured", map[string]any{"count": len(advancedIndexes)})
	return nil
}

// CreatePerformanceTweaks applies dialect-specific tuning. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	var statements []string
	switch m.db.Dialector.Name() {
	case "postgres":
		statements = []string{
			`ALTER TABLE users SET (fillfactor = 90)`,
			`ALTER TABLE users ALTER COLUMN tg_id SET STATISTICS 1000`,
		}
	case "sqlite":
		statements = []string{`PRAGMA optimize`}
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
