package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one schema version and the change that produces it
type step struct {
	version string
	details string
	run     func(ctx context.Context, db *gorm.DB) error
}

// steps are applied in order; a database at a given version runs every later step
var steps = []step{
	{
		version: "1.0.0",
		details: "users with unique Telegram ID",
		run: func(ctx context.Context, db *gorm.DB) error {
			return db.WithContext(ctx).AutoMigrate(&model.User{})
		},
	},
	{
		version: "1.1.0",
		details: "vault keys",
		run: func(ctx context.Context, db *gorm.DB) error {
			return db.WithContext(ctx).AutoMigrate(&model.Key{})
		},
	},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll applies every pending step, then makes sure all indexes exist
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	pending, err := pendingSteps(currentVersion)
	if err != nil {
		return err
	}

	for _, s := range pending {
		m.logger.Info("Applying schema migration", map[string]any{
			"from":    currentVersion,
			"version": s.version,
			"details": s.details,
		})
		if err := s.run(ctx, m.db); err != nil {
			m.logger.Error("Schema migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migrate to %s: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			return fmt.Errorf("record version %s: %w", s.version, err)
		}
		currentVersion = s.version
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	m.advancedIndexMgr.CreatePerformanceTweaks(ctx)

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": currentVersion,
		"applied": len(pending),
	})
	return nil
}

// GetCurrentVersion gets the current migration version, empty for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		Dialect:   m.db.Dialector.Name(),
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

func pendingSteps(currentVersion string) ([]step, error) {
	if currentVersion == "" {
		return steps, nil
	}
	for i, s := range steps {
		if s.version == currentVersion {
			return steps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("unknown schema version %q", currentVersion)
}
