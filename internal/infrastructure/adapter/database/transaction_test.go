package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/logger"
)

func newTestUser(t *testing.T, testDB *TestDBManager, tgID int64) *entity.User {
	t.Helper()
	user, err := entity.NewUserFromIdentity(entity.TelegramIdentity{TgID: tgID, FirstName: "Test"}, testDB.TimeProvider)
	require.NoError(t, err)
	return user
}

func TestUnitOfWork_Commit(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.SetupTestDB(t)
	uow := testDB.Manager.CreateUnitOfWork()
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	user := newTestUser(t, testDB, 111)
	require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))
	require.NoError(t, uow.Commit(txCtx))

	stored, err := uow.GetUserRepository(ctx).GetByTgID(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	assert.NoError(t, uow.Rollback(txCtx), "rolling back a committed transaction is a no-op")
}

func TestUnitOfWork_Rollback(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.SetupTestDB(t)
	uow := testDB.Manager.CreateUnitOfWork()
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, newTestUser(t, testDB, 222)))
	require.NoError(t, uow.Rollback(txCtx))

	_, err = uow.GetUserRepository(ctx).GetByTgID(ctx, "222")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUnitOfWork_WithoutTransaction(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.SetupTestDB(t)
	uow := testDB.Manager.CreateUnitOfWork()

	assert.ErrorIs(t, uow.Commit(context.Background()), errNoTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), errNoTransaction)
}

func TestManager_PingAndDialect(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())

	assert.ErrorIs(t, testDB.Manager.Ping(context.Background()), errNotConnected)
	assert.ErrorIs(t, testDB.Manager.Migrate(context.Background()), errNotConnected)

	testDB.SetupTestDB(t)

	assert.NoError(t, testDB.Manager.Ping(context.Background()))
	assert.Equal(t, DriverSQLite, testDB.Manager.Dialect())
	assert.Equal(t, testDB.Config.QueryTimeout, testDB.Manager.QueryTimeout())
	assert.GreaterOrEqual(t, testDB.Manager.PoolMetrics().MaxOpenConnections, 1)
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Config.Driver = "oracle"

	_, err := testDB.Manager.Connect(context.Background())
	assert.Error(t, err)
}

func TestMigrations_Idempotent(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.SetupTestDB(t)
	ctx := context.Background()

	version, err := testDB.Manager.MigrationManager().GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", version)

	require.NoError(t, testDB.Manager.Migrate(ctx))

	var rows int64
	require.NoError(t, testDB.Manager.DB().Table("migration_versions").Count(&rows).Error)
	assert.Equal(t, int64(2), rows)

	assert.True(t, testDB.Manager.DB().Migrator().HasIndex("users", "idx_users_tg_id"))
	assert.True(t, testDB.Manager.DB().Migrator().HasTable("vault_keys"))
}

func TestExtractSQLParts(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "users" where tg_id = ?`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "users" ("id") VALUES (?)`))
	assert.Equal(t, "", extractQueryType(`PRAGMA optimize`))

	assert.Equal(t, "users", extractTableName(`SELECT * FROM "users" WHERE tg_id = ?`))
	assert.Equal(t, "vault_keys", extractTableName(`INSERT INTO "vault_keys" ("id") VALUES (?)`))
	assert.Equal(t, "vault_keys", extractTableName(`UPDATE "vault_keys" SET "name"=?`))
	assert.Equal(t, "", extractTableName(`PRAGMA optimize`))
}

func TestTestDBManager_TruncateAllTables(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.SetupTestDB(t)

	testDB.CreateTestUser(t, "333", "Someone", false, false)
	require.Equal(t, int64(1), testDB.CountUsersByTgID(t, "333"))

	testDB.TruncateAllTables(t)
	assert.Equal(t, int64(0), testDB.CountUsersByTgID(t, "333"))
}
