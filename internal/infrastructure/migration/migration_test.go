package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/back-informatica/chamados/internal/shared/config"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "chamados.db")), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openSQLite(t)
	s, err := NewGooseStrategy(config.DriverSQLite, logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.Migrate(db))
	assert.True(t, db.Migrator().HasTable("tickets"))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasIndex("tickets", "idx_tickets_client_created"))

	version, err := s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	// running again is a no-op
	require.NoError(t, s.Migrate(db))

	require.NoError(t, s.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("tickets"))

	version, err = s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestGooseStrategy_SchemaAcceptsNullUsernames(t *testing.T) {
	db := openSQLite(t)
	s, err := NewGooseStrategy(config.DriverSQLite, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Migrate(db))

	insert := "INSERT INTO users (id, created_at, updated_at) VALUES (?, 1, 1)"
	require.NoError(t, db.Exec(insert, "uid-1").Error)
	require.NoError(t, db.Exec(insert, "uid-2").Error)

	named := "INSERT INTO users (id, username, created_at, updated_at) VALUES (?, 'maria', 1, 1)"
	require.NoError(t, db.Exec(named, "uid-3").Error)
	assert.Error(t, db.Exec(named, "uid-4").Error)
}

func TestNewGooseStrategy_UnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy(config.DriverMongo, logger.NewNop())
	assert.ErrorContains(t, err, "no migration dialect")
}

func TestManager_DebugUsesAutoMigrate(t *testing.T) {
	m, err := NewManager("debug", config.DriverSQLite, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	db := openSQLite(t)
	require.NoError(t, m.Migrate(db))
	assert.True(t, db.Migrator().HasTable("tickets"))

	m, err = NewManager("release", config.DriverPostgres, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "goose", m.GetStrategy().GetName())
}

func TestGenerator_CreateMigration(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, logger.NewNop())
	g.now = func() time.Time { return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC) }

	path, err := g.CreateMigration("Add Ticket Priority")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20250310143000_add_ticket_priority.sql"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "-- +goose Up"))
	assert.True(t, strings.Contains(string(content), "-- +goose Down"))

	_, err = g.CreateMigration("!!!")
	assert.Error(t, err)
}
