// Package testutil wires the package-level database, cache and config
// globals to in-process fakes so handler tests need no external services.
package testutil

import (
	"testing"

	"odishaconnect/backend/internal/cache"
	"odishaconnect/backend/internal/config"
	"odishaconnect/backend/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB points database.DB at a fresh in-memory SQLite database
// with all migrations applied. The previous handle is restored on cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "SetupTestDB: open sqlite")

	// A single connection keeps every query on the same :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err, "SetupTestDB: raw handle")
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "SetupTestDB: migrate")

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})
	return db
}

// SetupTestCache backs cache.C with a miniredis instance.
func SetupTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	cache.Connect(mr.Addr(), "", 0)
	t.Cleanup(func() { cache.C = nil })
	return mr
}

// SetupTestConfig installs a config with a fixed JWT secret.
func SetupTestConfig(t *testing.T) {
	t.Helper()

	prev := config.AppConfig
	config.AppConfig = &config.Config{
		ListenAddr: ":0",
		JWTSecret:  "test-secret",
	}
	t.Cleanup(func() { config.AppConfig = prev })
}
