package migrate

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default path", func(t *testing.T) {
		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("custom path from env", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "custom/migrations")
		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrate(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("nil database", func(t *testing.T) {
		err := Migrate(nil, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "/non/existent/path")
		err := Migrate(createTestDB(t), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migrations directory does not exist")
	})

	t.Run("non-postgres database is rejected", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", t.TempDir())
		err := Migrate(createTestDB(t), logger)
		require.Error(t, err)
		assert.True(t,
			strings.Contains(err.Error(), "failed to create postgres driver") ||
				strings.Contains(err.Error(), "failed to create migrate instance"),
			"unexpected error: %s", err.Error())
	})
}

func TestRepositoryMigrationsArePaired(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "../../../migrations")
	ups, err := filepathGlob(GetMigrationsPath(), "*.up.sql")
	require.NoError(t, err)
	downs, err := filepathGlob(GetMigrationsPath(), "*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func filepathGlob(dir, pattern string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, pattern))
}
