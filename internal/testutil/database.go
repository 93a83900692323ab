// Package testutil provides shared fixtures for package tests: quiet loggers
// and throwaway in-memory databases with the categories table in place.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"category_service/internal/domain"
	"category_service/pkg/db"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewLogger returns a logger that discards everything.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// NewSQLiteDB opens an in-memory SQLite database with the categories table
// created. It is closed when the test ends.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	database, err := db.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close()
	})

	require.NoError(t, db.EnsureCategoryTable(ctx, database, "sqlite"))
	return database
}

// NewGormSQLiteDB opens an in-memory SQLite database through gorm and
// migrates the Category model into it.
func NewGormSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), db.GormConfig(gormlogger.Silent))
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every new connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, gdb.AutoMigrate(&domain.Category{}))
	return gdb
}

// SeedCategories saves each name in order and returns the stored categories.
func SeedCategories(t *testing.T, repo domain.CategoryRepository, names ...string) []domain.Category {
	t.Helper()

	seeded := make([]domain.Category, 0, len(names))
	for _, name := range names {
		category := &domain.Category{Name: name}
		require.NoError(t, repo.SaveCategory(context.Background(), category), "seeding %q", name)
		seeded = append(seeded, *category)
	}
	return seeded
}
