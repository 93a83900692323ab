package db

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm opens a gorm session over PostgreSQL. Driver errors are translated
// so duplicate keys surface as gorm.ErrDuplicatedKey. The returned *sql.DB is
// the pool behind the session; closing it closes the session.
func OpenGorm(ctx context.Context, databaseURL string, logLevel logger.LogLevel) (*gorm.DB, *sql.DB, error) {
	if databaseURL == "" {
		return nil, nil, fmt.Errorf("database URL cannot be empty")
	}
	return openGorm(ctx, postgres.Open(databaseURL), logLevel)
}

func openGorm(ctx context.Context, dialector gorm.Dialector, logLevel logger.LogLevel) (*gorm.DB, *sql.DB, error) {
	gdb, err := gorm.Open(dialector, GormConfig(logLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying connection: %w", err)
	}
	if err := ping(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return gdb, sqlDB, nil
}

func GormConfig(logLevel logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}
}
