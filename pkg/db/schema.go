package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Table bootstrap for fresh databases. This is not a migration system: it
// only creates the table when it is missing.
const (
	postgresCategoriesTable = `CREATE TABLE IF NOT EXISTS categories (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL
)`
	sqliteCategoriesTable = `CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
)`
)

func EnsureCategoryTable(ctx context.Context, db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = postgresCategoriesTable
	case "sqlite":
		ddl = sqliteCategoriesTable
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create categories table: %w", err)
	}
	return nil
}
