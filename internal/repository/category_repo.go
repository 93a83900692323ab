package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"category_service/internal/domain"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

const (
	listCategoriesQuery = `SELECT id, name FROM categories ORDER BY id ASC`
	getCategoryQuery    = `SELECT id, name FROM categories WHERE id = $1`
	insertCategoryQuery = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	updateCategoryQuery = `UPDATE categories SET name = $1 WHERE id = $2`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`
)

// sqlCategoryRepository speaks the subset of SQL shared by PostgreSQL and
// SQLite, so one implementation serves both drivers.
type sqlCategoryRepository struct {
	db      *sql.DB
	log     *logrus.Logger
	dialect string
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &sqlCategoryRepository{
		db:      db,
		log:     logger,
		dialect: "postgres",
	}
}

func NewSQLiteCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &sqlCategoryRepository{
		db:      db,
		log:     logger,
		dialect: "sqlite",
	}
}

func (r *sqlCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Retrieved %d categories from %s", len(categories), r.dialect)
	return categories, nil
}

func (r *sqlCategoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, getCategoryQuery, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	r.log.Debugf("Category retrieved successfully with ID: %d", id)
	return category, nil
}

// SaveCategory updates the row with the category's ID when one exists.
// Otherwise it inserts and writes the generated ID back, so an unknown ID
// never reaches the table.
func (r *sqlCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	updated, err := r.updateCategory(ctx, category)
	if err == nil && !updated {
		err = r.db.QueryRowContext(ctx, insertCategoryQuery, category.Name).Scan(&category.ID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warnf("Attempted to save category with duplicate value: %s", category.Name)
			return fmt.Errorf("category '%s': %w", category.Name, domain.ErrDuplicateCategory)
		}
		r.log.Errorf("Failed to save category '%s': %v", category.Name, err)
		return fmt.Errorf("could not save category: %w", err)
	}
	r.log.Debugf("Category saved with ID: %d, Name: %s", category.ID, category.Name)
	return nil
}

func (r *sqlCategoryRepository) updateCategory(ctx context.Context, category *domain.Category) (bool, error) {
	if category.ID == 0 {
		return false, nil
	}
	result, err := r.db.ExecContext(ctx, updateCategoryQuery, category.Name, category.ID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *sqlCategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteCategoryQuery, id)
	if err != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}

	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
	}

	r.log.Debugf("Category deleted successfully with ID: %d", id)
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
