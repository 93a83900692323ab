package domain

import "context"

// CategoryRepository is the persistence contract every store implements.
// GetCategoryByID wraps ErrCategoryNotFound when no row matches.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	SaveCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int) error
}
