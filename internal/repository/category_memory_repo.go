package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"category_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// memoryCategoryRepository keeps categories in process. Handy for local runs
// and tests; nothing survives a restart.
type memoryCategoryRepository struct {
	mu     sync.RWMutex
	items  map[int]domain.Category
	nextID int
	log    *logrus.Logger
}

func NewMemoryCategoryRepository(logger *logrus.Logger) domain.CategoryRepository {
	return &memoryCategoryRepository{
		items:  make(map[int]domain.Category),
		nextID: 1,
		log:    logger,
	}
}

func (r *memoryCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.items))
	for _, c := range r.items {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *memoryCategoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		r.log.Warnf("Category with ID %d not found", id)
		return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
	}
	return &c, nil
}

func (r *memoryCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[category.ID]; !ok {
		category.ID = r.nextID
		r.nextID++
	}
	r.items[category.ID] = *category
	r.log.Debugf("Category saved with ID: %d, Name: %s", category.ID, category.Name)
	return nil
}

func (r *memoryCategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
	}
	delete(r.items, id)
	return nil
}
