package repository

import (
	"context"
	"errors"
	"fmt"

	"category_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &gormCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	r.log.Debugf("Retrieved %d categories via gorm", len(categories))
	return categories, nil
}

func (r *gormCategoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return &category, nil
}

// SaveCategory updates the row with the category's ID when one exists and
// creates a new row with a generated ID otherwise.
func (r *gormCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	db := r.db.WithContext(ctx)
	var err error
	if category.ID != 0 {
		result := db.Model(&domain.Category{}).Where("id = ?", category.ID).Update("name", category.Name)
		err = result.Error
		if err == nil && result.RowsAffected == 0 {
			category.ID = 0
		}
	}
	if err == nil && category.ID == 0 {
		err = db.Create(category).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			r.log.Warnf("Attempted to save category with duplicate value: %s", category.Name)
			return fmt.Errorf("category '%s': %w", category.Name, domain.ErrDuplicateCategory)
		}
		r.log.Errorf("Failed to save category '%s': %v", category.Name, err)
		return fmt.Errorf("could not save category: %w", err)
	}
	r.log.Debugf("Category saved with ID: %d, Name: %s", category.ID, category.Name)
	return nil
}

func (r *gormCategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if result.Error != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, result.Error)
		return fmt.Errorf("could not delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
	}
	return nil
}
