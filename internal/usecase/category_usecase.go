package usecase

import (
	"context"
	"errors"
	"fmt"

	"category_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// CategoryUseCase is the store the delivery layer talks to. Validation is the
// caller's job; this layer logs and delegates to the repository.
type CategoryUseCase interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	SaveCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	uc.log.Info("Use Case: Attempting to list all categories")

	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	uc.log.Infof("Use Case: Attempting to get category with ID %d", id)
	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category retrieved successfully for ID %d", id)
	return category, nil
}

func (uc *categoryUseCase) SaveCategory(ctx context.Context, category *domain.Category) error {
	uc.log.Infof("Use Case: Attempting to save category ID %d with name '%s'", category.ID, category.Name)
	if err := uc.categoryRepo.SaveCategory(ctx, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to save category '%s': %v", category.Name, err)
		return err
	}

	uc.log.Infof("Use Case: Category '%s' saved with ID %d", category.Name, category.ID)
	return nil
}

// DeleteCategory treats a missing row as already deleted.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)
	err := uc.categoryRepo.DeleteCategory(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			uc.log.Warnf("Use Case: Category ID %d already absent, nothing to delete", id)
			return nil
		}
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}
