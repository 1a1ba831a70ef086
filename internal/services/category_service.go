package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	storeTimeout time.Duration
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, storeTimeout time.Duration) CategoryServiceInterface {
	return &categoryService{categoryRepo: categoryRepo, storeTimeout: storeTimeout}
}

func (s *categoryService) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ListCategories returns the registry ordered by id.
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// SeedDefaultCategories inserts the fixed categories that are not yet present.
func (s *categoryService) SeedDefaultCategories(ctx context.Context) error {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.categoryRepo.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}
