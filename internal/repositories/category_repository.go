package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"statement-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryName = errors.New("category name cannot be empty")
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category registry repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return &category, nil
}

// EnsureByName reads first and only inserts a name it has not seen. The insert
// relies on the unique index on name: it is a no-op when a concurrent caller
// already created the row, and the read that follows returns the surviving id.
func (r *categoryRepository) EnsureByName(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCategoryName
	}

	existing, err := r.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to ensure category %q: %w", name, err)
	}

	var category models.Category
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := models.Category{Name: name}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&candidate).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", name).First(&category).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure category %q: %w", name, err)
	}

	return &category, nil
}

// SeedDefaults inserts the fixed categories that are not present yet.
func (r *categoryRepository) SeedDefaults(ctx context.Context) error {
	defaults := models.DefaultCategories()
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	// Explicit ids do not advance a Postgres serial.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("SELECT setval(pg_get_serial_sequence('categories', 'id'), (SELECT MAX(id) FROM categories))").Error; err != nil {
			return fmt.Errorf("failed to advance category id sequence: %w", err)
		}
	}

	return nil
}
