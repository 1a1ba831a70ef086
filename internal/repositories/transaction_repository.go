package repositories

import (
	"context"
	"errors"
	"fmt"

	"statement-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction, omit []string) ([]models.Transaction, error) {
	if len(transactions) == 0 {
		return []models.Transaction{}, nil
	}

	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction at index %d: %w", i, err)
		}
	}

	batch := models.CloneTransactions(transactions)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(omit) > 0 {
			tx = tx.Omit(omit...)
		}
		return tx.Create(&batch).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", classifyWriteError(err))
	}

	return batch, nil
}

func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})

	if filters.StartDate != "" {
		query = query.Where("date >= ?", filters.StartDate)
	}
	if filters.EndDate != "" {
		query = query.Where("date <= ?", filters.EndDate)
	}
	if filters.Type != "" {
		query = query.Where("LOWER(transaction_type) = LOWER(?)", filters.Type)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.UncategorizedOnly {
		query = query.Where("category_id IS NULL")
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var transactions []models.Transaction
	if err := query.Order("date ASC").Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) ListUncategorized(ctx context.Context) ([]models.Transaction, error) {
	return r.List(ctx, models.TransactionFilters{UncategorizedOnly: true})
}

// ListLabeled returns rows that carry a category, for building training data.
func (r *transactionRepository) ListLabeled(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("category_id IS NOT NULL").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list labeled transactions: %w", err)
	}
	return transactions, nil
}

// UpdateCategory sets the category of one row. A nil confidence leaves the
// stored confidence untouched.
func (r *transactionRepository) UpdateCategory(ctx context.Context, id uint, categoryID int, confidence *float64) error {
	updates := map[string]interface{}{
		"category_id": categoryID,
	}
	if confidence != nil {
		updates["category_confidence"] = *confidence
	}

	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction category: %w", classifyWriteError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
