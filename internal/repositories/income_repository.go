package repositories

import (
	"context"
	"errors"
	"fmt"

	"statement-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrIncomeNotFound  = errors.New("monthly income not found")
	ErrInvalidMonthKey = errors.New("month key must be MM-YY")
	ErrNegativeIncome  = errors.New("monthly income cannot be negative")
)

type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new monthly income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &incomeRepository{
		db: db,
	}
}

func (r *incomeRepository) Upsert(ctx context.Context, month string, amount decimal.Decimal) (*models.MonthlyIncome, error) {
	if !models.IsValidMonthKey(month) {
		return nil, ErrInvalidMonthKey
	}
	if amount.IsNegative() {
		return nil, ErrNegativeIncome
	}

	bucket := models.MonthlyIncome{
		Month:  month,
		Income: amount.Round(2),
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"income"}),
	}).Create(&bucket).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert income for %s: %w", month, classifyWriteError(err))
	}

	return &bucket, nil
}

func (r *incomeRepository) GetByMonth(ctx context.Context, month string) (*models.MonthlyIncome, error) {
	var bucket models.MonthlyIncome
	if err := r.db.WithContext(ctx).Where("month = ?", month).First(&bucket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income for %s: %w", month, err)
	}
	return &bucket, nil
}

func (r *incomeRepository) List(ctx context.Context) ([]models.MonthlyIncome, error) {
	var buckets []models.MonthlyIncome
	if err := r.db.WithContext(ctx).Order("month ASC").Find(&buckets).Error; err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return buckets, nil
}

// Total sums every stored bucket.
func (r *incomeRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	buckets, err := r.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, bucket := range buckets {
		total = total.Add(bucket.Income)
	}
	return total.Round(2), nil
}
