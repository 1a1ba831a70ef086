package repositories

import (
	"context"

	"statement-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for the transactions record set
type TransactionRepositoryInterface interface {
	// CreateBatch inserts every row in one database transaction, leaving out
	// the named columns. Either all rows are committed or none are.
	CreateBatch(ctx context.Context, transactions []models.Transaction, omit []string) ([]models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
	ListUncategorized(ctx context.Context) ([]models.Transaction, error)
	ListLabeled(ctx context.Context) ([]models.Transaction, error)
	UpdateCategory(ctx context.Context, id uint, categoryID int, confidence *float64) error
}

// CategoryRepositoryInterface defines the contract for the category registry
type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	// EnsureByName inserts the category if no row has that exact name and
	// returns the stored row either way. Safe under concurrent callers.
	EnsureByName(ctx context.Context, name string) (*models.Category, error)
	SeedDefaults(ctx context.Context) error
}

// IncomeRepositoryInterface defines the contract for monthly income buckets
type IncomeRepositoryInterface interface {
	// Upsert sets the bucket for month to amount in a single statement.
	Upsert(ctx context.Context, month string, amount decimal.Decimal) (*models.MonthlyIncome, error)
	GetByMonth(ctx context.Context, month string) (*models.MonthlyIncome, error)
	List(ctx context.Context) ([]models.MonthlyIncome, error)
	Total(ctx context.Context) (decimal.Decimal, error)
}

// GoalRepositoryInterface defines the contract for savings goals
type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, id int) (*models.Goal, error)
	List(ctx context.Context) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	UpdateAmountSaved(ctx context.Context, id int, amountSaved decimal.Decimal) error
	Delete(ctx context.Context, id int) error
}
