package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"statement-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	repo TransactionRepositoryInterface
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = newLedgerDB(s.T())
	s.repo = NewTransactionRepository(s.db)
}

func (s *TransactionRepositoryTestSuite) newTransaction(date, txType string, amount float64) models.Transaction {
	return models.Transaction{
		Date:            date,
		Description:     gofakeit.Sentence(3),
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: txType,
	}
}

func (s *TransactionRepositoryTestSuite) count() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Count(&n).Error)
	return n
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_InsertsEveryRow() {
	batch := []models.Transaction{
		s.newTransaction("2024-01-15", models.TransactionTypeDebit, -5.50),
		s.newTransaction("2024-01-16", models.TransactionTypeCredit, 2000),
	}
	batch[0].CategoryID = intPtr(models.CategoryIDDining)
	batch[0].CategoryConfidence = floatPtr(0.91)

	inserted, err := s.repo.CreateBatch(s.ctx, batch, nil)

	s.Require().NoError(err)
	s.Len(inserted, 2)
	s.Equal(int64(2), s.count())
	s.Zero(batch[0].ID, "the caller's slice is not mutated")

	stored, err := s.repo.List(s.ctx, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(stored, 2)
	s.Equal("2024-01-15", stored[0].DateKey())
	s.True(stored[0].Amount.Equal(decimal.RequireFromString("-5.50")))
	s.Require().NotNil(stored[0].CategoryID)
	s.Equal(models.CategoryIDDining, *stored[0].CategoryID)
	s.Require().NotNil(stored[0].CategoryConfidence)
	s.InDelta(0.91, *stored[0].CategoryConfidence, 1e-9)
	s.Nil(stored[1].CategoryID)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_EmptyBatch() {
	inserted, err := s.repo.CreateBatch(s.ctx, nil, nil)

	s.NoError(err)
	s.Empty(inserted)
	s.Zero(s.count())
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_AllOrNothing() {
	db := newBareDB(s.T())
	s.Require().NoError(db.Exec(`CREATE TABLE transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		description TEXT CHECK (length(description) < 20),
		amount NUMERIC NOT NULL,
		transaction_type TEXT NOT NULL,
		category_id INTEGER,
		category_confidence REAL
	)`).Error)
	repo := NewTransactionRepository(db)

	batch := []models.Transaction{
		s.newTransaction("2024-01-15", models.TransactionTypeDebit, -1),
		s.newTransaction("2024-01-16", models.TransactionTypeDebit, -2),
	}
	batch[0].Description = "short"
	batch[1].Description = strings.Repeat("x", 40)

	_, err := repo.CreateBatch(s.ctx, batch, nil)

	s.Require().Error(err)
	var n int64
	s.Require().NoError(db.Table("transactions").Count(&n).Error)
	s.Zero(n)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_RejectsInvalidRows() {
	tests := []struct {
		name    string
		mutate  func(*models.Transaction)
		wantErr error
	}{
		{"unnormalized date", func(t *models.Transaction) { t.Date = "15/01/2024" }, models.ErrInvalidTransactionDate},
		{"confidence above one", func(t *models.Transaction) { t.CategoryConfidence = floatPtr(1.5) }, models.ErrInvalidConfidence},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			batch := []models.Transaction{
				s.newTransaction("2024-01-15", models.TransactionTypeDebit, -1),
				s.newTransaction("2024-01-16", models.TransactionTypeCredit, 20),
			}
			tt.mutate(&batch[1])

			inserted, err := s.repo.CreateBatch(s.ctx, batch, nil)

			s.Nil(inserted)
			s.ErrorIs(err, tt.wantErr)
			s.Contains(err.Error(), "index 1")
			s.Zero(s.count())
		})
	}
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_MissingColumnIsClassified() {
	db := newBareDB(s.T())
	s.Require().NoError(db.Exec(`CREATE TABLE transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		description TEXT,
		amount NUMERIC NOT NULL,
		transaction_type TEXT NOT NULL,
		category_id INTEGER
	)`).Error)
	repo := NewTransactionRepository(db)
	batch := []models.Transaction{s.newTransaction("2024-02-01", models.TransactionTypeCredit, 10)}

	_, err := repo.CreateBatch(s.ctx, batch, nil)

	s.Require().Error(err)
	var mce *MissingColumnError
	s.Require().True(errors.As(err, &mce))
	s.Equal("category_confidence", mce.Column)
	s.ErrorIs(err, ErrMissingColumn)

	inserted, err := repo.CreateBatch(s.ctx, batch, []string{mce.Column})
	s.Require().NoError(err)
	s.Len(inserted, 1)
}

func (s *TransactionRepositoryTestSuite) TestList_Filters() {
	batch := []models.Transaction{
		s.newTransaction("2024-01-05", models.TransactionTypeDebit, -12),
		s.newTransaction("2024-01-20", "credit", 300),
		s.newTransaction("2024-02-02", models.TransactionTypeDebit, -40),
	}
	batch[2].CategoryID = intPtr(models.CategoryIDGroceries)
	_, err := s.repo.CreateBatch(s.ctx, batch, nil)
	s.Require().NoError(err)

	testCases := []struct {
		description string
		filters     models.TransactionFilters
		expected    int
	}{
		{"no filters", models.TransactionFilters{}, 3},
		{"type is case-insensitive", models.TransactionFilters{Type: "CREDIT"}, 1},
		{"date range inclusive", models.TransactionFilters{StartDate: "2024-01-05", EndDate: "2024-01-20"}, 2},
		{"by category", models.TransactionFilters{CategoryID: intPtr(models.CategoryIDGroceries)}, 1},
		{"uncategorized only", models.TransactionFilters{UncategorizedOnly: true}, 2},
		{"limit", models.TransactionFilters{Limit: 1}, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			found, err := s.repo.List(s.ctx, tc.filters)
			s.Require().NoError(err)
			s.Len(found, tc.expected)
		})
	}
}

func (s *TransactionRepositoryTestSuite) TestListUncategorizedAndLabeled() {
	batch := []models.Transaction{
		s.newTransaction("2024-03-01", models.TransactionTypeDebit, -3),
		s.newTransaction("2024-03-02", models.TransactionTypeDebit, -4),
	}
	batch[1].CategoryID = intPtr(models.CategoryIDTransit)
	_, err := s.repo.CreateBatch(s.ctx, batch, nil)
	s.Require().NoError(err)

	uncategorized, err := s.repo.ListUncategorized(s.ctx)
	s.Require().NoError(err)
	s.Len(uncategorized, 1)
	s.Nil(uncategorized[0].CategoryID)

	labeled, err := s.repo.ListLabeled(s.ctx)
	s.Require().NoError(err)
	s.Len(labeled, 1)
	s.Equal(models.CategoryIDTransit, *labeled[0].CategoryID)
}

func (s *TransactionRepositoryTestSuite) TestUpdateCategory() {
	_, err := s.repo.CreateBatch(s.ctx, []models.Transaction{s.newTransaction("2024-04-01", models.TransactionTypeDebit, -9)}, nil)
	s.Require().NoError(err)
	stored, err := s.repo.ListUncategorized(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)

	s.Require().NoError(s.repo.UpdateCategory(s.ctx, stored[0].ID, models.CategoryIDShopping, floatPtr(0.7)))

	labeled, err := s.repo.ListLabeled(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(labeled, 1)
	s.Equal(models.CategoryIDShopping, *labeled[0].CategoryID)
	s.InDelta(0.7, *labeled[0].CategoryConfidence, 1e-9)

	s.Require().NoError(s.repo.UpdateCategory(s.ctx, stored[0].ID, models.CategoryIDHome, nil))
	labeled, err = s.repo.ListLabeled(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.CategoryIDHome, *labeled[0].CategoryID)
	s.InDelta(0.7, *labeled[0].CategoryConfidence, 1e-9, "nil confidence leaves the stored value")
}

func (s *TransactionRepositoryTestSuite) TestUpdateCategory_NotFound() {
	err := s.repo.UpdateCategory(s.ctx, 9999, models.CategoryIDOther, nil)
	s.ErrorIs(err, ErrTransactionNotFound)
}
