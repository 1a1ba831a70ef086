package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type IncomeRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo IncomeRepositoryInterface
}

func TestIncomeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeRepositoryTestSuite))
}

func (s *IncomeRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewIncomeRepository(newLedgerDB(s.T()))
}

func (s *IncomeRepositoryTestSuite) TestUpsert_InsertThenReplace() {
	_, err := s.repo.Upsert(s.ctx, "01-24", decimal.RequireFromString("2000.00"))
	s.Require().NoError(err)

	_, err = s.repo.Upsert(s.ctx, "01-24", decimal.RequireFromString("2150.50"))
	s.Require().NoError(err)

	buckets, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(buckets, 1, "one row per month key")
	s.True(buckets[0].Income.Equal(decimal.RequireFromString("2150.50")))
}

func (s *IncomeRepositoryTestSuite) TestUpsert_RoundsHalfUp() {
	bucket, err := s.repo.Upsert(s.ctx, "02-24", decimal.RequireFromString("100.005"))

	s.Require().NoError(err)
	s.Equal("100.01", bucket.Income.StringFixed(2))
}

func (s *IncomeRepositoryTestSuite) TestUpsert_RejectsBadInput() {
	_, err := s.repo.Upsert(s.ctx, "2024-01", decimal.NewFromInt(1))
	s.ErrorIs(err, ErrInvalidMonthKey)

	_, err = s.repo.Upsert(s.ctx, "03-24", decimal.NewFromInt(-1))
	s.ErrorIs(err, ErrNegativeIncome)
}

func (s *IncomeRepositoryTestSuite) TestGetByMonth() {
	_, err := s.repo.Upsert(s.ctx, "04-24", decimal.NewFromInt(75))
	s.Require().NoError(err)

	bucket, err := s.repo.GetByMonth(s.ctx, "04-24")
	s.Require().NoError(err)
	s.True(bucket.Income.Equal(decimal.NewFromInt(75)))

	_, err = s.repo.GetByMonth(s.ctx, "05-24")
	s.ErrorIs(err, ErrIncomeNotFound)
}

func (s *IncomeRepositoryTestSuite) TestTotal() {
	total, err := s.repo.Total(s.ctx)
	s.Require().NoError(err)
	s.True(total.IsZero())

	for month, amount := range map[string]string{"01-24": "1000.10", "02-24": "250.25", "12-23": "49.65"} {
		_, err := s.repo.Upsert(s.ctx, month, decimal.RequireFromString(amount))
		s.Require().NoError(err)
	}

	total, err = s.repo.Total(s.ctx)
	s.Require().NoError(err)
	s.Equal("1300.00", total.StringFixed(2))
}

func TestIncomeUpsert_PostgresIsSingleStatement(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewIncomeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "income" \("month","income"\) VALUES \(\$1,\$2\) ON CONFLICT \("month"\) DO UPDATE SET "income"="excluded"."income"`).
		WithArgs("01-24", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	bucket, err := repo.Upsert(context.Background(), "01-24", decimal.RequireFromString("2000"))

	require.NoError(t, err)
	assert.Equal(t, "01-24", bucket.Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}
