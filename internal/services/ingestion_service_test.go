package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"
	"statement-ledger/internal/repositories/repository_mocks"
	"statement-ledger/internal/services"
	"statement-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type IngestionServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	ingestor    *service_mocks.MockStatementIngestorInterface
	categorizer *service_mocks.MockCategorizerInterface
	aggregator  *service_mocks.MockIncomeAggregatorInterface
	txRepo      *repository_mocks.MockTransactionRepositoryInterface
	logger      *service_mocks.MockPipelineLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.IngestionServiceInterface
}

func TestIngestionServiceSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}

func (s *IngestionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.ingestor = service_mocks.NewMockStatementIngestorInterface(s.ctrl)
	s.categorizer = service_mocks.NewMockCategorizerInterface(s.ctrl)
	s.aggregator = service_mocks.NewMockIncomeAggregatorInterface(s.ctrl)
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.logger = service_mocks.NewMockPipelineLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewIngestionService(s.ingestor, s.categorizer, s.aggregator, s.txRepo, s.logger, s.metrics, 0)
}

func (s *IngestionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func withCategory(txns []models.Transaction, id int, confidence float64) []models.Transaction {
	out := models.CloneTransactions(txns)
	for i := range out {
		categoryID, c := id, confidence
		out[i].CategoryID = &categoryID
		out[i].CategoryConfidence = &c
	}
	return out
}

func (s *IngestionServiceTestSuite) expectParsed(parsed []models.Transaction) {
	s.ingestor.EXPECT().Parse(gomock.Any(), "statement.csv").Return(parsed, nil)
	s.logger.EXPECT().LogStatementParsed(gomock.Any(), "statement.csv", len(parsed))
}

func (s *IngestionServiceTestSuite) TestIngestStatement_HappyPath() {
	parsed := []models.Transaction{credit("2024-01-31", "2000"), debit("2024-01-15", "-5.50")}
	categorized := withCategory(parsed, 2, 0.9)
	s.expectParsed(parsed)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(categorized, models.CategorizationReport{Categorized: 2})
	s.txRepo.EXPECT().CreateBatch(gomock.Any(), categorized, gomock.Nil()).Return(categorized, nil)
	s.logger.EXPECT().LogTransactionsInserted(gomock.Any(), 2, gomock.Any())
	s.aggregator.EXPECT().UpdateMonthlyIncome(gomock.Any(), parsed).Return(&models.AggregationReport{TotalIncome: "2000.00"}, nil)
	s.logger.EXPECT().LogIngestionCompleted(gomock.Any(), gomock.Any(), 2, 2, gomock.Any())

	result, err := s.service.IngestStatement(s.ctx, []byte("data"), "statement.csv")

	s.Require().NoError(err)
	s.Equal(2, result.ParsedCount)
	s.Equal(2, result.CategorizedCount)
	s.Equal(2, result.InsertedCount)
	s.Empty(result.StrippedColumns)
	s.Empty(result.Message)
	s.Equal("2000.00", result.Aggregation.TotalIncome)
	s.NotEqual(uuid.Nil, result.BatchID)
}

func (s *IngestionServiceTestSuite) TestIngestStatement_ValidationFailureIsReturnedAsIs() {
	failure := apperrors.NewValidationFailure(apperrors.IngestUnsupportedFormat)
	s.ingestor.EXPECT().Parse(gomock.Any(), "statement.pdf").Return(nil, failure)
	s.logger.EXPECT().LogStatementRejected(gomock.Any(), "statement.pdf", string(apperrors.IngestUnsupportedFormat), failure.Reason)

	result, err := s.service.IngestStatement(s.ctx, []byte("%PDF"), "statement.pdf")

	s.Nil(result)
	s.Same(failure, err)
}

func (s *IngestionServiceTestSuite) TestIngestStatement_NoRows() {
	s.expectParsed([]models.Transaction{})

	result, err := s.service.IngestStatement(s.ctx, []byte("Date,Description,Amount,Type of Transaction\n"), "statement.csv")

	s.Require().NoError(err)
	s.Equal("No transactions found in file", result.Message)
	s.Zero(result.InsertedCount)
	s.NotNil(result.InsertedRows)
}

func (s *IngestionServiceTestSuite) TestIngestStatement_StripsMissingColumnAndRetriesOnce() {
	parsed := []models.Transaction{debit("2024-01-15", "-12")}
	categorized := withCategory(parsed, 1, 0.8)
	missing := &repositories.MissingColumnError{Column: "category_confidence", Err: errors.New("no such column")}

	s.expectParsed(parsed)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(categorized, models.CategorizationReport{Categorized: 1})
	gomock.InOrder(
		s.txRepo.EXPECT().CreateBatch(gomock.Any(), categorized, gomock.Nil()).Return(nil, missing),
		s.logger.EXPECT().LogStoreColumnStripped(gomock.Any(), "category_confidence", 1),
		s.txRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), []string{"category_confidence"}).
			DoAndReturn(func(_ context.Context, rows []models.Transaction, _ []string) ([]models.Transaction, error) {
				s.Nil(rows[0].CategoryConfidence)
				s.Equal(1, *rows[0].CategoryID)
				return rows, nil
			}),
	)
	s.logger.EXPECT().LogTransactionsInserted(gomock.Any(), 1, gomock.Any())
	s.aggregator.EXPECT().UpdateMonthlyIncome(gomock.Any(), parsed).Return(&models.AggregationReport{}, nil)
	s.logger.EXPECT().LogIngestionCompleted(gomock.Any(), gomock.Any(), 1, 1, gomock.Any())

	result, err := s.service.IngestStatement(s.ctx, []byte("data"), "statement.csv")

	s.Require().NoError(err)
	s.Equal([]string{"category_confidence"}, result.StrippedColumns)
	s.NotNil(categorized[0].CategoryConfidence, "categorized rows are not modified by the retry")
}

func (s *IngestionServiceTestSuite) TestIngestStatement_SecondMissingColumnFails() {
	parsed := []models.Transaction{debit("2024-01-15", "-12")}
	first := &repositories.MissingColumnError{Column: "category_confidence", Err: errors.New("x")}
	second := &repositories.MissingColumnError{Column: "category_id", Err: errors.New("y")}

	s.expectParsed(parsed)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(parsed, models.CategorizationReport{})
	s.txRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, first)
	s.logger.EXPECT().LogStoreColumnStripped(gomock.Any(), "category_confidence", 1)
	s.txRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, second)

	result, err := s.service.IngestStatement(s.ctx, []byte("data"), "statement.csv")

	s.Nil(result)
	pe, ok := apperrors.AsPipelineError(err)
	s.Require().True(ok)
	s.Equal(apperrors.KindStoreWrite, pe.Kind)
	s.Equal(apperrors.StoreMissingColumn, pe.Code)
}

func (s *IngestionServiceTestSuite) TestIngestStatement_StoreFailureCodes() {
	tests := []struct {
		name string
		err  error
		code apperrors.ErrorCode
	}{
		{"generic", errors.New("connection reset by peer"), apperrors.StoreWriteFailed},
		{"timeout", fmt.Errorf("insert: %w", context.DeadlineExceeded), apperrors.StoreTimeout},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			parsed := []models.Transaction{debit("2024-01-15", "-1")}
			s.expectParsed(parsed)
			s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(parsed, models.CategorizationReport{})
			s.txRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, tt.err)

			_, err := s.service.IngestStatement(s.ctx, []byte("data"), "statement.csv")

			s.True(apperrors.HasCode(err, tt.code))
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *IngestionServiceTestSuite) TestIngestStatement_AggregationFailureKeepsInsertedRows() {
	parsed := []models.Transaction{credit("2024-01-31", "100")}
	s.expectParsed(parsed)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(parsed, models.CategorizationReport{Uncategorized: 1})
	s.txRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Nil()).Return(parsed, nil)
	s.logger.EXPECT().LogTransactionsInserted(gomock.Any(), 1, gomock.Any())
	s.aggregator.EXPECT().UpdateMonthlyIncome(gomock.Any(), parsed).Return(&models.AggregationReport{}, errors.New("total unavailable"))
	s.logger.EXPECT().LogIngestionCompleted(gomock.Any(), gomock.Any(), 1, 1, gomock.Any())

	result, err := s.service.IngestStatement(s.ctx, []byte("data"), "statement.csv")

	s.Require().NoError(err)
	s.Equal(1, result.InsertedCount)
	s.Equal("Monthly income update failed", result.Message)
}

func (s *IngestionServiceTestSuite) TestIngestStatement_PartialAggregationIsReported() {
	parsed := []models.Transaction{credit("2024-01-31", "100")}
	s.expectParsed(parsed)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(parsed, models.CategorizationReport{})
	s.txRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Nil()).Return(parsed, nil)
	s.logger.EXPECT().LogTransactionsInserted(gomock.Any(), 1, gomock.Any())
	s.aggregator.EXPECT().UpdateMonthlyIncome(gomock.Any(), parsed).
		Return(&models.AggregationReport{MonthFailures: []models.MonthFailure{{Month: "01-24", Error: "deadlock"}}}, nil)
	s.logger.EXPECT().LogIngestionCompleted(gomock.Any(), gomock.Any(), 1, 1, gomock.Any())

	result, err := s.service.IngestStatement(s.ctx, []byte("data"), "statement.csv")

	s.Require().NoError(err)
	s.Equal("Monthly income updated with errors", result.Message)
}

func (s *IngestionServiceTestSuite) TestRecategorizeUncategorized() {
	stored := []models.Transaction{debit("2024-01-15", "-3"), debit("2024-01-16", "-4"), debit("2024-01-17", "-5")}
	for i := range stored {
		stored[i].ID = uint(i + 1)
	}
	categorized := models.CloneTransactions(stored)
	one, two := 1, 2
	categorized[0].CategoryID = &one
	categorized[2].CategoryID = &two

	s.txRepo.EXPECT().ListUncategorized(gomock.Any()).Return(stored, nil)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), stored).Return(categorized, models.CategorizationReport{Categorized: 2, Uncategorized: 1})
	s.txRepo.EXPECT().UpdateCategory(gomock.Any(), uint(1), 1, gomock.Nil()).Return(nil)
	s.txRepo.EXPECT().UpdateCategory(gomock.Any(), uint(3), 2, gomock.Nil()).Return(errors.New("locked"))

	result, err := s.service.RecategorizeUncategorized(s.ctx)

	s.Require().NoError(err)
	s.Equal(models.RecategorizeResult{Scanned: 3, Updated: 1, Failed: 1}, *result)
}

func (s *IngestionServiceTestSuite) TestRecategorizeUncategorized_DropsUnknownConfidenceColumn() {
	stored := []models.Transaction{debit("2024-01-15", "-3"), debit("2024-01-16", "-4")}
	stored[0].ID, stored[1].ID = 10, 11
	categorized := withCategory(stored, 5, 0.6)
	missing := &repositories.MissingColumnError{Column: "category_confidence", Err: errors.New("no such column")}

	s.txRepo.EXPECT().ListUncategorized(gomock.Any()).Return(stored, nil)
	s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), stored).Return(categorized, models.CategorizationReport{Categorized: 2})
	gomock.InOrder(
		s.txRepo.EXPECT().UpdateCategory(gomock.Any(), uint(10), 5, gomock.Not(gomock.Nil())).Return(missing),
		s.logger.EXPECT().LogStoreColumnStripped(gomock.Any(), "category_confidence", 1),
		s.txRepo.EXPECT().UpdateCategory(gomock.Any(), uint(10), 5, gomock.Nil()).Return(nil),
		s.txRepo.EXPECT().UpdateCategory(gomock.Any(), uint(11), 5, gomock.Nil()).Return(nil),
	)

	result, err := s.service.RecategorizeUncategorized(s.ctx)

	s.Require().NoError(err)
	s.Equal(2, result.Updated)
}

func (s *IngestionServiceTestSuite) TestRecategorizeUncategorized_NothingToDo() {
	s.txRepo.EXPECT().ListUncategorized(gomock.Any()).Return(nil, nil)

	result, err := s.service.RecategorizeUncategorized(s.ctx)

	s.Require().NoError(err)
	s.Zero(result.Scanned)
}

func (s *IngestionServiceTestSuite) TestStoreCallsCarryDeadline() {
	service := services.NewIngestionService(s.ingestor, s.categorizer, s.aggregator, s.txRepo, s.logger, s.metrics, time.Minute)

	s.Run("batch insert", func() {
		parsed := []models.Transaction{debit("2024-01-15", "-5.50")}
		s.expectParsed(parsed)
		s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), parsed).Return(parsed, models.CategorizationReport{Uncategorized: 1})
		s.txRepo.EXPECT().CreateBatch(gomock.Any(), parsed, gomock.Nil()).
			DoAndReturn(func(ctx context.Context, rows []models.Transaction, _ []string) ([]models.Transaction, error) {
				assertDeadline(s.T(), ctx)
				return rows, nil
			})
		s.logger.EXPECT().LogTransactionsInserted(gomock.Any(), 1, gomock.Any())
		s.aggregator.EXPECT().UpdateMonthlyIncome(gomock.Any(), parsed).Return(&models.AggregationReport{}, nil)
		s.logger.EXPECT().LogIngestionCompleted(gomock.Any(), gomock.Any(), 1, 1, gomock.Any())

		_, err := service.IngestStatement(s.ctx, []byte("data"), "statement.csv")
		s.Require().NoError(err)
	})

	s.Run("recategorize", func() {
		stored := []models.Transaction{debit("2024-01-15", "-3")}
		stored[0].ID = 4
		s.txRepo.EXPECT().ListUncategorized(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
				assertDeadline(s.T(), ctx)
				return stored, nil
			})
		s.categorizer.EXPECT().CategorizeWithReport(gomock.Any(), stored).Return(withCategory(stored, 2, 0.5), models.CategorizationReport{Categorized: 1})
		s.txRepo.EXPECT().UpdateCategory(gomock.Any(), uint(4), 2, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uint, _ int, _ *float64) error {
				assertDeadline(s.T(), ctx)
				return nil
			})

		result, err := service.RecategorizeUncategorized(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, result.Updated)
	})
}
