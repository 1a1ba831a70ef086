package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"

	"github.com/google/uuid"
)

const (
	columnCategoryID         = "category_id"
	columnCategoryConfidence = "category_confidence"
)

type IngestionService struct {
	ingestor       StatementIngestorInterface
	categorizer    CategorizerInterface
	aggregator     IncomeAggregatorInterface
	txRepo         repositories.TransactionRepositoryInterface
	pipelineLogger PipelineLoggerInterface
	metrics        MetricsRecorderInterface
	storeTimeout   time.Duration
	logger         *slog.Logger
}

func NewIngestionService(
	ingestor StatementIngestorInterface,
	categorizer CategorizerInterface,
	aggregator IncomeAggregatorInterface,
	txRepo repositories.TransactionRepositoryInterface,
	pipelineLogger PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
	storeTimeout time.Duration,
) IngestionServiceInterface {
	return &IngestionService{
		ingestor:       ingestor,
		categorizer:    categorizer,
		aggregator:     aggregator,
		txRepo:         txRepo,
		pipelineLogger: pipelineLogger,
		metrics:        metrics,
		storeTimeout:   storeTimeout,
		logger:         slog.Default(),
	}
}

// IngestStatement parses, categorizes and stores one statement file, then
// refreshes monthly income and goals from the parsed rows.
//
// Validation failures and store write failures are returned as
// *errors.PipelineError. Categorization and aggregation problems degrade
// into the counts and reports on the result.
func (s *IngestionService) IngestStatement(ctx context.Context, fileBytes []byte, filename string) (*models.IngestResult, error) {
	start := time.Now()
	batchID := uuid.New()
	ctx = WithBatchID(ctx, batchID)

	parsed, err := s.ingestor.Parse(fileBytes, filename)
	if err != nil {
		code, reason := string(apperrors.SystemUnexpectedError), err.Error()
		if pe, ok := apperrors.AsPipelineError(err); ok {
			code, reason = string(pe.Code), pe.Reason
		}
		s.pipelineLogger.LogStatementRejected(ctx, filename, code, reason)
		s.metrics.IncrementCounter(MetricStatementRejected, map[string]string{"code": code})
		return nil, err
	}

	s.pipelineLogger.LogStatementParsed(ctx, filename, len(parsed))
	s.metrics.IncrementCounter(MetricStatementParsed, nil)
	s.metrics.RecordGauge(MetricBatchSize, float64(len(parsed)), nil)

	result := &models.IngestResult{
		BatchID:      batchID,
		ParsedCount:  len(parsed),
		InsertedRows: []models.Transaction{},
	}
	if len(parsed) == 0 {
		result.Message = "No transactions found in file"
		return result, nil
	}

	categorized, report := s.categorizer.CategorizeWithReport(ctx, parsed)
	result.Categorization = report
	result.CategorizedCount = report.Categorized

	insertStart := time.Now()
	inserted, stripped, err := s.insertBatch(ctx, categorized)
	if err != nil {
		failure := storeWriteFailure(err)
		s.metrics.IncrementCounter(MetricStoreWriteFailed, map[string]string{"code": string(failure.Code)})
		s.logger.ErrorContext(ctx, "failed to insert transactions",
			slog.String("batch_id", batchID.String()),
			slog.String("error", err.Error()),
		)
		return nil, failure
	}
	result.InsertedRows = inserted
	result.InsertedCount = len(inserted)
	result.StrippedColumns = stripped
	s.pipelineLogger.LogTransactionsInserted(ctx, len(inserted), time.Since(insertStart).Milliseconds())

	aggregation, err := s.aggregator.UpdateMonthlyIncome(ctx, parsed)
	if err != nil {
		s.logger.WarnContext(ctx, "monthly income update failed",
			slog.String("batch_id", batchID.String()),
			slog.String("error", err.Error()),
		)
		result.Message = "Monthly income update failed"
	} else if aggregation != nil && aggregation.HasFailures() {
		result.Message = "Monthly income updated with errors"
	}
	result.Aggregation = aggregation

	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(MetricIngestionDuration, elapsed)
	s.pipelineLogger.LogIngestionCompleted(ctx, batchID, result.ParsedCount, result.InsertedCount, elapsed.Milliseconds())

	return result, nil
}

// insertBatch writes rows in one store transaction. When the store rejects
// a column, the column is stripped from every row and the write is retried
// exactly once.
func (s *IngestionService) insertBatch(ctx context.Context, rows []models.Transaction) ([]models.Transaction, []string, error) {
	inserted, err := s.createBatch(ctx, rows, nil)
	if err == nil {
		return inserted, nil, nil
	}

	column, ok := repositories.MissingColumn(err)
	if !ok {
		return nil, nil, err
	}

	s.pipelineLogger.LogStoreColumnStripped(ctx, column, len(rows))
	s.metrics.IncrementCounter(MetricStoreColumnStripped, map[string]string{"column": column})

	stripped := stripColumn(rows, column)
	inserted, err = s.createBatch(ctx, stripped, []string{column})
	if err != nil {
		return nil, nil, err
	}
	return inserted, []string{column}, nil
}

func (s *IngestionService) createBatch(ctx context.Context, rows []models.Transaction, omit []string) ([]models.Transaction, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.txRepo.CreateBatch(ctx, rows, omit)
}

// RecategorizeUncategorized runs the categorizer over every stored row that
// has no category and writes back the rows that gained one.
func (s *IngestionService) RecategorizeUncategorized(ctx context.Context) (*models.RecategorizeResult, error) {
	listCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	rows, err := s.txRepo.ListUncategorized(listCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to list uncategorized transactions: %w", err)
	}

	result := &models.RecategorizeResult{Scanned: len(rows)}
	if len(rows) == 0 {
		return result, nil
	}

	categorized, _ := s.categorizer.CategorizeWithReport(ctx, rows)

	dropConfidence := false
	for i := range categorized {
		row := &categorized[i]
		if !row.IsCategorized() {
			continue
		}

		confidence := row.CategoryConfidence
		if dropConfidence {
			confidence = nil
		}

		err := s.updateCategory(ctx, row.ID, *row.CategoryID, confidence)
		if column, missing := repositories.MissingColumn(err); missing && column == columnCategoryConfidence && confidence != nil {
			s.pipelineLogger.LogStoreColumnStripped(ctx, column, 1)
			dropConfidence = true
			err = s.updateCategory(ctx, row.ID, *row.CategoryID, nil)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "failed to update transaction category",
				slog.Uint64("transaction_id", uint64(row.ID)),
				slog.String("error", err.Error()),
			)
			result.Failed++
			continue
		}
		result.Updated++
	}

	return result, nil
}

func (s *IngestionService) updateCategory(ctx context.Context, id uint, categoryID int, confidence *float64) error {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.txRepo.UpdateCategory(ctx, id, categoryID, confidence)
}

// stripColumn returns a copy of rows without the named optional field.
func stripColumn(rows []models.Transaction, column string) []models.Transaction {
	out := models.CloneTransactions(rows)
	for i := range out {
		switch column {
		case columnCategoryID:
			out[i].CategoryID = nil
		case columnCategoryConfidence:
			out[i].CategoryConfidence = nil
		}
	}
	return out
}

func storeWriteFailure(err error) *apperrors.PipelineError {
	code := apperrors.StoreWriteFailed
	if errors.Is(err, context.DeadlineExceeded) {
		code = apperrors.StoreTimeout
	} else if errors.Is(err, repositories.ErrMissingColumn) {
		code = apperrors.StoreMissingColumn
	}
	return apperrors.NewStoreWriteFailure(code, err)
}
