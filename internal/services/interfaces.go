package services

import (
	"context"
	"io"
	"time"

	"statement-ledger/internal/classifier"
	"statement-ledger/internal/dto"
	"statement-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementIngestorInterface turns an uploaded statement file into transactions
type StatementIngestorInterface interface {
	Parse(fileBytes []byte, filename string) ([]models.Transaction, error)
}

// CategorizerInterface assigns category ids to a batch. Implementations never
// mutate the input slice and never fail the batch.
type CategorizerInterface interface {
	Categorize(ctx context.Context, transactions []models.Transaction) []models.Transaction
	CategorizeWithReport(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, models.CategorizationReport)
}

// IncomeAggregatorInterface rolls credits into month buckets and refreshes goals
type IncomeAggregatorInterface interface {
	UpdateMonthlyIncome(ctx context.Context, transactions []models.Transaction) (*models.AggregationReport, error)
}

type GoalAllocatorInterface interface {
	Recompute(goal models.Goal, totalIncome decimal.Decimal) decimal.Decimal
}

// GoalServiceInterface defines savings goal management
type GoalServiceInterface interface {
	CreateGoal(ctx context.Context, req dto.GoalRequest) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id int, req dto.GoalRequest) (*models.Goal, error)
	GetGoal(ctx context.Context, id int) (*models.Goal, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
	DeleteGoal(ctx context.Context, id int) error
}

// IngestionServiceInterface is the statement upload entrypoint
type IngestionServiceInterface interface {
	IngestStatement(ctx context.Context, fileBytes []byte, filename string) (*models.IngestResult, error)
	RecategorizeUncategorized(ctx context.Context) (*models.RecategorizeResult, error)
}

type CategoryServiceInterface interface {
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	SeedDefaultCategories(ctx context.Context) error
}

// InsightsServiceInterface summarizes stored transactions
type InsightsServiceInterface interface {
	GenerateReport(ctx context.Context, budget *decimal.Decimal) (*models.SpendingReport, error)
	GenerateDailySpending(ctx context.Context) (*models.DailySpendingReport, error)
}

type TrainingServiceInterface interface {
	ExportTrainingData(ctx context.Context, w io.Writer) (int, error)
	TrainFromStore(ctx context.Context, req dto.TrainRequest) (*classifier.NaiveBayes, *classifier.TrainingReport, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type PipelineLoggerInterface interface {
	LogStatementParsed(ctx context.Context, filename string, rowCount int)
	LogStatementRejected(ctx context.Context, filename string, code string, reason string)
	LogCategorizationSkipped(ctx context.Context, reason string, rowCount int)
	LogCategoryRegistryFailed(ctx context.Context, label string, errorMsg string)
	LogStoreColumnStripped(ctx context.Context, column string, rowCount int)
	LogTransactionsInserted(ctx context.Context, rowCount int, durationMs int64)
	LogIncomeMonthFailed(ctx context.Context, month string, errorMsg string)
	LogGoalRecomputeFailed(ctx context.Context, goalID int, errorMsg string)
	LogIngestionCompleted(ctx context.Context, batchID uuid.UUID, parsed, inserted int, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
