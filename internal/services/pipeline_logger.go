package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	batchIDKey       contextKey = "batch_id"
)

// WithCorrelationID tags ctx so every pipeline event it reaches carries id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// WithBatchID tags ctx with the ingestion batch being processed.
func WithBatchID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, batchIDKey, id)
}

// BatchIDFrom returns the batch id stored by WithBatchID.
func BatchIDFrom(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(batchIDKey).(uuid.UUID)
	return id, ok
}

type PipelineLogger struct {
	logger *slog.Logger
}

func NewPipelineLogger(logger *slog.Logger) PipelineLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineLogger{
		logger: logger,
	}
}

func (pl *PipelineLogger) LogStatementParsed(ctx context.Context, filename string, rowCount int) {
	pl.with(ctx).InfoContext(ctx, "statement parsed",
		slog.String("event_type", "statement_parsed"),
		slog.String("filename", filename),
		slog.Int("row_count", rowCount),
	)
}

func (pl *PipelineLogger) LogStatementRejected(ctx context.Context, filename string, code string, reason string) {
	pl.with(ctx).WarnContext(ctx, "statement rejected",
		slog.String("event_type", "statement_rejected"),
		slog.String("filename", filename),
		slog.String("error_code", code),
		slog.String("reason", reason),
	)
}

func (pl *PipelineLogger) LogCategorizationSkipped(ctx context.Context, reason string, rowCount int) {
	pl.with(ctx).WarnContext(ctx, "categorization skipped",
		slog.String("event_type", "categorization_skipped"),
		slog.String("reason", reason),
		slog.Int("row_count", rowCount),
	)
}

func (pl *PipelineLogger) LogCategoryRegistryFailed(ctx context.Context, label string, errorMsg string) {
	pl.with(ctx).WarnContext(ctx, "category registry lookup failed",
		slog.String("event_type", "category_registry_failed"),
		slog.String("label", label),
		slog.String("error", errorMsg),
	)
}

func (pl *PipelineLogger) LogStoreColumnStripped(ctx context.Context, column string, rowCount int) {
	pl.with(ctx).WarnContext(ctx, "store rejected column, retrying without it",
		slog.String("event_type", "store_column_stripped"),
		slog.String("column", column),
		slog.Int("row_count", rowCount),
	)
}

func (pl *PipelineLogger) LogTransactionsInserted(ctx context.Context, rowCount int, durationMs int64) {
	pl.with(ctx).InfoContext(ctx, "transactions inserted",
		slog.String("event_type", "transactions_inserted"),
		slog.Int("row_count", rowCount),
		slog.Int64("duration_ms", durationMs),
	)
}

func (pl *PipelineLogger) LogIncomeMonthFailed(ctx context.Context, month string, errorMsg string) {
	pl.with(ctx).ErrorContext(ctx, "monthly income update failed",
		slog.String("event_type", "income_month_failed"),
		slog.String("month", month),
		slog.String("error", errorMsg),
	)
}

func (pl *PipelineLogger) LogGoalRecomputeFailed(ctx context.Context, goalID int, errorMsg string) {
	pl.with(ctx).ErrorContext(ctx, "goal recompute failed",
		slog.String("event_type", "goal_recompute_failed"),
		slog.Int("goal_id", goalID),
		slog.String("error", errorMsg),
	)
}

func (pl *PipelineLogger) LogIngestionCompleted(ctx context.Context, batchID uuid.UUID, parsed, inserted int, durationMs int64) {
	pl.logger.InfoContext(ctx, "ingestion completed",
		slog.String("event_type", "ingestion_completed"),
		slog.String("batch_id", batchID.String()),
		slog.Int("parsed_count", parsed),
		slog.Int("inserted_count", inserted),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	pl.with(ctx).WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
	)
}

// with attaches the attributes every event carries.
func (pl *PipelineLogger) with(ctx context.Context) *slog.Logger {
	batch := ""
	if id, ok := BatchIDFrom(ctx); ok {
		batch = id.String()
	}
	return pl.logger.With(
		slog.String("batch_id", batch),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
