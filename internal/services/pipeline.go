package services

import (
	"errors"
	"fmt"
	"log/slog"

	"statement-ledger/internal/classifier"
	"statement-ledger/internal/config"
	"statement-ledger/internal/repositories"
	"statement-ledger/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Pipeline bundles the services a host process exposes.
type Pipeline struct {
	Ingestion  IngestionServiceInterface
	Goals      GoalServiceInterface
	Categories CategoryServiceInterface
	Insights   InsightsServiceInterface
	Training   TrainingServiceInterface
}

// NewPipeline wires every service over db. clf is the model loaded at
// startup and may be nil.
func NewPipeline(db *gorm.DB, cfg *config.Config, clf classifier.Classifier, logger *slog.Logger, reg prometheus.Registerer) *Pipeline {
	txRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	goalRepo := repositories.NewGoalRepository(db)

	pipelineLogger := NewPipelineLogger(logger)
	metrics := NewPrometheusMetrics(reg)
	allocator := NewGoalAllocator()
	validator := validation.GetValidator()

	categorizer := NewCategorizer(clf, categoryRepo, NewCircuitBreaker(CircuitBreakerConfigFrom(cfg.Pipeline)), pipelineLogger, metrics)
	aggregator := NewIncomeAggregator(incomeRepo, goalRepo, allocator, pipelineLogger, metrics, cfg.Pipeline.StoreTimeout)

	return &Pipeline{
		Ingestion: NewIngestionService(
			NewStatementIngestor(cfg.Pipeline.MaxUploadBytes),
			categorizer,
			aggregator,
			txRepo,
			pipelineLogger,
			metrics,
			cfg.Pipeline.StoreTimeout,
		),
		Goals:      NewGoalService(goalRepo, incomeRepo, allocator, validator, cfg.Pipeline.StoreTimeout),
		Categories: NewCategoryService(categoryRepo, cfg.Pipeline.StoreTimeout),
		Insights:   NewInsightsService(txRepo, categoryRepo, cfg.Pipeline.StoreTimeout),
		Training:   NewTrainingService(txRepo, validator, cfg.Pipeline.ClassifierModelPath, cfg.Pipeline.StoreTimeout),
	}
}

// LoadClassifier loads the configured model once at startup. A missing model
// file is a normal state and yields a nil classifier without error.
func LoadClassifier(cfg config.PipelineConfig) (classifier.Classifier, error) {
	if cfg.ClassifierModelPath == "" {
		return nil, nil
	}

	model, err := classifier.Load(cfg.ClassifierModelPath)
	if err != nil {
		if errors.Is(err, classifier.ErrModelNotFound) {
			slog.Info("no classifier model found, categorization disabled",
				slog.String("path", cfg.ClassifierModelPath),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load classifier: %w", err)
	}
	return model, nil
}
