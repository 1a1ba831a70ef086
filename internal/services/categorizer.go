package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"statement-ledger/internal/classifier"
	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"

	"golang.org/x/sync/singleflight"
)

const classifierService = "classifier"

var numericLabelPattern = regexp.MustCompile(`^(\d+)(?:\.0+)?$`)

// Reasons reported when a batch is left uncategorized.
const (
	SkipReasonNoClassifier     = "no classifier loaded"
	SkipReasonCircuitOpen      = "classifier circuit open"
	SkipReasonPredictionFailed = "classifier prediction failed"
)

type Categorizer struct {
	classifier     classifier.Classifier
	categoryRepo   repositories.CategoryRepositoryInterface
	circuitBreaker CircuitBreakerInterface
	pipelineLogger PipelineLoggerInterface
	metrics        MetricsRecorderInterface
	registryCalls  singleflight.Group
	logger         *slog.Logger
}

// NewCategorizer wires the classifier fallback chain. clf may be nil: with
// no model loaded every batch passes through unchanged.
func NewCategorizer(
	clf classifier.Classifier,
	categoryRepo repositories.CategoryRepositoryInterface,
	circuitBreaker CircuitBreakerInterface,
	pipelineLogger PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
) CategorizerInterface {
	return &Categorizer{
		classifier:     clf,
		categoryRepo:   categoryRepo,
		circuitBreaker: circuitBreaker,
		pipelineLogger: pipelineLogger,
		metrics:        metrics,
		logger:         slog.Default(),
	}
}

func (c *Categorizer) Categorize(ctx context.Context, transactions []models.Transaction) []models.Transaction {
	out, _ := c.CategorizeWithReport(ctx, transactions)
	return out
}

// CategorizeWithReport returns a categorized copy of transactions. Tiers per
// label: empty leaves the row unset, an integer is the id itself, the static
// name table comes next, and anything else is registered by name.
func (c *Categorizer) CategorizeWithReport(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, models.CategorizationReport) {
	out := models.CloneTransactions(transactions)
	if len(out) == 0 {
		return out, models.CategorizationReport{}
	}

	if c.classifier == nil {
		return out, c.skip(ctx, SkipReasonNoClassifier, len(out))
	}
	if c.circuitBreaker.IsOpen() {
		return out, c.skip(ctx, SkipReasonCircuitOpen, len(out))
	}

	texts := make([]string, len(out))
	for i := range out {
		texts[i] = out[i].Description
	}

	labels, err := c.predict(ctx, texts)
	if err != nil {
		failure := apperrors.NewClassifierFailure(apperrors.ClassifierPredictionFailed, err)
		c.logger.WarnContext(ctx, "classifier prediction failed",
			slog.String("error_code", string(failure.Code)),
			slog.String("error", failure.Error()),
		)
		return models.CloneTransactions(transactions), c.skip(ctx, SkipReasonPredictionFailed, len(out))
	}

	confidences := c.confidences(ctx, texts)

	registry := make(map[string]*int)
	report := models.CategorizationReport{}
	for i := range out {
		label := strings.TrimSpace(labels[i])
		id, cached := registry[label]
		if !cached {
			if resolved, ok := c.resolveLabel(ctx, label); ok {
				id = &resolved
			}
			registry[label] = id
		}

		if id == nil {
			report.Uncategorized++
			continue
		}

		categoryID := *id
		out[i].CategoryID = &categoryID
		if confidences != nil {
			confidence := confidences[i]
			out[i].CategoryConfidence = &confidence
		}
		report.Categorized++
	}

	c.metrics.IncrementCounter(MetricCategorizationDone, nil)
	return out, report
}

func (c *Categorizer) skip(ctx context.Context, reason string, rows int) models.CategorizationReport {
	c.pipelineLogger.LogCategorizationSkipped(ctx, reason, rows)
	c.metrics.IncrementCounter(MetricCategorizationSkipped, map[string]string{"reason": reason})
	return models.CategorizationReport{Uncategorized: rows, Skipped: true, Reason: reason}
}

// predict runs the classifier behind the circuit breaker.
func (c *Categorizer) predict(ctx context.Context, texts []string) ([]string, error) {
	before := c.circuitBreaker.GetState()
	defer func() {
		if after := c.circuitBreaker.GetState(); after != before {
			c.pipelineLogger.LogCircuitBreakerStateChange(ctx, classifierService, before.String(), after.String())
			c.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": classifierService})
		}
	}()

	start := time.Now()
	labels, err := c.classifier.Predict(ctx, texts)
	c.metrics.RecordProcessingTime(MetricClassifierDuration, time.Since(start))

	if err == nil && len(labels) != len(texts) {
		err = fmt.Errorf("classifier returned %d labels for %d texts", len(labels), len(texts))
	}
	if err != nil {
		c.circuitBreaker.RecordFailure()
		return nil, err
	}

	c.circuitBreaker.RecordSuccess()
	return labels, nil
}

// confidences returns the top class probability per text, or nil when the
// classifier cannot score. Failure here never blocks category assignment.
func (c *Categorizer) confidences(ctx context.Context, texts []string) []float64 {
	scorer, ok := c.classifier.(classifier.ProbabilityClassifier)
	if !ok {
		return nil
	}

	probs, err := scorer.PredictProba(ctx, texts)
	if err != nil || len(probs) != len(texts) {
		c.logger.DebugContext(ctx, "classifier probabilities unavailable", slog.Any("error", err))
		return nil
	}

	out := make([]float64, len(probs))
	for i, row := range probs {
		if len(row) == 0 {
			return nil
		}
		best := row[0]
		for _, p := range row[1:] {
			if p > best {
				best = p
			}
		}
		out[i] = best
	}
	return out
}

func (c *Categorizer) resolveLabel(ctx context.Context, label string) (int, bool) {
	if label == "" {
		return 0, false
	}
	if id, ok := numericLabel(label); ok {
		return id, true
	}
	if id, ok := models.StaticCategoryID(label); ok {
		return id, true
	}

	v, err, _ := c.registryCalls.Do(label, func() (interface{}, error) {
		category, err := c.categoryRepo.EnsureByName(ctx, label)
		if err != nil {
			return nil, err
		}
		return category.ID, nil
	})
	if err != nil {
		c.pipelineLogger.LogCategoryRegistryFailed(ctx, label, err.Error())
		c.metrics.IncrementCounter(MetricCategoryRegistryError, nil)
		return 0, false
	}
	return v.(int), true
}

// numericLabel accepts positive integer labels, including the "3.0" form
// numeric ids take after a round trip through floating point.
func numericLabel(label string) (int, bool) {
	m := numericLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
