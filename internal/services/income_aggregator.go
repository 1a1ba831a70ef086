package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// monthKeyLayouts are tried in order before the field-splitting fallback.
var monthKeyLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
}

type IncomeAggregator struct {
	incomeRepo     repositories.IncomeRepositoryInterface
	goalRepo       repositories.GoalRepositoryInterface
	allocator      GoalAllocatorInterface
	pipelineLogger PipelineLoggerInterface
	metrics        MetricsRecorderInterface
	storeTimeout   time.Duration
}

func NewIncomeAggregator(
	incomeRepo repositories.IncomeRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	allocator GoalAllocatorInterface,
	pipelineLogger PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
	storeTimeout time.Duration,
) IncomeAggregatorInterface {
	return &IncomeAggregator{
		incomeRepo:     incomeRepo,
		goalRepo:       goalRepo,
		allocator:      allocator,
		pipelineLogger: pipelineLogger,
		metrics:        metrics,
		storeTimeout:   storeTimeout,
	}
}

// MonthKey derives the MM-YY bucket for a transaction date.
func MonthKey(date string) (string, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", false
	}

	for _, layout := range monthKeyLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Year()%100), true
		}
	}

	fields := strings.FieldsFunc(date, func(r rune) bool {
		return r == '-' || r == '/' || r == '.' || r == ' ' || r == 'T'
	})
	if len(fields) < 3 {
		return "", false
	}
	month, err := strconv.Atoi(fields[0])
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	if day, err := strconv.Atoi(fields[1]); err != nil || day < 1 || day > 31 {
		return "", false
	}
	if !allDigits(fields[2]) {
		return "", false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d-%02d", month, year%100), true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UpdateMonthlyIncome sums the absolute credit amounts per month, stores each
// bucket, and then recomputes every goal from the new income total. A failed
// month or goal is recorded in the report and does not stop the others. The
// error is non-nil only when the total or the goal list could not be read;
// the report is returned in every case.
func (ia *IncomeAggregator) UpdateMonthlyIncome(ctx context.Context, transactions []models.Transaction) (*models.AggregationReport, error) {
	report := &models.AggregationReport{Buckets: []models.MonthlyIncome{}}

	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsCredit() {
			continue
		}
		report.CreditsConsidered++

		month, ok := MonthKey(txn.Date)
		if !ok {
			report.UndatedCredits++
			continue
		}
		totals[month] = totals[month].Add(txn.AbsAmount())
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		bucket, err := ia.upsert(ctx, month, totals[month].Round(2))
		if err != nil {
			failure := apperrors.NewAggregationFailure(apperrors.AggregationMonthFailed, month, err)
			ia.pipelineLogger.LogIncomeMonthFailed(ctx, month, failure.Error())
			ia.metrics.IncrementCounter(MetricIncomeMonthFailed, map[string]string{"month": month})
			report.MonthFailures = append(report.MonthFailures, models.MonthFailure{Month: month, Error: err.Error()})
			continue
		}
		report.Buckets = append(report.Buckets, *bucket)
	}

	total, err := ia.total(ctx)
	if err != nil {
		return report, apperrors.NewAggregationFailure(apperrors.AggregationTotalFailed, "total income", err)
	}
	report.TotalIncome = total.StringFixed(2)
	ia.metrics.RecordGauge(MetricTotalIncome, total.InexactFloat64(), nil)

	if err := ia.recomputeGoals(ctx, total, report); err != nil {
		return report, err
	}

	return report, nil
}

func (ia *IncomeAggregator) recomputeGoals(ctx context.Context, total decimal.Decimal, report *models.AggregationReport) error {
	listCtx, cancel := withStoreTimeout(ctx, ia.storeTimeout)
	goals, err := ia.goalRepo.List(listCtx)
	cancel()
	if err != nil {
		return apperrors.NewAggregationFailure(apperrors.AggregationGoalFailed, "goals", err)
	}

	for _, goal := range goals {
		saved := ia.allocator.Recompute(goal, total)

		updateCtx, cancel := withStoreTimeout(ctx, ia.storeTimeout)
		err := ia.goalRepo.UpdateAmountSaved(updateCtx, goal.GoalID, saved)
		cancel()
		if err != nil {
			ia.pipelineLogger.LogGoalRecomputeFailed(ctx, goal.GoalID, err.Error())
			ia.metrics.IncrementCounter(MetricGoalRecomputeFailed, nil)
			report.GoalFailures = append(report.GoalFailures, models.GoalFailure{GoalID: goal.GoalID, Error: err.Error()})
			continue
		}
		report.GoalsRecomputed++
	}
	return nil
}

func (ia *IncomeAggregator) upsert(ctx context.Context, month string, amount decimal.Decimal) (*models.MonthlyIncome, error) {
	ctx, cancel := withStoreTimeout(ctx, ia.storeTimeout)
	defer cancel()
	return ia.incomeRepo.Upsert(ctx, month, amount)
}

func (ia *IncomeAggregator) total(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := withStoreTimeout(ctx, ia.storeTimeout)
	defer cancel()
	return ia.incomeRepo.Total(ctx)
}

// withStoreTimeout bounds one store round trip. A non-positive timeout
// leaves ctx unbounded.
func withStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
