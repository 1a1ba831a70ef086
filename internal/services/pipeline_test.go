package services_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"statement-ledger/internal/classifier"
	"statement-ledger/internal/config"
	"statement-ledger/internal/database"
	"statement-ledger/internal/dto"
	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"
	"statement-ledger/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const januaryStatement = "Date,Description,Amount,Type of Transaction\n" +
	"2024-01-15,Coffee Shop,-5.50,Debit\n" +
	"2024-01-31,Salary,2000,Credit\n"

func testPipelineConfig(modelPath string) *config.Config {
	return &config.Config{
		Environment: "testing",
		Pipeline: config.PipelineConfig{
			MaxUploadBytes:      services.DefaultMaxUploadBytes,
			StoreTimeout:        5 * time.Second,
			ClassifierModelPath: modelPath,
		},
	}
}

func newTestPipeline(t *testing.T, clf classifier.Classifier) (*services.Pipeline, *database.DB) {
	t.Helper()
	db := database.SetupTestDB(t)
	database.SeedTestCategories(t, db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	modelPath := filepath.Join(t.TempDir(), "model.gob")
	return services.NewPipeline(db.DB, testPipelineConfig(modelPath), clf, logger, prometheus.NewRegistry()), db
}

func TestPipeline_IngestStatementEndToEnd(t *testing.T) {
	pipeline, db := newTestPipeline(t, nil)
	ctx := context.Background()

	goal := database.CreateTestGoal(t, db, &models.Goal{
		Name:             "Emergency fund",
		TargetAmount:     decimal.NewFromInt(5000),
		IncomeAllocation: decimal.NewFromInt(10),
	})

	result, err := pipeline.Ingestion.IngestStatement(ctx, []byte(januaryStatement), "january.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, result.ParsedCount)
	assert.Equal(t, 2, result.InsertedCount)
	assert.Zero(t, result.CategorizedCount)
	assert.True(t, result.Categorization.Skipped)
	require.NotNil(t, result.Aggregation)
	require.Len(t, result.Aggregation.Buckets, 1)
	assert.Equal(t, "01-24", result.Aggregation.Buckets[0].Month)
	assert.Equal(t, "2000.00", result.Aggregation.Buckets[0].Income.StringFixed(2))

	stored, err := pipeline.Goals.GetGoal(ctx, goal.GoalID)
	require.NoError(t, err)
	assert.Equal(t, "200.00", stored.AmountSaved.StringFixed(2))

	// Re-importing the same month replaces the bucket instead of doubling it.
	_, err = pipeline.Ingestion.IngestStatement(ctx, []byte(januaryStatement), "january.csv")
	require.NoError(t, err)
	income, err := repositories.NewIncomeRepository(db.DB).GetByMonth(ctx, "01-24")
	require.NoError(t, err)
	assert.Equal(t, "2000.00", income.Income.StringFixed(2))

	report, err := pipeline.Insights.GenerateReport(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "11.00", report.TotalExpenses.StringFixed(2))
	assert.Equal(t, models.UncategorizedName, report.HighestCategory.Category)
}

func TestPipeline_ValidationFailureWritesNothing(t *testing.T) {
	pipeline, db := newTestPipeline(t, nil)

	_, err := pipeline.Ingestion.IngestStatement(context.Background(), []byte("Date,Amount\n2024-01-01,1\n"), "bad.csv")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPipeline_CategorizesWithTrainedModel(t *testing.T) {
	model, _, err := classifier.Train([]classifier.Example{
		{Description: "coffee shop", Label: "2"},
		{Description: "coffee house", Label: "2"},
		{Description: "salary payment", Label: "4"},
		{Description: "salary deposit", Label: "4"},
	}, classifier.TrainOptions{MinDocFreq: 1, UseAll: true})
	require.NoError(t, err)

	pipeline, _ := newTestPipeline(t, model)
	ctx := context.Background()

	result, err := pipeline.Ingestion.IngestStatement(ctx, []byte(januaryStatement), "january.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, result.CategorizedCount)
	require.NotNil(t, result.InsertedRows[0].CategoryID)
	assert.Equal(t, models.CategoryIDDining, *result.InsertedRows[0].CategoryID)

	var csv bytes.Buffer
	n, err := pipeline.Training.ExportTrainingData(ctx, &csv)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, csv.String(), "coffee shop,2")

	retrained, report, err := pipeline.Training.TrainFromStore(ctx, dto.TrainRequest{MinDocFreq: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, report.TrainCount)
	assert.ElementsMatch(t, []string{"2", "4"}, retrained.Classes())

	loaded, err := services.LoadClassifier(testPipelineConfig(filepath.Join(t.TempDir(), "absent.gob")).Pipeline)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
