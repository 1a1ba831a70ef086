package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"statement-ledger/internal/classifier"
	"statement-ledger/internal/dto"
	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/repositories"
	"statement-ledger/internal/validation"
)

var (
	ErrNoLabeledTransactions = errors.New("no labeled transactions found")
)

type trainingService struct {
	txRepo           repositories.TransactionRepositoryInterface
	validator        *validation.Validator
	defaultModelPath string
	storeTimeout     time.Duration
	logger           *slog.Logger
}

// NewTrainingService builds the export/train flow. defaultModelPath is where
// TrainFromStore saves the model when the request names no path; empty
// means the model is not persisted.
func NewTrainingService(
	txRepo repositories.TransactionRepositoryInterface,
	validator *validation.Validator,
	defaultModelPath string,
	storeTimeout time.Duration,
) TrainingServiceInterface {
	if validator == nil {
		validator = validation.GetValidator()
	}
	return &trainingService{
		txRepo:           txRepo,
		validator:        validator,
		defaultModelPath: defaultModelPath,
		storeTimeout:     storeTimeout,
		logger:           slog.Default(),
	}
}

// ExportTrainingData writes (description, category_id) pairs of every
// labeled transaction as CSV and returns the number of rows written.
func (s *trainingService) ExportTrainingData(ctx context.Context, w io.Writer) (int, error) {
	examples, err := s.labeledExamples(ctx)
	if err != nil {
		return 0, err
	}
	if err := classifier.WriteTrainingCSV(w, examples); err != nil {
		return 0, err
	}
	return len(examples), nil
}

func (s *trainingService) TrainFromStore(ctx context.Context, req dto.TrainRequest) (*classifier.NaiveBayes, *classifier.TrainingReport, error) {
	if err := s.validator.Struct(req); err != nil {
		pe := apperrors.NewValidationFailure(apperrors.ValidationOutOfRange)
		pe.Err = err
		return nil, nil, pe
	}

	examples, err := s.labeledExamples(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(examples) == 0 {
		return nil, nil, ErrNoLabeledTransactions
	}

	opts := classifier.DefaultTrainOptions()
	opts.TestSize = req.TestSize
	opts.Seed = req.Seed
	opts.MinDocFreq = req.MinDocFreq
	opts.UseAll = req.TestSize == 0

	model, report, err := classifier.Train(examples, opts)
	if err != nil {
		return nil, nil, apperrors.NewClassifierFailure(apperrors.ClassifierTrainingFailed, err)
	}

	path := req.ModelPath
	if path == "" {
		path = s.defaultModelPath
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create model directory: %w", err)
		}
		if err := model.Save(path); err != nil {
			return nil, nil, err
		}
	}

	s.logger.InfoContext(ctx, "classifier trained",
		slog.Int("train_count", report.TrainCount),
		slog.Int("test_count", report.TestCount),
		slog.Float64("accuracy", report.Accuracy),
		slog.String("model_path", path),
	)
	return model, report, nil
}

func (s *trainingService) labeledExamples(ctx context.Context) ([]classifier.Example, error) {
	listCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.txRepo.ListLabeled(listCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labeled transactions: %w", err)
	}

	examples := make([]classifier.Example, 0, len(rows))
	for _, row := range rows {
		if !row.IsCategorized() {
			continue
		}
		description := strings.ToLower(strings.TrimSpace(row.Description))
		if description == "" {
			continue
		}
		examples = append(examples, classifier.Example{
			Description: description,
			Label:       strconv.Itoa(*row.CategoryID),
		})
	}
	return examples, nil
}
