package services_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"statement-ledger/internal/models"
	"statement-ledger/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// categoryIDs flattens assigned ids, with 0 for an unset row.
func categoryIDs(txns []models.Transaction) []int {
	out := make([]int, len(txns))
	for i := range txns {
		if txns[i].CategoryID != nil {
			out[i] = *txns[i].CategoryID
		}
	}
	return out
}

// assertDeadline fails unless ctx is bounded.
func assertDeadline(t assert.TestingT, ctx context.Context) {
	_, ok := ctx.Deadline()
	assert.True(t, ok, "store call made without a deadline")
}

func discardPipelineLogger() services.PipelineLoggerInterface {
	return services.NewPipelineLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// keywordClassifier labels a text with the value of the first key it contains.
type keywordClassifier struct {
	mu       sync.Mutex
	keywords map[string]string
	calls    int
}

func (k *keywordClassifier) Predict(ctx context.Context, texts []string) ([]string, error) {
	k.mu.Lock()
	k.calls++
	k.mu.Unlock()

	out := make([]string, len(texts))
	for i, text := range texts {
		lower := strings.ToLower(text)
		for key, label := range k.keywords {
			if strings.Contains(lower, key) {
				out[i] = label
				break
			}
		}
	}
	return out, nil
}

// scoringClassifier returns fixed labels and probability rows.
type scoringClassifier struct {
	labels   []string
	probs    [][]float64
	probsErr error
}

func (s *scoringClassifier) Predict(ctx context.Context, texts []string) ([]string, error) {
	return s.labels, nil
}

func (s *scoringClassifier) PredictProba(ctx context.Context, texts []string) ([][]float64, error) {
	return s.probs, s.probsErr
}

type failingClassifier struct {
	err error
}

func (f failingClassifier) Predict(ctx context.Context, texts []string) ([]string, error) {
	return nil, f.err
}

type decimalMatcher struct {
	want decimal.Decimal
}

// decEq matches a decimal by value, ignoring its exponent.
func decEq(value string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(value)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}
