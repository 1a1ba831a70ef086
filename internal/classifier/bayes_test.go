package classifier

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureExamples() []Example {
	return []Example{
		{"uber ride downtown", "1"},
		{"uber trip airport", "1"},
		{"metro card uber", "1"},
		{"starbucks coffee", "2"},
		{"coffee at starbucks", "2"},
		{"starbucks latte coffee", "2"},
		{"whole foods market", "3"},
		{"whole foods groceries", "3"},
		{"market whole foods", "3"},
	}
}

func trainFixture(t *testing.T) *NaiveBayes {
	t.Helper()
	model, _, err := Train(fixtureExamples(), TrainOptions{UseAll: true, MinDocFreq: 1})
	require.NoError(t, err)
	return model
}

func TestNaiveBayes_Predict(t *testing.T) {
	model := trainFixture(t)

	labels, err := model.Predict(context.Background(), []string{"UBER ride", "Starbucks", "whole foods"})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, labels)
	assert.Equal(t, []string{"1", "2", "3"}, model.Classes())
}

func TestNaiveBayes_PredictProba(t *testing.T) {
	model := trainFixture(t)

	probs, err := model.PredictProba(context.Background(), []string{"starbucks coffee"})

	require.NoError(t, err)
	require.Len(t, probs, 1)
	require.Len(t, probs[0], 3)
	var sum float64
	for _, p := range probs[0] {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, probs[0][1], probs[0][0])
	assert.Greater(t, probs[0][1], probs[0][2])
}

func TestNaiveBayes_CancelledContext(t *testing.T) {
	model := trainFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := model.Predict(ctx, []string{"uber"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNaiveBayes_Untrained(t *testing.T) {
	var model *NaiveBayes

	_, err := model.Predict(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, ErrNotTrained)
	_, err = model.PredictProba(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, ErrNotTrained)
	assert.ErrorIs(t, model.Save(filepath.Join(t.TempDir(), "m.gob")), ErrNotTrained)
}

func TestNaiveBayes_SaveLoadRoundTrip(t *testing.T) {
	model := trainFixture(t)
	path := filepath.Join(t.TempDir(), "tx_category_model.gob")

	require.NoError(t, model.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	texts := []string{"uber airport", "latte", "groceries market"}
	want, err := model.Predict(context.Background(), texts)
	require.NoError(t, err)
	got, err := loaded.Predict(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, model.Classes(), loaded.Classes())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.gob"))
	assert.ErrorIs(t, err, ErrModelNotFound)
}
