package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/jbrukh/bayesian"
)

// NaiveBayes is a TF-IDF weighted multinomial naive-Bayes model. It is not
// modified after training or loading and is safe for concurrent use.
type NaiveBayes struct {
	model *bayesian.Classifier
}

func newNaiveBayes(labels []string, docs [][]string, docLabels []string) (*NaiveBayes, error) {
	if len(labels) < 2 {
		return nil, ErrTooFewLabels
	}

	classes := make([]bayesian.Class, len(labels))
	for i, label := range labels {
		classes[i] = bayesian.Class(label)
	}

	model := bayesian.NewClassifierTfIdf(classes...)
	for i, doc := range docs {
		model.Learn(doc, bayesian.Class(docLabels[i]))
	}
	model.ConvertTermsFreqToTfIdf()

	return &NaiveBayes{model: model}, nil
}

// Classes returns the labels the model can predict, in score order.
func (nb *NaiveBayes) Classes() []string {
	if nb == nil || nb.model == nil {
		return nil
	}
	out := make([]string, len(nb.model.Classes))
	for i, class := range nb.model.Classes {
		out[i] = string(class)
	}
	return out
}

func (nb *NaiveBayes) Predict(ctx context.Context, texts []string) ([]string, error) {
	if nb == nil || nb.model == nil {
		return nil, ErrNotTrained
	}

	labels := make([]string, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, best, _ := nb.model.LogScores(Tokenize(text))
		labels[i] = string(nb.model.Classes[best])
	}
	return labels, nil
}

// PredictProba turns the model's log scores into a probability distribution
// per text, ordered like Classes.
func (nb *NaiveBayes) PredictProba(ctx context.Context, texts []string) ([][]float64, error) {
	if nb == nil || nb.model == nil {
		return nil, ErrNotTrained
	}

	out := make([][]float64, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scores, _, _ := nb.model.LogScores(Tokenize(text))
		out[i] = softmax(scores)
	}
	return out, nil
}

// Save writes the model to path in the library's gob format.
func (nb *NaiveBayes) Save(path string) error {
	if nb == nil || nb.model == nil {
		return ErrNotTrained
	}
	if err := nb.model.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to save classifier model: %w", err)
	}
	return nil
}

// Load reads a model written by Save. A missing file yields ErrModelNotFound.
func Load(path string) (*NaiveBayes, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat classifier model: %w", err)
	}

	model, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier model: %w", err)
	}
	if len(model.Classes) < 2 {
		return nil, ErrTooFewLabels
	}
	return &NaiveBayes{model: model}, nil
}

func softmax(logScores []float64) []float64 {
	out := make([]float64, len(logScores))
	if len(logScores) == 0 {
		return out
	}

	max := math.Inf(-1)
	for _, s := range logScores {
		if s > max {
			max = s
		}
	}
	if math.IsInf(max, -1) {
		uniform := 1 / float64(len(logScores))
		for i := range out {
			out[i] = uniform
		}
		return out
	}

	var sum float64
	for i, s := range logScores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
