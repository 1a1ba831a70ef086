// Package classifier holds the text-to-category model contract and a
// naive-Bayes implementation trained from labeled transaction descriptions.
package classifier

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

var (
	ErrNotTrained    = errors.New("classifier is not trained")
	ErrTooFewLabels  = errors.New("training data needs at least two distinct labels")
	ErrModelNotFound = errors.New("classifier model not found")
)

// Classifier predicts one label per input text, in input order.
type Classifier interface {
	Predict(ctx context.Context, texts []string) ([]string, error)
}

// ProbabilityClassifier is the optional capability of reporting per-class
// probabilities. Row i of the result belongs to texts[i].
type ProbabilityClassifier interface {
	Classifier
	PredictProba(ctx context.Context, texts []string) ([][]float64, error)
}

// Tokenize lowercases text, splits it on anything that is not a letter or a
// digit, and appends adjacent-word bigrams.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) < 2 {
		return words
	}

	tokens := make([]string, 0, 2*len(words)-1)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+" "+words[i+1])
	}
	return tokens
}
