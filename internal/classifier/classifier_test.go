package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single word", "UBER", []string{"uber"}},
		{"punctuation and bigrams", "Whole-Foods #123", []string{"whole", "foods", "123", "whole foods", "foods 123"}},
		{"collapses whitespace", "  coffee   shop ", []string{"coffee", "shop", "coffee shop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSoftmax(t *testing.T) {
	probs := softmax([]float64{-1, -2, -3})

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, probs[0], probs[1])
	assert.Greater(t, probs[1], probs[2])

	assert.Empty(t, softmax(nil))
}
