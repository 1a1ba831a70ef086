package classifier

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

const (
	HeaderDescription = "description"
	HeaderCategoryID  = "category_id"
)

var (
	ErrTrainingColumns = errors.New("could not find description/category columns")
	ErrNoTrainingRows  = errors.New("no rows found in training data after filtering")
)

var (
	descriptionCandidates = []string{"description", "desc", "transaction description", "details"}
	labelCandidates       = []string{"category_id", "category", "cat", "label"}
	descriptionKeywords   = []string{"desc", "description", "detail"}
	labelKeywords         = []string{"cat", "category", "label"}
)

// Example is one labeled training description.
type Example struct {
	Description string
	Label       string
}

type TrainOptions struct {
	// TestSize is the held-out fraction per label, in [0, 1).
	TestSize float64
	Seed     int64
	// MinDocFreq drops tokens seen in fewer training documents.
	MinDocFreq int
	// UseAll trains on every example and skips evaluation.
	UseAll bool
}

func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		TestSize:   0.15,
		Seed:       42,
		MinDocFreq: 2,
	}
}

type TrainingReport struct {
	TrainCount int      `json:"train_count"`
	TestCount  int      `json:"test_count"`
	Correct    int      `json:"correct"`
	Accuracy   float64  `json:"accuracy"`
	Classes    []string `json:"classes"`
}

// ReadTrainingCSV reads labeled descriptions. The description and label
// columns are detected by name, exact candidates first, then by keyword.
// Rows missing either value are dropped.
func ReadTrainingCSV(r io.Reader) ([]Example, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTrainingRows
		}
		return nil, fmt.Errorf("failed to read training header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	descCol := detectColumn(header, descriptionCandidates, descriptionKeywords)
	labelCol := detectColumn(header, labelCandidates, labelKeywords)
	if descCol < 0 || labelCol < 0 || descCol == labelCol {
		return nil, fmt.Errorf("%w; detected columns: %v", ErrTrainingColumns, header)
	}

	var examples []Example
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read training row: %w", err)
		}
		if descCol >= len(record) || labelCol >= len(record) {
			continue
		}

		description := strings.TrimSpace(record[descCol])
		label := normalizeLabel(record[labelCol])
		if description == "" || label == "" {
			continue
		}
		examples = append(examples, Example{Description: description, Label: label})
	}

	if len(examples) == 0 {
		return nil, ErrNoTrainingRows
	}
	return examples, nil
}

// WriteTrainingCSV writes examples with the description,category_id header.
func WriteTrainingCSV(w io.Writer, examples []Example) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{HeaderDescription, HeaderCategoryID}); err != nil {
		return fmt.Errorf("failed to write training header: %w", err)
	}
	for _, ex := range examples {
		if err := writer.Write([]string{ex.Description, ex.Label}); err != nil {
			return fmt.Errorf("failed to write training row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func detectColumn(header []string, candidates, keywords []string) int {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, candidate := range candidates {
		for i, h := range lower {
			if h == candidate {
				return i
			}
		}
	}
	for i, h := range lower {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return i
			}
		}
	}
	return -1
}

// normalizeLabel trims the label and collapses integral floats ("3.0") to
// their integer form so numeric category ids stay comparable.
func normalizeLabel(raw string) string {
	label := strings.TrimSpace(raw)
	if label == "" || strings.EqualFold(label, "nan") {
		return ""
	}
	if f, err := strconv.ParseFloat(label, 64); err == nil && !math.IsInf(f, 0) && f == math.Trunc(f) && !strings.ContainsAny(label, "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	return label
}

// Train fits a NaiveBayes model. Unless opts.UseAll is set, a stratified
// seeded split holds out opts.TestSize of every label for evaluation; a
// label with a single example is always trained on.
func Train(examples []Example, opts TrainOptions) (*NaiveBayes, *TrainingReport, error) {
	if len(examples) == 0 {
		return nil, nil, ErrNoTrainingRows
	}
	if opts.TestSize < 0 || opts.TestSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be in [0, 1), got %v", opts.TestSize)
	}

	train, test := examples, []Example(nil)
	if !opts.UseAll && opts.TestSize > 0 {
		train, test = stratifiedSplit(examples, opts.TestSize, opts.Seed)
	}

	docs := make([][]string, len(train))
	for i, ex := range train {
		docs[i] = Tokenize(ex.Description)
	}
	docs = filterByDocFreq(docs, opts.MinDocFreq)

	var keptDocs [][]string
	var keptLabels []string
	seen := make(map[string]bool)
	var labels []string
	for i, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		keptDocs = append(keptDocs, doc)
		keptLabels = append(keptLabels, train[i].Label)
		if !seen[train[i].Label] {
			seen[train[i].Label] = true
			labels = append(labels, train[i].Label)
		}
	}
	sort.Strings(labels)

	model, err := newNaiveBayes(labels, keptDocs, keptLabels)
	if err != nil {
		return nil, nil, err
	}

	report := &TrainingReport{
		TrainCount: len(keptDocs),
		TestCount:  len(test),
		Classes:    model.Classes(),
	}
	for _, ex := range test {
		_, best, _ := model.model.LogScores(Tokenize(ex.Description))
		if string(model.model.Classes[best]) == ex.Label {
			report.Correct++
		}
	}
	if report.TestCount > 0 {
		report.Accuracy = float64(report.Correct) / float64(report.TestCount)
	}

	return model, report, nil
}

func stratifiedSplit(examples []Example, testSize float64, seed int64) (train, test []Example) {
	byLabel := make(map[string][]int)
	var order []string
	for i, ex := range examples {
		if _, ok := byLabel[ex.Label]; !ok {
			order = append(order, ex.Label)
		}
		byLabel[ex.Label] = append(byLabel[ex.Label], i)
	}
	sort.Strings(order)

	rng := rand.New(rand.NewSource(seed))
	for _, label := range order {
		idx := byLabel[label]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		n := int(math.Round(float64(len(idx)) * testSize))
		if n >= len(idx) {
			n = len(idx) - 1
		}
		for k, i := range idx {
			if k < n {
				test = append(test, examples[i])
			} else {
				train = append(train, examples[i])
			}
		}
	}
	return train, test
}

// filterByDocFreq removes tokens that appear in fewer than minDF documents.
func filterByDocFreq(docs [][]string, minDF int) [][]string {
	if minDF <= 1 {
		return docs
	}

	df := make(map[string]int)
	for _, doc := range docs {
		unique := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			unique[tok] = struct{}{}
		}
		for tok := range unique {
			df[tok]++
		}
	}

	out := make([][]string, len(docs))
	for i, doc := range docs {
		for _, tok := range doc {
			if df[tok] >= minDF {
				out[i] = append(out[i], tok)
			}
		}
	}
	return out
}
