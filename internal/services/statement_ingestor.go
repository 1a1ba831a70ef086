package services

import (
	"errors"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/models"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultMaxUploadBytes is the largest statement accepted.
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

var (
	errEmptyDate = errors.New("date is empty")

	excelSerialPattern   = regexp.MustCompile(`^\d{5}(\.\d+)?$`)
	numericDatePattern   = regexp.MustCompile(`^(\d{1,2})([/.-])(\d{1,2})([/.-])(\d{2,4})$`)
	missingAmountMarkers = map[string]bool{
		"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
		"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true, "<NA>": true, "N/A": true,
		"NA": true, "NULL": true, "NaN": true, "None": true, "n/a": true, "nan": true, "null": true,
	}
)

type StatementIngestor struct {
	maxBytes int64
	decoders map[string]tableDecoder
}

// NewStatementIngestor builds an ingestor rejecting files above maxBytes. A
// non-positive limit selects DefaultMaxUploadBytes.
func NewStatementIngestor(maxBytes int64) StatementIngestorInterface {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &StatementIngestor{
		maxBytes: maxBytes,
		decoders: defaultDecoders(),
	}
}

// Parse validates and decodes a statement. Every failure is a
// *errors.PipelineError of kind ValidationError; checks run in a fixed order
// and the first one to fail wins.
func (si *StatementIngestor) Parse(fileBytes []byte, filename string) ([]models.Transaction, error) {
	if int64(len(fileBytes)) > si.maxBytes {
		return nil, apperrors.NewValidationFailure(apperrors.IngestFileTooLarge)
	}

	decode, ok := si.decoders[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return nil, apperrors.NewValidationFailure(apperrors.IngestUnsupportedFormat)
	}

	if len(fileBytes) == 0 {
		return nil, apperrors.NewValidationFailure(apperrors.IngestUnreadableFile)
	}
	table, err := decode(fileBytes)
	if err != nil {
		pe := apperrors.NewValidationFailure(apperrors.IngestUnreadableFile)
		pe.Err = err
		return nil, pe
	}

	columns, missing := locateColumns(table[0])
	if len(missing) > 0 {
		return nil, apperrors.NewMissingColumns(missing)
	}

	transactions := make([]models.Transaction, 0, len(table)-1)
	for i, cells := range table[1:] {
		if isBlankRow(cells) {
			continue
		}
		raw := models.RawRow{
			Line:            i + 1,
			Date:            cell(cells, columns[models.ColumnDate]),
			Description:     cell(cells, columns[models.ColumnDescription]),
			Amount:          cell(cells, columns[models.ColumnAmount]),
			TransactionType: cell(cells, columns[models.ColumnType]),
		}

		txn, err := cleanRow(raw)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

// locateColumns maps each required header to its first position. Matching is
// exact and case-sensitive.
func locateColumns(header []string) (map[string]int, []string) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	columns := make(map[string]int, 4)
	var missing []string
	for _, required := range models.RequiredColumns() {
		pos, ok := positions[required]
		if !ok {
			missing = append(missing, required)
			continue
		}
		columns[required] = pos
	}
	return columns, missing
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cleanRow(raw models.RawRow) (models.Transaction, error) {
	amountText := strings.TrimSpace(raw.Amount)
	if missingAmountMarkers[amountText] {
		return models.Transaction{}, apperrors.NewRowFailure(apperrors.IngestMissingAmount, raw.Line, nil)
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return models.Transaction{}, apperrors.NewRowFailure(apperrors.IngestInvalidAmount, raw.Line, err)
	}

	date, err := NormalizeStatementDate(raw.Date)
	if err != nil {
		return models.Transaction{}, apperrors.NewRowFailure(apperrors.IngestInvalidDate, raw.Line, err)
	}

	return models.Transaction{
		Date:            date,
		Description:     strings.TrimSpace(raw.Description),
		Amount:          amount,
		TransactionType: strings.TrimSpace(raw.TransactionType),
	}, nil
}

// NormalizeStatementDate parses any common calendar date representation and
// returns it as YYYY-MM-DD. Ambiguous numeric dates are read month first
// whatever the separator; when the first field cannot be a month the fields
// are swapped. A bare
// five-digit number is taken as a spreadsheet date serial.
func NormalizeStatementDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errEmptyDate
	}

	if excelSerialPattern.MatchString(value) {
		serial, err := strconv.ParseFloat(value, 64)
		if err == nil && !math.IsNaN(serial) {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err == nil {
				return t.Format(models.DateLayout), nil
			}
		}
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err == nil {
		return t.Format(models.DateLayout), nil
	}

	// dateparse has no dashed day/month layouts, so numeric dates are
	// retried in slash form.
	if m := numericDatePattern.FindStringSubmatch(value); m != nil && m[2] == m[4] {
		month, day := m[1], m[3]
		if first, _ := strconv.Atoi(m[1]); first > 12 {
			month, day = m[3], m[1]
		}
		if t, retryErr := dateparse.ParseIn(month+"/"+day+"/"+m[5], time.UTC); retryErr == nil {
			return t.Format(models.DateLayout), nil
		}
	}

	return "", err
}
