package models

import (
	"github.com/google/uuid"
)

// Required statement headers, in the order they are reported when missing.
const (
	ColumnDate        = "Date"
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
	ColumnType        = "Type of Transaction"
)

// RequiredColumns returns the headers a statement must carry.
func RequiredColumns() []string {
	return []string{ColumnDate, ColumnDescription, ColumnAmount, ColumnType}
}

// RawRow is one undecoded statement line, as read from the file.
type RawRow struct {
	Line            int
	Date            string
	Description     string
	Amount          string
	TransactionType string
}

// CategorizationReport describes what the categorizer did with a batch.
type CategorizationReport struct {
	Categorized   int    `json:"categorized"`
	Uncategorized int    `json:"uncategorized"`
	Skipped       bool   `json:"skipped"`
	Reason        string `json:"reason,omitempty"`
}

// MonthFailure records a bucket whose upsert did not go through.
type MonthFailure struct {
	Month string `json:"month"`
	Error string `json:"error"`
}

// GoalFailure records a goal whose recomputation did not go through.
type GoalFailure struct {
	GoalID int    `json:"goal_id"`
	Error  string `json:"error"`
}

// AggregationReport summarizes a monthly income update.
type AggregationReport struct {
	CreditsConsidered int             `json:"credits_considered"`
	UndatedCredits    int             `json:"undated_credits"`
	Buckets           []MonthlyIncome `json:"buckets"`
	MonthFailures     []MonthFailure  `json:"month_failures,omitempty"`
	GoalsRecomputed   int             `json:"goals_recomputed"`
	GoalFailures      []GoalFailure   `json:"goal_failures,omitempty"`
	TotalIncome       string          `json:"total_income"`
}

// HasFailures reports whether any month or goal was skipped.
func (r *AggregationReport) HasFailures() bool {
	return len(r.MonthFailures) > 0 || len(r.GoalFailures) > 0
}

// IngestResult is what a statement upload produces.
type IngestResult struct {
	BatchID          uuid.UUID            `json:"batch_id"`
	ParsedCount      int                  `json:"parsed_count"`
	CategorizedCount int                  `json:"categorized_count"`
	InsertedCount    int                  `json:"inserted_count"`
	InsertedRows     []Transaction        `json:"inserted_rows"`
	StrippedColumns  []string             `json:"stripped_columns,omitempty"`
	Categorization   CategorizationReport `json:"categorization"`
	Aggregation      *AggregationReport   `json:"aggregation,omitempty"`
	Message          string               `json:"message,omitempty"`
}

// RecategorizeResult summarizes a pass over uncategorized transactions.
type RecategorizeResult struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}
