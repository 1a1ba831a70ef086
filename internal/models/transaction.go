package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeCredit = "Credit"
	TransactionTypeDebit  = "Debit"

	// DateLayout is the normalized calendar date every parsed transaction carries.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionDate = errors.New("transaction date must be YYYY-MM-DD")
	ErrInvalidConfidence      = errors.New("category confidence must be between 0 and 1")
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Transaction is one categorized statement line as persisted in the ledger store.
type Transaction struct {
	ID                 uint            `gorm:"primaryKey" json:"id,omitempty"`
	Date               string          `gorm:"type:date;not null;index" json:"date"`
	Description        string          `gorm:"type:text" json:"description"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType    string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	CategoryID         *int            `gorm:"index" json:"category_id,omitempty"`
	CategoryConfidence *float64        `json:"category_confidence,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// IsCredit reports whether the row is a credit, ignoring case and surrounding whitespace.
func (t *Transaction) IsCredit() bool {
	return strings.EqualFold(strings.TrimSpace(t.TransactionType), TransactionTypeCredit)
}

func (t *Transaction) IsDebit() bool {
	return strings.EqualFold(strings.TrimSpace(t.TransactionType), TransactionTypeDebit)
}

func (t *Transaction) IsCategorized() bool {
	return t.CategoryID != nil
}

// AbsAmount returns the unsigned amount; statements disagree on the sign of credits.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// DateKey returns the YYYY-MM-DD form of Date. Drivers that scan a date column
// into a string may hand back a full timestamp; only the calendar date is kept.
func (t *Transaction) DateKey() string {
	if len(t.Date) >= len(DateLayout) {
		candidate := t.Date[:len(DateLayout)]
		if _, err := time.Parse(DateLayout, candidate); err == nil {
			return candidate
		}
	}
	return t.Date
}

// Validate checks the invariants of a row about to be stored. The type is
// free text; rows that are neither credit nor debit are kept as they are.
func (t *Transaction) Validate() error {
	if !isoDatePattern.MatchString(t.Date) {
		return ErrInvalidTransactionDate
	}
	if t.CategoryConfidence != nil && (*t.CategoryConfidence < 0 || *t.CategoryConfidence > 1) {
		return ErrInvalidConfidence
	}
	return nil
}

// Clone returns a copy that shares no pointer fields with t.
func (t Transaction) Clone() Transaction {
	out := t
	if t.CategoryID != nil {
		id := *t.CategoryID
		out.CategoryID = &id
	}
	if t.CategoryConfidence != nil {
		c := *t.CategoryConfidence
		out.CategoryConfidence = &c
	}
	return out
}

// CloneTransactions deep-copies a batch.
func CloneTransactions(in []Transaction) []Transaction {
	out := make([]Transaction, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
