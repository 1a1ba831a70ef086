package models

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var monthKeyPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-\d{2}$`)

// MonthlyIncome is one month bucket keyed by MM-YY.
type MonthlyIncome struct {
	Month  string          `gorm:"primaryKey;type:varchar(5)" json:"month"`
	Income decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
}

func (MonthlyIncome) TableName() string {
	return "income"
}

// IsValidMonthKey reports whether key has the MM-YY shape.
func IsValidMonthKey(key string) bool {
	return monthKeyPattern.MatchString(key)
}
