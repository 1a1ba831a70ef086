package models

import "github.com/shopspring/decimal"

// CategorySpending is the debit total attributed to one category name.
type CategorySpending struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// SpendingReport is the insights summary over every stored transaction.
type SpendingReport struct {
	TotalExpenses    decimal.Decimal    `json:"total_expenses"`
	TotalIncome      decimal.Decimal    `json:"total_income"`
	NetSavings       decimal.Decimal    `json:"net_savings"`
	SavingsRate      *decimal.Decimal   `json:"savings_rate,omitempty"`
	Overspending     bool               `json:"overspending"`
	CategorySpending []CategorySpending `json:"category_spending"`
	HighestCategory  *CategorySpending  `json:"highest_category,omitempty"`
	Insights         []string           `json:"insights"`
}

// DailySpending is the debit total for one calendar date.
type DailySpending struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DailySpendingReport backs the spending-over-time view.
type DailySpendingReport struct {
	Days             []DailySpending `json:"daily_spending"`
	TransactionCount int             `json:"transaction_count"`
}
