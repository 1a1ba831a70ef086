package services

import (
	"statement-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type GoalAllocator struct{}

func NewGoalAllocator() GoalAllocatorInterface {
	return &GoalAllocator{}
}

// Recompute returns the share of totalIncome owed to goal, rounded half up to cents.
func (GoalAllocator) Recompute(goal models.Goal, totalIncome decimal.Decimal) decimal.Decimal {
	return totalIncome.Mul(goal.IncomeAllocation).Div(hundred).Round(2)
}
