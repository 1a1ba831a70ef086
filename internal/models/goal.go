package models

import (
	"github.com/shopspring/decimal"
)

const (
	GoalNameMaxLength = 50
)

var (
	// GoalMaxAllocation is the largest income share, in percent, a goal may claim.
	GoalMaxAllocation = decimal.NewFromInt(99)
	// GoalMinTarget is the exclusive lower bound for a target amount.
	GoalMinTarget = decimal.NewFromInt(1)
)

// Goal is a savings goal. AmountSaved is derived from total income and
// IncomeAllocation and is only ever written by the allocator.
type Goal struct {
	GoalID           int             `gorm:"column:goal_id;primaryKey" json:"goal_id"`
	Name             string          `gorm:"type:varchar(50);not null" json:"name"`
	TargetAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	IncomeAllocation decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"income_allocation"`
	AmountSaved      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount_saved"`
}

func (Goal) TableName() string {
	return "goals"
}
