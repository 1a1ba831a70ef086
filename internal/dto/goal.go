package dto

import "github.com/shopspring/decimal"

// GoalRequest is the client-supplied part of a savings goal. The saved amount
// is derived and therefore absent.
type GoalRequest struct {
	Name             string          `json:"name" validate:"notblank,max=50"`
	TargetAmount     decimal.Decimal `json:"target_amount" validate:"decimal_gt=1,decimal_places=2"`
	IncomeAllocation decimal.Decimal `json:"income_allocation" validate:"decimal_gte=0,decimal_lte=99,decimal_places=2"`
}
