package repositories

import (
	"context"
	"errors"
	"fmt"

	"statement-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new savings goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, id int) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.WithContext(ctx).Where("goal_id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

func (r *goalRepository) List(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.WithContext(ctx).Order("goal_id ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("goal_id = ?", goal.GoalID).
		Updates(map[string]interface{}{
			"name":              goal.Name,
			"target_amount":     goal.TargetAmount,
			"income_allocation": goal.IncomeAllocation,
			"amount_saved":      goal.AmountSaved,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) UpdateAmountSaved(ctx context.Context, id int, amountSaved decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("goal_id = ?", id).
		Update("amount_saved", amountSaved)
	if result.Error != nil {
		return fmt.Errorf("failed to update goal %d amount saved: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Where("goal_id = ?", id).Delete(&models.Goal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
