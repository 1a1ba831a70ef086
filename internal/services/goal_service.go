package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"statement-ledger/internal/dto"
	apperrors "statement-ledger/internal/errors"
	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"
	"statement-ledger/internal/validation"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalFieldCodes orders the fields checked on a goal and the code each one
// reports when it is the first to fail.
var goalFieldCodes = []struct {
	field string
	code  apperrors.ErrorCode
}{
	{"name", apperrors.GoalInvalidName},
	{"target_amount", apperrors.GoalInvalidTarget},
	{"income_allocation", apperrors.GoalInvalidAllocation},
}

type goalService struct {
	goalRepo   repositories.GoalRepositoryInterface
	incomeRepo repositories.IncomeRepositoryInterface
	allocator  GoalAllocatorInterface
	validator  *validation.Validator
	// storeTimeout bounds each repository call.
	storeTimeout time.Duration
}

func NewGoalService(
	goalRepo repositories.GoalRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	allocator GoalAllocatorInterface,
	validator *validation.Validator,
	storeTimeout time.Duration,
) GoalServiceInterface {
	if validator == nil {
		validator = validation.GetValidator()
	}
	return &goalService{
		goalRepo:   goalRepo,
		incomeRepo: incomeRepo,
		allocator:  allocator,
		validator:  validator,

		storeTimeout: storeTimeout,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, req dto.GoalRequest) (*models.Goal, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		Name:             strings.TrimSpace(req.Name),
		TargetAmount:     req.TargetAmount,
		IncomeAllocation: req.IncomeAllocation,
	}
	if err := s.allocate(ctx, goal); err != nil {
		return nil, err
	}

	createCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.goalRepo.Create(createCtx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, id int, req dto.GoalRequest) (*models.Goal, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	goal, err := s.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	goal.Name = strings.TrimSpace(req.Name)
	goal.TargetAmount = req.TargetAmount
	goal.IncomeAllocation = req.IncomeAllocation
	if err := s.allocate(ctx, goal); err != nil {
		return nil, err
	}

	updateCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.goalRepo.Update(updateCtx, goal); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) GetGoal(ctx context.Context, id int) (*models.Goal, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id int) error {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.goalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// allocate derives the saved amount from the current income total.
func (s *goalService) allocate(ctx context.Context, goal *models.Goal) error {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	total, err := s.incomeRepo.Total(ctx)
	if err != nil {
		return fmt.Errorf("failed to read total income: %w", err)
	}
	goal.AmountSaved = s.allocator.Recompute(*goal, total)
	return nil
}

func (s *goalService) validate(req dto.GoalRequest) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	tags := validation.FailedTags(err)
	messages := validation.FieldErrors(err)

	code := apperrors.ValidationGeneral
	for _, fc := range goalFieldCodes {
		if _, failed := tags[fc.field]; failed {
			code = fc.code
			break
		}
	}

	details := make([]string, 0, len(messages))
	for field, msg := range messages {
		details = append(details, field+" "+msg)
	}
	sort.Strings(details)

	pe := apperrors.NewValidationFailure(code)
	pe.Details = details
	pe.Err = err
	return pe
}
