package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"statement-ledger/internal/models"
	"statement-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

type insightsService struct {
	txRepo       repositories.TransactionRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	storeTimeout time.Duration
}

func NewInsightsService(
	txRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	storeTimeout time.Duration,
) InsightsServiceInterface {
	return &insightsService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		storeTimeout: storeTimeout,
	}
}

// GenerateReport summarizes every stored transaction. A nil or zero budget
// disables the overspending check.
func (s *insightsService) GenerateReport(ctx context.Context, budget *decimal.Decimal) (*models.SpendingReport, error) {
	transactions, err := s.listTransactions(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	expenses, income := decimal.Zero, decimal.Zero
	spending := make(map[string]*models.CategorySpending)
	for i := range transactions {
		txn := &transactions[i]
		switch {
		case txn.IsDebit():
			amount := txn.AbsAmount()
			expenses = expenses.Add(amount)

			name := models.UncategorizedName
			if txn.IsCategorized() {
				if n, ok := names[*txn.CategoryID]; ok {
					name = n
				}
			}
			entry, ok := spending[name]
			if !ok {
				entry = &models.CategorySpending{Category: name, TotalAmount: decimal.Zero}
				spending[name] = entry
			}
			entry.TransactionCount++
			entry.TotalAmount = entry.TotalAmount.Add(amount)
		case txn.IsCredit():
			income = income.Add(txn.AbsAmount())
		}
	}

	report := &models.SpendingReport{
		TotalExpenses:    expenses.Round(2),
		TotalIncome:      income.Round(2),
		NetSavings:       income.Sub(expenses).Round(2),
		CategorySpending: make([]models.CategorySpending, 0, len(spending)),
		Insights:         []string{},
	}
	for _, entry := range spending {
		entry.TotalAmount = entry.TotalAmount.Round(2)
		report.CategorySpending = append(report.CategorySpending, *entry)
	}
	sort.Slice(report.CategorySpending, func(i, j int) bool {
		a, b := report.CategorySpending[i], report.CategorySpending[j]
		if !a.TotalAmount.Equal(b.TotalAmount) {
			return a.TotalAmount.GreaterThan(b.TotalAmount)
		}
		return a.Category < b.Category
	})
	if len(report.CategorySpending) > 0 {
		highest := report.CategorySpending[0]
		report.HighestCategory = &highest
	}

	if budget != nil && !budget.IsZero() {
		report.Overspending = expenses.GreaterThan(*budget)
	}

	if expenses.IsPositive() {
		report.Insights = append(report.Insights, fmt.Sprintf("Total expenses: $%s", report.TotalExpenses.StringFixed(2)))
	}
	if income.IsPositive() {
		report.Insights = append(report.Insights, fmt.Sprintf("Total income: $%s", report.TotalIncome.StringFixed(2)))
	}
	if income.IsPositive() && expenses.IsPositive() {
		rate := income.Sub(expenses).Div(income).Mul(hundred).Round(1)
		report.SavingsRate = &rate
		report.Insights = append(report.Insights,
			fmt.Sprintf("Net savings: $%s", report.NetSavings.StringFixed(2)),
			fmt.Sprintf("Savings rate: %s%%", rate.StringFixed(1)),
		)
	}
	if report.HighestCategory != nil {
		report.Insights = append(report.Insights, fmt.Sprintf("Highest spending: %s ($%s)",
			report.HighestCategory.Category, report.HighestCategory.TotalAmount.StringFixed(2)))
	}
	if report.Overspending {
		report.Insights = append(report.Insights, "You are over budget!")
	}

	return report, nil
}

// GenerateDailySpending totals debits per calendar date, oldest first.
func (s *insightsService) GenerateDailySpending(ctx context.Context) (*models.DailySpendingReport, error) {
	transactions, err := s.listTransactions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsDebit() {
			continue
		}
		date := txn.DateKey()
		totals[date] = totals[date].Add(txn.AbsAmount())
	}

	report := &models.DailySpendingReport{
		Days:             make([]models.DailySpending, 0, len(totals)),
		TransactionCount: len(transactions),
	}
	for date, amount := range totals {
		report.Days = append(report.Days, models.DailySpending{Date: date, Amount: amount.Round(2)})
	}
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date < report.Days[j].Date
	})

	return report, nil
}

func (s *insightsService) listTransactions(ctx context.Context) ([]models.Transaction, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	transactions, err := s.txRepo.List(ctx, models.TransactionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *insightsService) categoryNames(ctx context.Context) (map[int]string, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}
