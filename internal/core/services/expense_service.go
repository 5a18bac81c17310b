package services

import (
	"context"
	"fmt"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/utils"
)

// ExpenseService implements the expenses vertical. Category is free text: the
// fixed category list is a form convenience, not a constraint.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates an ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error) {
	expense := req.ToModel()
	if expense.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if expense.Category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if !expense.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := validateCalendarDate(expense.Date); err != nil {
		return nil, err
	}

	saved, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}
	return &saved, nil
}

func (s *ExpenseService) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by id in service: %w", err)
	}
	return expense, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, query dto.ListQuery) ([]models.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}

	expenses = utils.SearchRecords(expenses, query.Search, func(expense models.Expense) []string {
		return []string{expense.Description, expense.Category, expense.InvoiceNumber}
	})

	switch query.SortBy {
	case "date":
		expenses = utils.SortRecords(expenses, func(a, b models.Expense) bool { return a.Date < b.Date }, query.Descending())
	case "amount":
		expenses = utils.SortRecords(expenses, func(a, b models.Expense) bool { return a.Amount.LessThan(b.Amount) }, query.Descending())
	case "category":
		expenses = utils.SortRecords(expenses, func(a, b models.Expense) bool { return a.Category < b.Category }, query.Descending())
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	if req.Description != nil && *req.Description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}
	if req.Category != nil && *req.Category == "" {
		return nil, fmt.Errorf("%w: category must not be empty", apperrors.ErrValidation)
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Date != nil {
		if err := validateCalendarDate(*req.Date); err != nil {
			return nil, err
		}
	}

	updated, err := s.expenseRepo.UpdateExpense(ctx, id, req.ToPatch())
	if err != nil {
		return nil, fmt.Errorf("failed to update expense in service: %w", err)
	}
	return updated, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}
	return nil
}
