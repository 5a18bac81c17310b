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

// DebtService implements the debts vertical.
type DebtService struct {
	debtRepo portsrepo.DebtRepository
}

// NewDebtService creates a DebtService.
func NewDebtService(debtRepo portsrepo.DebtRepository) *DebtService {
	return &DebtService{debtRepo: debtRepo}
}

func (s *DebtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*models.Debt, error) {
	debt := req.ToModel()
	if debt.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if !debt.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := validateCalendarDate(debt.Date); err != nil {
		return nil, err
	}

	saved, err := s.debtRepo.SaveDebt(ctx, debt)
	if err != nil {
		return nil, fmt.Errorf("failed to create debt in service: %w", err)
	}
	return &saved, nil
}

func (s *DebtService) GetDebtByID(ctx context.Context, id string) (*models.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt by id in service: %w", err)
	}
	return debt, nil
}

func (s *DebtService) ListDebts(ctx context.Context, query dto.ListQuery) ([]models.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts in service: %w", err)
	}

	debts = utils.SearchRecords(debts, query.Search, func(debt models.Debt) []string {
		return []string{debt.CustomerName, debt.CustomerPhone}
	})

	switch query.SortBy {
	case "date":
		debts = utils.SortRecords(debts, func(a, b models.Debt) bool { return a.Date < b.Date }, query.Descending())
	case "amount":
		debts = utils.SortRecords(debts, func(a, b models.Debt) bool { return a.Amount.LessThan(b.Amount) }, query.Descending())
	case "customerName":
		debts = utils.SortRecords(debts, func(a, b models.Debt) bool { return a.CustomerName < b.CustomerName }, query.Descending())
	}

	if debts == nil {
		debts = []models.Debt{}
	}
	return debts, nil
}

func (s *DebtService) UpdateDebt(ctx context.Context, id string, req dto.UpdateDebtRequest) (*models.Debt, error) {
	if req.CustomerName != nil && *req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name must not be empty", apperrors.ErrValidation)
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Date != nil {
		if err := validateCalendarDate(*req.Date); err != nil {
			return nil, err
		}
	}

	updated, err := s.debtRepo.UpdateDebt(ctx, id, req.ToPatch())
	if err != nil {
		return nil, fmt.Errorf("failed to update debt in service: %w", err)
	}
	return updated, nil
}

func (s *DebtService) MarkDebtPaid(ctx context.Context, id string) (*models.Debt, error) {
	debt, err := s.debtRepo.MarkDebtPaid(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark debt paid in service: %w", err)
	}
	return debt, nil
}

func (s *DebtService) DeleteDebt(ctx context.Context, id string) error {
	if err := s.debtRepo.DeleteDebt(ctx, id); err != nil {
		return fmt.Errorf("failed to delete debt in service: %w", err)
	}
	return nil
}
