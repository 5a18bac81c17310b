package services

import (
	"context"
	"fmt"
	"time"

	"github.com/daftari-app/daftari/internal/apperrors"
	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/models"
	"github.com/daftari-app/daftari/internal/utils"
)

// SaleService implements the sales vertical. Writes are validated here, at
// the repository boundary, instead of trusting the caller.
type SaleService struct {
	saleRepo portsrepo.SaleRepository
}

// NewSaleService creates a SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*models.Sale, error) {
	sale := req.ToModel()
	if err := validateSale(sale); err != nil {
		return nil, err
	}

	saved, err := s.saleRepo.SaveSale(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("failed to create sale in service: %w", err)
	}
	return &saved, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, id string) (*models.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale by id in service: %w", err)
	}
	return sale, nil
}

func (s *SaleService) ListSales(ctx context.Context, query dto.ListQuery) ([]models.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales in service: %w", err)
	}

	sales = utils.SearchRecords(sales, query.Search, func(sale models.Sale) []string {
		return []string{sale.DesignType, sale.CustomerName, sale.CustomerPhone}
	})

	switch query.SortBy {
	case "date":
		sales = utils.SortRecords(sales, func(a, b models.Sale) bool { return a.Date < b.Date }, query.Descending())
	case "revenue":
		sales = utils.SortRecords(sales, func(a, b models.Sale) bool { return a.Revenue.LessThan(b.Revenue) }, query.Descending())
	case "netProfit":
		sales = utils.SortRecords(sales, func(a, b models.Sale) bool { return a.NetProfit.LessThan(b.NetProfit) }, query.Descending())
	case "customerName":
		sales = utils.SortRecords(sales, func(a, b models.Sale) bool { return a.CustomerName < b.CustomerName }, query.Descending())
	}

	if sales == nil {
		sales = []models.Sale{}
	}
	return sales, nil
}

func (s *SaleService) UpdateSale(ctx context.Context, id string, req dto.UpdateSaleRequest) (*models.Sale, error) {
	if err := validateSalePatch(req); err != nil {
		return nil, err
	}

	updated, err := s.saleRepo.UpdateSale(ctx, id, req.ToPatch())
	if err != nil {
		return nil, fmt.Errorf("failed to update sale in service: %w", err)
	}
	return updated, nil
}

func (s *SaleService) DeleteSale(ctx context.Context, id string) error {
	if err := s.saleRepo.DeleteSale(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sale in service: %w", err)
	}
	return nil
}

func validateSale(sale models.Sale) error {
	if sale.DesignType == "" {
		return fmt.Errorf("%w: design type is required", apperrors.ErrValidation)
	}
	if sale.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if sale.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	}
	if sale.Revenue.IsNegative() || sale.Materials.IsNegative() || sale.Expenses.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if err := validateCalendarDate(sale.Date); err != nil {
		return err
	}
	return nil
}

func validateSalePatch(req dto.UpdateSaleRequest) error {
	if req.DesignType != nil && *req.DesignType == "" {
		return fmt.Errorf("%w: design type must not be empty", apperrors.ErrValidation)
	}
	if req.CustomerName != nil && *req.CustomerName == "" {
		return fmt.Errorf("%w: customer name must not be empty", apperrors.ErrValidation)
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	}
	if (req.Revenue != nil && req.Revenue.IsNegative()) ||
		(req.Materials != nil && req.Materials.IsNegative()) ||
		(req.Expenses != nil && req.Expenses.IsNegative()) {
		return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if req.Date != nil {
		if err := validateCalendarDate(*req.Date); err != nil {
			return err
		}
	}
	return nil
}

func validateCalendarDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be a YYYY-MM-DD calendar date", apperrors.ErrValidation)
	}
	return nil
}
