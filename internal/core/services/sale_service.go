package services

import (
	"context"
	"fmt"
	"time"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/retailcore/branch_retail_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultSalesPageSize = 50

// saleService implements SaleSvcFacade. The stock check and decrement are
// delegated to ProductRepository.DecrementStock, which linearizes them per
// product; everything before that step is read-only, so a failed sale leaves
// no trace.
type saleService struct {
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
	saleRepo     portsrepo.SaleRepository
}

// NewSaleService creates the sale transaction engine.
func NewSaleService(
	customerRepo portsrepo.CustomerRepository,
	productRepo portsrepo.ProductRepository,
	saleRepo portsrepo.SaleRepository,
) portssvc.SaleSvcFacade {
	return &saleService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
	}
}

// Sell executes one sale transaction and returns the resulting ledger record.
func (s *saleService) Sell(ctx context.Context, operator domain.Employee, req dto.SellRequest) (*domain.SaleRecord, error) {
	if operator.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: admin accounts cannot sell", apperrors.ErrForbidden)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidQuantity, req.Quantity)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.DecrementStock(ctx, req.ProductID, req.BranchID, req.Quantity)
	if err != nil {
		return nil, err
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
	final := customer.Tier.FinalPrice(total)

	record := domain.SaleRecord{
		SaleID:     uuid.NewString(),
		ProductID:  product.ProductID,
		Name:       product.Name,
		Category:   product.Category,
		BranchID:   product.BranchID,
		Quantity:   req.Quantity,
		FinalPrice: final,
		SoldAt:     time.Now().UTC(),
	}
	if err := s.saleRepo.AppendSale(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append sale record: %w", err)
	}
	return &record, nil
}

// ListSales returns the materialized ledger snapshot.
func (s *saleService) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	return s.saleRepo.ListSales(ctx)
}

// ListSalesPage returns one ledger page plus the cursor for the next page.
func (s *saleService) ListSalesPage(ctx context.Context, limit int, nextToken string) ([]domain.SaleRecord, string, error) {
	if limit <= 0 || limit > defaultSalesPageSize {
		limit = defaultSalesPageSize
	}

	var (
		after  time.Time
		saleID string
	)
	if nextToken != "" {
		var err error
		after, saleID, err = pagination.DecodeSaleToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	records, err := s.saleRepo.ListSalesAfter(ctx, after, saleID, limit)
	if err != nil {
		return nil, "", err
	}

	token := ""
	if len(records) == limit {
		last := records[len(records)-1]
		token = pagination.EncodeSaleToken(last.SoldAt, last.SaleID)
	}
	return records, token, nil
}
