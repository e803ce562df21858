package services

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/dto"
)

// SaleSvcFacade executes sale transactions against the shared catalog and
// ledger. The stock check and decrement are linearized per product: two
// concurrent sales of the same product can never jointly overdraw stock.
type SaleSvcFacade interface {
	// Sell validates the request, applies the customer's tier discount,
	// atomically deducts inventory and appends the resulting ledger record.
	// ADMIN accounts are excluded from selling (apperrors.ErrForbidden).
	Sell(ctx context.Context, operator domain.Employee, req dto.SellRequest) (*domain.SaleRecord, error)

	// ListSales returns the fully materialized ledger snapshot.
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)

	// ListSalesPage returns one page of the ledger plus the cursor for the
	// next page (empty on the last page). Serves the reporting API.
	ListSalesPage(ctx context.Context, limit int, nextToken string) ([]domain.SaleRecord, string, error)
}
