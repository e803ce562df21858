package services

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/dto"
)

// CatalogReaderSvc defines read access to the product catalog. Listings are
// point-in-time snapshots.
type CatalogReaderSvc interface {
	GetProduct(ctx context.Context, productID, branchID string) (*domain.Product, error)
	ListProductsByBranch(ctx context.Context, branchID string) ([]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// CatalogWriterSvc defines catalog mutation outside the sale path.
type CatalogWriterSvc interface {
	// Restock adds stock to an existing (productID, branchID) product or
	// creates a new one. Fails with apperrors.ErrForbidden when the target
	// branch is not the operator's own branch, and with
	// apperrors.ErrInvalidQuantity on a non-positive quantity.
	Restock(ctx context.Context, operator domain.Employee, req dto.RestockRequest) (*domain.Product, error)
}

// CatalogSvcFacade combines the catalog service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
