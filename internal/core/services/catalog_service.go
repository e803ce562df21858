package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/shopspring/decimal"
)

// catalogService implements CatalogSvcFacade. Atomicity of stock mutation is
// the repository's responsibility; this layer enforces branch ownership and
// the create-vs-restock decision of PURCHASE_PRODUCT.
type catalogService struct {
	productRepo portsrepo.ProductRepository
}

// NewCatalogService creates the catalog service.
func NewCatalogService(productRepo portsrepo.ProductRepository) portssvc.CatalogSvcFacade {
	return &catalogService{productRepo: productRepo}
}

// GetProduct returns one product by its (productID, branchID) key.
func (s *catalogService) GetProduct(ctx context.Context, productID, branchID string) (*domain.Product, error) {
	return s.productRepo.FindProductByKey(ctx, productID, branchID)
}

// ListProductsByBranch returns one branch's catalog snapshot.
func (s *catalogService) ListProductsByBranch(ctx context.Context, branchID string) ([]domain.Product, error) {
	return s.productRepo.ListProductsByBranch(ctx, branchID)
}

// ListProducts returns the whole catalog snapshot.
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// Restock adds stock to an existing product or creates a new catalog entry.
// Operators may only purchase stock for their own branch.
func (s *catalogService) Restock(ctx context.Context, operator domain.Employee, req dto.RestockRequest) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidQuantity, req.Quantity)
	}
	if req.BranchID != operator.BranchID {
		return nil, fmt.Errorf("%w: cannot purchase stock for branch %s", apperrors.ErrForbidden, req.BranchID)
	}

	// Without creation fields the request can only restock an existing entry;
	// AddStock is atomic on its own.
	if req.Name == "" || req.Category == "" {
		product, err := s.productRepo.AddStock(ctx, req.ProductID, req.BranchID, req.Quantity)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: name and category are required for a new product", apperrors.ErrValidation)
		}
		if err != nil {
			return nil, err
		}
		return product, nil
	}

	if req.UnitPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}

	// With creation fields present, the exists check and the mutation must be
	// one repository step: deciding out here would let two concurrent creates
	// of the same key overwrite each other's quantity.
	candidate := domain.Product{
		ProductID: req.ProductID,
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.UnitPrice,
		Stock:     req.Quantity,
		BranchID:  req.BranchID,
	}
	product, _, err := s.productRepo.AddStockOrCreate(ctx, candidate)
	if err != nil {
		return nil, err
	}
	return product, nil
}
