package repositories

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// ProductRepository defines the catalog operations. Products are identified
// by the (productID, branchID) pair. All list queries return point-in-time
// snapshot copies. AddStock and DecrementStock are atomic with respect to
// concurrent stock mutation of the same product; DecrementStock in
// particular runs the stock check and the decrement as one linearized step
// and returns apperrors.ErrInsufficientStock when the check fails.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByKey(ctx context.Context, productID, branchID string) (*domain.Product, error)
	ListProductsByBranch(ctx context.Context, branchID string) ([]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// AddStock increases stock by quantity, creating no product; the product
	// must exist. Returns the post-mutation snapshot.
	AddStock(ctx context.Context, productID, branchID string, quantity int) (*domain.Product, error)
	// AddStockOrCreate increases the stock of the product matching candidate's
	// key by candidate.Stock, or inserts candidate as a new entry when the key
	// is absent. The lookup and the mutation are one atomic step, so two
	// concurrent calls for the same key never lose a quantity. Returns the
	// post-mutation snapshot and whether a new entry was created.
	AddStockOrCreate(ctx context.Context, candidate domain.Product) (*domain.Product, bool, error)
	// DecrementStock decreases stock by quantity after an atomic stock check.
	// Returns the post-mutation snapshot.
	DecrementStock(ctx context.Context, productID, branchID string, quantity int) (*domain.Product, error)
	// ReplaceProducts restores the catalog from persisted records.
	ReplaceProducts(ctx context.Context, products []domain.Product) error
}
