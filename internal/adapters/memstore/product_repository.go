package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// ProductRepository is the in-memory catalog. One mutex guards the whole
// map; in particular the stock check and decrement of a sale run inside a
// single critical section, so concurrent sales of the same product can never
// jointly overdraw stock. List queries copy under the read lock, giving
// callers a consistent point-in-time view.
type ProductRepository struct {
	mu    sync.RWMutex
	byKey map[domain.ProductKey]domain.Product
}

// NewProductRepository creates an empty catalog.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{byKey: make(map[domain.ProductKey]domain.Product)}
}

// SaveProduct inserts or replaces the product identified by its
// (productID, branchID) key.
func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[product.Key()] = product
	return nil
}

// FindProductByKey returns a copy of the product or apperrors.ErrNotFound.
func (r *ProductRepository) FindProductByKey(ctx context.Context, productID, branchID string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.byKey[domain.ProductKey{ProductID: productID, BranchID: branchID}]
	if !exists {
		return nil, fmt.Errorf("%w: product %s in branch %s", apperrors.ErrNotFound, productID, branchID)
	}
	return &product, nil
}

// ListProductsByBranch returns a snapshot of one branch's products.
func (r *ProductRepository) ListProductsByBranch(ctx context.Context, branchID string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0)
	for key, p := range r.byKey {
		if key.BranchID == branchID {
			products = append(products, p)
		}
	}
	sortProducts(products)
	return products, nil
}

// ListProducts returns a snapshot of the whole catalog.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.byKey))
	for _, p := range r.byKey {
		products = append(products, p)
	}
	sortProducts(products)
	return products, nil
}

// AddStock increases an existing product's stock and returns the
// post-mutation snapshot.
func (r *ProductRepository) AddStock(ctx context.Context, productID, branchID string, quantity int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.ProductKey{ProductID: productID, BranchID: branchID}
	product, exists := r.byKey[key]
	if !exists {
		return nil, fmt.Errorf("%w: product %s in branch %s", apperrors.ErrNotFound, productID, branchID)
	}

	product.Stock += quantity
	r.byKey[key] = product
	return &product, nil
}

// AddStockOrCreate increases the stock of the product matching candidate's
// key by candidate.Stock, or inserts candidate when the key is absent. The
// lookup and the mutation run inside one critical section, so concurrent
// calls for the same key sum their quantities instead of clobbering each
// other. An existing entry keeps its creation fields.
func (r *ProductRepository) AddStockOrCreate(ctx context.Context, candidate domain.Product) (*domain.Product, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := candidate.Key()
	existing, exists := r.byKey[key]
	if exists {
		existing.Stock += candidate.Stock
		r.byKey[key] = existing
		return &existing, false, nil
	}

	r.byKey[key] = candidate
	return &candidate, true, nil
}

// DecrementStock runs the stock check and the decrement as one linearized
// step and returns the post-mutation snapshot.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID, branchID string, quantity int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.ProductKey{ProductID: productID, BranchID: branchID}
	product, exists := r.byKey[key]
	if !exists {
		return nil, fmt.Errorf("%w: product %s in branch %s", apperrors.ErrNotFound, productID, branchID)
	}
	if product.Stock < quantity {
		return nil, fmt.Errorf("%w: product %s has %d in stock, requested %d",
			apperrors.ErrInsufficientStock, productID, product.Stock, quantity)
	}

	product.Stock -= quantity
	r.byKey[key] = product
	return &product, nil
}

// ReplaceProducts restores the catalog from persisted records.
func (r *ProductRepository) ReplaceProducts(ctx context.Context, products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey = make(map[domain.ProductKey]domain.Product, len(products))
	for _, p := range products {
		r.byKey[p.Key()] = p
	}
	return nil
}

func sortProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool {
		if products[i].BranchID != products[j].BranchID {
			return products[i].BranchID < products[j].BranchID
		}
		return products[i].ProductID < products[j].ProductID
	})
}
