package memstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo *ProductRepository, stock int) {
	t.Helper()
	err := repo.SaveProduct(context.Background(), domain.Product{
		ProductID: "P1",
		Name:      "Desk Lamp",
		Category:  "Lighting",
		Price:     decimal.NewFromInt(100),
		Stock:     stock,
		BranchID:  "TV01",
	})
	require.NoError(t, err)
}

func TestDecrementStock(t *testing.T) {
	repo := NewProductRepository()
	seedProduct(t, repo, 10)

	product, err := repo.DecrementStock(context.Background(), "P1", "TV01", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, product.Stock)

	_, err = repo.DecrementStock(context.Background(), "P1", "TV01", 7)
	require.ErrorIs(t, err, apperrors.ErrInsufficientStock)

	// A rejected decrement leaves stock untouched.
	current, err := repo.FindProductByKey(context.Background(), "P1", "TV01")
	require.NoError(t, err)
	assert.Equal(t, 6, current.Stock)
}

func TestDecrementStockUnknownProduct(t *testing.T) {
	repo := NewProductRepository()

	_, err := repo.DecrementStock(context.Background(), "P1", "TV01", 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

// The check and the decrement are one critical section: under concurrent
// decrements the successes never jointly exceed the starting stock.
func TestDecrementStockConcurrent(t *testing.T) {
	repo := NewProductRepository()
	seedProduct(t, repo, 30)

	const (
		workers    = 20
		perAttempt = 2
	)
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		decremented int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.DecrementStock(context.Background(), "P1", "TV01", perAttempt); err == nil {
				mu.Lock()
				decremented += perAttempt
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	product, err := repo.FindProductByKey(context.Background(), "P1", "TV01")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, product.Stock, 0)
	assert.Equal(t, 30, decremented+product.Stock)
}

func TestAddStockRequiresExistingProduct(t *testing.T) {
	repo := NewProductRepository()

	_, err := repo.AddStock(context.Background(), "P1", "TV01", 5)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	seedProduct(t, repo, 1)
	product, err := repo.AddStock(context.Background(), "P1", "TV01", 5)
	require.NoError(t, err)
	assert.Equal(t, 6, product.Stock)
}

func TestAddStockOrCreate(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	candidate := domain.Product{
		ProductID: "P2",
		Name:      "Office Chair",
		Category:  "Furniture",
		Price:     decimal.NewFromInt(250),
		Stock:     4,
		BranchID:  "TV01",
	}
	product, created, err := repo.AddStockOrCreate(ctx, candidate)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 4, product.Stock)

	// A second call for the same key restocks and keeps the creation fields.
	candidate.Name = "Gaming Chair"
	product, created, err = repo.AddStockOrCreate(ctx, candidate)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 8, product.Stock)
	assert.Equal(t, "Office Chair", product.Name)
}

// The exists check and the mutation are one critical section: concurrent
// calls for the same fresh key sum their quantities, with exactly one of
// them creating the entry.
func TestAddStockOrCreateConcurrent(t *testing.T) {
	repo := NewProductRepository()

	const (
		workers    = 8
		perAttempt = 5
	)
	var (
		wg      sync.WaitGroup
		creates atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := repo.AddStockOrCreate(context.Background(), domain.Product{
				ProductID: "P2",
				Name:      "Office Chair",
				Category:  "Furniture",
				Price:     decimal.NewFromInt(250),
				Stock:     perAttempt,
				BranchID:  "TV01",
			})
			assert.NoError(t, err)
			if created {
				creates.Add(1)
			}
		}()
	}
	wg.Wait()

	product, err := repo.FindProductByKey(context.Background(), "P2", "TV01")
	require.NoError(t, err)
	assert.Equal(t, workers*perAttempt, product.Stock)
	assert.Equal(t, int32(1), creates.Load())
}

func TestProductsAreBranchScoped(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveProduct(ctx, domain.Product{ProductID: "P1", BranchID: "TV01", Stock: 3, Price: decimal.NewFromInt(10)}))
	require.NoError(t, repo.SaveProduct(ctx, domain.Product{ProductID: "P1", BranchID: "HF01", Stock: 8, Price: decimal.NewFromInt(12)}))

	_, err := repo.DecrementStock(ctx, "P1", "TV01", 3)
	require.NoError(t, err)

	other, err := repo.FindProductByKey(ctx, "P1", "HF01")
	require.NoError(t, err)
	assert.Equal(t, 8, other.Stock, "the same product id in another branch is independent")

	tv, err := repo.ListProductsByBranch(ctx, "TV01")
	require.NoError(t, err)
	assert.Len(t, tv, 1)
}
