package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/retailcore/branch_retail_app/internal/adapters/memstore"
	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/core/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	products *memstore.ProductRepository
	service  portssvc.CatalogSvcFacade

	operator domain.Employee
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.products = memstore.NewProductRepository()
	s.service = services.NewCatalogService(s.products)
	s.operator = domain.Employee{EmployeeID: "100000001", Name: "Dana Levi", BranchID: "TV01", Role: domain.RoleManager}

	s.Require().NoError(s.products.SaveProduct(context.Background(), domain.Product{
		ProductID: "P1",
		Name:      "Desk Lamp",
		Category:  "Lighting",
		Price:     decimal.NewFromInt(100),
		Stock:     10,
		BranchID:  "TV01",
	}))
}

func (s *CatalogServiceTestSuite) TestRestockExistingProduct() {
	product, err := s.service.Restock(context.Background(), s.operator, dto.RestockRequest{
		ProductID: "P1",
		BranchID:  "TV01",
		Quantity:  5,
	})
	s.Require().NoError(err)
	s.Equal(15, product.Stock)
	s.Equal("Desk Lamp", product.Name, "existing entries keep their creation fields")
}

func (s *CatalogServiceTestSuite) TestRestockOtherBranchForbidden() {
	_, err := s.service.Restock(context.Background(), s.operator, dto.RestockRequest{
		ProductID: "P1",
		BranchID:  "HF01",
		Quantity:  5,
	})
	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CatalogServiceTestSuite) TestRestockNonPositiveQuantity() {
	_, err := s.service.Restock(context.Background(), s.operator, dto.RestockRequest{
		ProductID: "P1",
		BranchID:  "TV01",
		Quantity:  0,
	})
	s.Require().ErrorIs(err, apperrors.ErrInvalidQuantity)
}

func (s *CatalogServiceTestSuite) TestRestockCreatesNewProduct() {
	product, err := s.service.Restock(context.Background(), s.operator, dto.RestockRequest{
		ProductID: "P2",
		BranchID:  "TV01",
		Quantity:  4,
		Name:      "Office Chair",
		Category:  "Furniture",
		UnitPrice: decimal.NewFromInt(250),
	})
	s.Require().NoError(err)
	s.Equal(4, product.Stock)
	s.Equal("Office Chair", product.Name)

	found, err := s.service.GetProduct(context.Background(), "P2", "TV01")
	s.Require().NoError(err)
	s.True(found.Price.Equal(decimal.NewFromInt(250)))
}

func (s *CatalogServiceTestSuite) TestRestockNewProductRequiresCreationFields() {
	_, err := s.service.Restock(context.Background(), s.operator, dto.RestockRequest{
		ProductID: "P2",
		BranchID:  "TV01",
		Quantity:  4,
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.Restock(context.Background(), s.operator, dto.RestockRequest{
		ProductID: "P2",
		BranchID:  "TV01",
		Quantity:  4,
		Name:      "Office Chair",
		Category:  "Furniture",
		UnitPrice: decimal.NewFromInt(-1),
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

// Concurrent purchases of a product nobody has stocked yet must sum their
// quantities: exactly one call creates the entry and the rest restock it,
// never overwriting each other.
func (s *CatalogServiceTestSuite) TestConcurrentRestockOfNewProductLosesNothing() {
	ctx := context.Background()
	const (
		workers    = 4
		perAttempt = 5
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Restock(ctx, s.operator, dto.RestockRequest{
				ProductID: "P2",
				BranchID:  "TV01",
				Quantity:  perAttempt,
				Name:      "Office Chair",
				Category:  "Furniture",
				UnitPrice: decimal.NewFromInt(250),
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	product, err := s.service.GetProduct(ctx, "P2", "TV01")
	s.Require().NoError(err)
	s.Equal(workers*perAttempt, product.Stock)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
