package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/retailcore/branch_retail_app/internal/adapters/memstore"
	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/core/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/retailcore/branch_retail_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	customers *memstore.CustomerRepository
	products  *memstore.ProductRepository
	sales     *memstore.SaleRepository
	service   portssvc.SaleSvcFacade

	cashier domain.Employee
	admin   domain.Employee
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.customers = memstore.NewCustomerRepository()
	s.products = memstore.NewProductRepository()
	s.sales = memstore.NewSaleRepository()
	s.service = services.NewSaleService(s.customers, s.products, s.sales)

	s.cashier = domain.Employee{EmployeeID: "100000001", Name: "Dana Levi", BranchID: "TV01", Number: 1, Role: domain.RoleCashier}
	s.admin = domain.Employee{EmployeeID: "100000002", Name: "Noa Peretz", BranchID: "TV01", Number: 2, Role: domain.RoleAdmin}

	ctx := context.Background()
	s.Require().NoError(s.products.SaveProduct(ctx, domain.Product{
		ProductID: "P1",
		Name:      "Desk Lamp",
		Category:  "Lighting",
		Price:     decimal.NewFromInt(100),
		Stock:     10,
		BranchID:  "TV01",
	}))
	s.Require().NoError(s.customers.SaveCustomer(ctx, domain.Customer{
		CustomerID: "000000001",
		Name:       "Avi Cohen",
		Phone:      "0501234567",
		Tier:       domain.TierReturning,
	}))
}

func (s *SaleServiceTestSuite) TestSellAppliesTierDiscount() {
	record, err := s.service.Sell(context.Background(), s.cashier, dto.SellRequest{
		ProductID:  "P1",
		BranchID:   "TV01",
		Quantity:   3,
		CustomerID: "000000001",
	})
	s.Require().NoError(err)

	// 3 x 100 with the returning customer's 10 percent discount.
	s.Equal("270.00", utils.FormatPrice(record.FinalPrice))
	s.Equal("P1", record.ProductID)
	s.Equal(3, record.Quantity)

	product, err := s.products.FindProductByKey(context.Background(), "P1", "TV01")
	s.Require().NoError(err)
	s.Equal(7, product.Stock)

	ledger, err := s.sales.ListSales(context.Background())
	s.Require().NoError(err)
	s.Len(ledger, 1)
	s.Equal(record.SaleID, ledger[0].SaleID)
}

func (s *SaleServiceTestSuite) TestSellRejectsAdmin() {
	_, err := s.service.Sell(context.Background(), s.admin, dto.SellRequest{
		ProductID:  "P1",
		BranchID:   "TV01",
		Quantity:   1,
		CustomerID: "000000001",
	})
	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *SaleServiceTestSuite) TestSellRejectsNonPositiveQuantity() {
	for _, quantity := range []int{0, -2} {
		_, err := s.service.Sell(context.Background(), s.cashier, dto.SellRequest{
			ProductID:  "P1",
			BranchID:   "TV01",
			Quantity:   quantity,
			CustomerID: "000000001",
		})
		s.Require().ErrorIs(err, apperrors.ErrInvalidQuantity)
	}
}

func (s *SaleServiceTestSuite) TestSellUnknownCustomer() {
	_, err := s.service.Sell(context.Background(), s.cashier, dto.SellRequest{
		ProductID:  "P1",
		BranchID:   "TV01",
		Quantity:   1,
		CustomerID: "000000099",
	})
	s.Require().ErrorIs(err, apperrors.ErrNotFound)

	// A failed sale leaves no trace.
	product, err := s.products.FindProductByKey(context.Background(), "P1", "TV01")
	s.Require().NoError(err)
	s.Equal(10, product.Stock)
	ledger, err := s.sales.ListSales(context.Background())
	s.Require().NoError(err)
	s.Empty(ledger)
}

func (s *SaleServiceTestSuite) TestSellInsufficientStock() {
	_, err := s.service.Sell(context.Background(), s.cashier, dto.SellRequest{
		ProductID:  "P1",
		BranchID:   "TV01",
		Quantity:   11,
		CustomerID: "000000001",
	})
	s.Require().ErrorIs(err, apperrors.ErrInsufficientStock)
}

// Concurrent sales of the same product must never jointly overdraw stock:
// whatever subset succeeds, units sold plus units remaining equals the
// starting stock.
func (s *SaleServiceTestSuite) TestConcurrentSalesNeverOverdraw() {
	ctx := context.Background()
	const (
		startingStock = 10
		attempts      = 8
		perAttempt    = 3
	)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sold int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := s.service.Sell(ctx, s.cashier, dto.SellRequest{
				ProductID:  "P1",
				BranchID:   "TV01",
				Quantity:   perAttempt,
				CustomerID: "000000001",
			})
			if err != nil {
				return
			}
			mu.Lock()
			sold += record.Quantity
			mu.Unlock()
		}()
	}
	wg.Wait()

	product, err := s.products.FindProductByKey(ctx, "P1", "TV01")
	s.Require().NoError(err)
	s.GreaterOrEqual(product.Stock, 0)
	s.Equal(startingStock, sold+product.Stock)

	ledger, err := s.sales.ListSales(ctx)
	s.Require().NoError(err)
	s.Equal(sold/perAttempt, len(ledger))
}

// When concurrent sales sum to exactly the available stock, every one of them
// succeeds and the shelf ends empty.
func (s *SaleServiceTestSuite) TestConcurrentSalesExactStockAllSucceed() {
	ctx := context.Background()
	const (
		attempts   = 5
		perAttempt = 2 // 5 x 2 == the seeded stock of 10
	)

	var (
		wg       sync.WaitGroup
		failures atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Sell(ctx, s.cashier, dto.SellRequest{
				ProductID:  "P1",
				BranchID:   "TV01",
				Quantity:   perAttempt,
				CustomerID: "000000001",
			})
			if err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(0), failures.Load())
	product, err := s.products.FindProductByKey(ctx, "P1", "TV01")
	s.Require().NoError(err)
	s.Equal(0, product.Stock)
}

func (s *SaleServiceTestSuite) TestListSalesPageCursors() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.service.Sell(ctx, s.cashier, dto.SellRequest{
			ProductID:  "P1",
			BranchID:   "TV01",
			Quantity:   1,
			CustomerID: "000000001",
		})
		s.Require().NoError(err)
	}

	first, token, err := s.service.ListSalesPage(ctx, 2, "")
	s.Require().NoError(err)
	s.Len(first, 2)
	s.NotEmpty(token)

	second, token, err := s.service.ListSalesPage(ctx, 2, token)
	s.Require().NoError(err)
	s.Len(second, 2)
	s.NotEmpty(token)

	last, token, err := s.service.ListSalesPage(ctx, 2, token)
	s.Require().NoError(err)
	s.Len(last, 1)
	s.Empty(token)

	seen := map[string]struct{}{}
	for _, page := range [][]domain.SaleRecord{first, second, last} {
		for _, record := range page {
			_, dup := seen[record.SaleID]
			s.False(dup, "sale %s appeared on two pages", record.SaleID)
			seen[record.SaleID] = struct{}{}
		}
	}
}

func (s *SaleServiceTestSuite) TestListSalesPageRejectsBadToken() {
	_, _, err := s.service.ListSalesPage(context.Background(), 10, "not-a-token")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
