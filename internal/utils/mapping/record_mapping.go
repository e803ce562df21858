// Package mapping converts between domain types and the flat persistence
// records in internal/models. These pairs are the hooks the file store uses
// to persist and restore catalog, directory and branch reference data.
package mapping

import (
	"fmt"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/models"
	"github.com/shopspring/decimal"
)

// BranchToRecord serializes a branch.
func BranchToRecord(branch domain.Branch) models.BranchRecord {
	return models.BranchRecord{BranchID: branch.BranchID, Name: branch.Name}
}

// BranchFromRecord parses a branch record.
func BranchFromRecord(record models.BranchRecord) (domain.Branch, error) {
	if record.BranchID == "" {
		return domain.Branch{}, fmt.Errorf("%w: branch record missing id", apperrors.ErrValidation)
	}
	return domain.Branch{BranchID: record.BranchID, Name: record.Name}, nil
}

// EmployeeToRecord serializes an employee. Credentials are not part of the
// domain type, so the username/password fields stay empty.
func EmployeeToRecord(employee domain.Employee) models.EmployeeRecord {
	return models.EmployeeRecord{
		EmployeeID:  employee.EmployeeID,
		Name:        employee.Name,
		Phone:       employee.Phone,
		BankAccount: employee.BankAccount,
		BranchID:    employee.BranchID,
		Number:      employee.Number,
		Role:        string(employee.Role),
	}
}

// EmployeeFromRecord parses an employee record.
func EmployeeFromRecord(record models.EmployeeRecord) (domain.Employee, error) {
	role, ok := domain.ParseEmployeeRole(record.Role)
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: employee %s has unknown role %q",
			apperrors.ErrValidation, record.EmployeeID, record.Role)
	}
	return domain.Employee{
		EmployeeID:  record.EmployeeID,
		Name:        record.Name,
		Phone:       record.Phone,
		BankAccount: record.BankAccount,
		BranchID:    record.BranchID,
		Number:      record.Number,
		Role:        role,
	}, nil
}

// CustomerToRecord serializes a customer.
func CustomerToRecord(customer domain.Customer) models.CustomerRecord {
	return models.CustomerRecord{
		CustomerID: customer.CustomerID,
		Name:       customer.Name,
		Phone:      customer.Phone,
		Tier:       string(customer.Tier),
	}
}

// CustomerFromRecord parses a customer record.
func CustomerFromRecord(record models.CustomerRecord) (domain.Customer, error) {
	tier, ok := domain.ParseCustomerTier(record.Tier)
	if !ok {
		return domain.Customer{}, fmt.Errorf("%w: customer %s has unknown tier %q",
			apperrors.ErrValidation, record.CustomerID, record.Tier)
	}
	return domain.Customer{
		CustomerID: record.CustomerID,
		Name:       record.Name,
		Phone:      record.Phone,
		Tier:       tier,
	}, nil
}

// ProductToRecord serializes a catalog entry.
func ProductToRecord(product domain.Product) models.ProductRecord {
	return models.ProductRecord{
		ProductID: product.ProductID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price.String(),
		Stock:     product.Stock,
		BranchID:  product.BranchID,
	}
}

// ProductFromRecord parses a product record.
func ProductFromRecord(record models.ProductRecord) (domain.Product, error) {
	price, err := decimal.NewFromString(record.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: product %s has invalid price %q",
			apperrors.ErrValidation, record.ProductID, record.Price)
	}
	if price.IsNegative() || record.Stock < 0 {
		return domain.Product{}, fmt.Errorf("%w: product %s has negative price or stock",
			apperrors.ErrValidation, record.ProductID)
	}
	return domain.Product{
		ProductID: record.ProductID,
		Name:      record.Name,
		Category:  record.Category,
		Price:     price,
		Stock:     record.Stock,
		BranchID:  record.BranchID,
	}, nil
}

// SaleToRecord serializes a ledger entry.
func SaleToRecord(sale domain.SaleRecord) models.SaleRecord {
	return models.SaleRecord{
		SaleID:     sale.SaleID,
		ProductID:  sale.ProductID,
		Name:       sale.Name,
		Category:   sale.Category,
		BranchID:   sale.BranchID,
		Quantity:   sale.Quantity,
		FinalPrice: sale.FinalPrice.String(),
		SoldAt:     sale.SoldAt,
	}
}

// SaleFromRecord parses a ledger entry record.
func SaleFromRecord(record models.SaleRecord) (domain.SaleRecord, error) {
	finalPrice, err := decimal.NewFromString(record.FinalPrice)
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("%w: sale %s has invalid final price %q",
			apperrors.ErrValidation, record.SaleID, record.FinalPrice)
	}
	return domain.SaleRecord{
		SaleID:     record.SaleID,
		ProductID:  record.ProductID,
		Name:       record.Name,
		Category:   record.Category,
		BranchID:   record.BranchID,
		Quantity:   record.Quantity,
		FinalPrice: finalPrice,
		SoldAt:     record.SoldAt,
	}, nil
}
