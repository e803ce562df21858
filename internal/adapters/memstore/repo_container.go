package memstore

import (
	"time"

	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the full in-memory repository set.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: NewEmployeeRepository(),
		CustomerRepo: NewCustomerRepository(),
		ProductRepo:  NewProductRepository(),
		BranchRepo:   NewBranchRepository(),
		SaleRepo:     NewSaleRepository(),
		ChatRepo:     NewChatRepository(),
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
