package services

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/dto"
)

// EmployeeDirectorySvc defines operations on the employee directory.
type EmployeeDirectorySvc interface {
	// CreateEmployee validates the request, registers the employee record and
	// binds its credentials. Fails with apperrors.ErrDuplicate on a username,
	// employee-id or employee-number conflict, leaving the directory
	// unchanged.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creator string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// CustomerDirectorySvc defines operations on the customer registry.
type CustomerDirectorySvc interface {
	// CreateCustomer validates the request and inserts the customer. Fails
	// with apperrors.ErrDuplicate when the id was ever assigned before.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creator string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// BranchDirectorySvc defines read access to branch reference data.
type BranchDirectorySvc interface {
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// DirectorySvcFacade combines the directory service interfaces.
type DirectorySvcFacade interface {
	EmployeeDirectorySvc
	CustomerDirectorySvc
	BranchDirectorySvc
}
