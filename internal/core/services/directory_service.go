package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
)

// directoryService implements DirectorySvcFacade over the employee, customer
// and branch registries. Uniqueness enforcement itself lives in the
// repositories (scan-then-insert under one lock); this layer validates,
// resolves references and keeps the credential registry consistent with the
// employee directory.
type directoryService struct {
	employeeRepo portsrepo.EmployeeRepository
	customerRepo portsrepo.CustomerRepository
	branchRepo   portsrepo.BranchRepository
	auth         portssvc.AuthSvcFacade
}

// NewDirectoryService creates the directory service.
func NewDirectoryService(
	employeeRepo portsrepo.EmployeeRepository,
	customerRepo portsrepo.CustomerRepository,
	branchRepo portsrepo.BranchRepository,
	auth portssvc.AuthSvcFacade,
) portssvc.DirectorySvcFacade {
	return &directoryService{
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		branchRepo:   branchRepo,
		auth:         auth,
	}
}

// CreateEmployee registers an employee and binds its credentials. The
// employee insert and the credential binding are each atomic; when the
// credential binding conflicts the employee insert is compensated, so a
// duplicate username leaves the directory unchanged.
func (s *directoryService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creator string) (*domain.Employee, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	role, ok := domain.ParseEmployeeRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if _, err := s.branchRepo.FindBranchByID(ctx, req.BranchID); err != nil {
		return nil, fmt.Errorf("branch %s: %w", req.BranchID, err)
	}

	employee := domain.Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Phone:       req.Phone,
		BankAccount: req.BankAccount,
		BranchID:    req.BranchID,
		Number:      req.Number,
		Role:        role,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: creator,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.auth.Register(ctx, employee, req.Username, req.Password); err != nil {
		if removeErr := s.employeeRepo.RemoveEmployee(ctx, employee.EmployeeID); removeErr != nil {
			slog.Default().Error("failed to compensate employee insert",
				slog.String("employee_id", employee.EmployeeID),
				slog.String("error", removeErr.Error()))
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, req.Username)
		}
		return nil, err
	}
	return &employee, nil
}

// ListEmployees returns the employee directory snapshot.
func (s *directoryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx)
}

// CreateCustomer validates and inserts a customer. The id namespace is
// monotonic: an id that was ever assigned is rejected forever.
func (s *directoryService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creator string) (*domain.Customer, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	tier, ok := domain.ParseCustomerTier(req.Tier)
	if !ok {
		return nil, fmt.Errorf("%w: unknown tier %q", apperrors.ErrValidation, req.Tier)
	}

	customer := domain.Customer{
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Phone:      req.Phone,
		Tier:       tier,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: creator,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomerByID returns one customer or apperrors.ErrNotFound.
func (s *directoryService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers returns the customer registry snapshot.
func (s *directoryService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

// GetBranchByID returns one branch or apperrors.ErrNotFound.
func (s *directoryService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByID(ctx, branchID)
}

// ListBranches returns all branches.
func (s *directoryService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.ListBranches(ctx)
}
