package repositories

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// EmployeeRepository defines the registry operations for employees.
// SaveEmployee must run its uniqueness scan (employee id and number) and the
// insert inside a single critical section.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	// RemoveEmployee compensates a partially completed registration when the
	// credential binding turns out to conflict. Not exposed as a command.
	RemoveEmployee(ctx context.Context, employeeID string) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	// ReplaceEmployees restores the registry from persisted records.
	ReplaceEmployees(ctx context.Context, employees []domain.Employee) error
}
