package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// EmployeeRepository is the in-memory employee registry. A single mutex
// covers the uniqueness scan and the insert so concurrent registrations
// cannot slip past each other.
type EmployeeRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.Employee
	byNumber map[int]string // employee number -> employee id
}

// NewEmployeeRepository creates an empty employee registry.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		byID:     make(map[string]domain.Employee),
		byNumber: make(map[int]string),
	}
}

// SaveEmployee inserts a new employee after scanning for id and number
// conflicts. Scan and insert are one critical section.
func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[employee.EmployeeID]; exists {
		return fmt.Errorf("%w: employee id %s", apperrors.ErrDuplicate, employee.EmployeeID)
	}
	if _, exists := r.byNumber[employee.Number]; exists {
		return fmt.Errorf("%w: employee number %d", apperrors.ErrDuplicate, employee.Number)
	}

	r.byID[employee.EmployeeID] = employee
	r.byNumber[employee.Number] = employee.EmployeeID
	return nil
}

// RemoveEmployee deletes an employee record. Only used to unwind a
// registration whose credential binding conflicted.
func (r *EmployeeRepository) RemoveEmployee(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, exists := r.byID[employeeID]
	if !exists {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
	}
	delete(r.byID, employeeID)
	delete(r.byNumber, employee.Number)
	return nil
}

// FindEmployeeByID returns a copy of the employee or apperrors.ErrNotFound.
func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.byID[employeeID]
	if !exists {
		return nil, fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
	}
	return &employee, nil
}

// ListEmployees returns a snapshot of all employees ordered by number.
func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Number < employees[j].Number })
	return employees, nil
}

// ReplaceEmployees restores the registry from persisted records.
func (r *EmployeeRepository) ReplaceEmployees(ctx context.Context, employees []domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]domain.Employee, len(employees))
	r.byNumber = make(map[int]string, len(employees))
	for _, e := range employees {
		if _, exists := r.byID[e.EmployeeID]; exists {
			return fmt.Errorf("%w: employee id %s in restore data", apperrors.ErrDuplicate, e.EmployeeID)
		}
		if _, exists := r.byNumber[e.Number]; exists {
			return fmt.Errorf("%w: employee number %d in restore data", apperrors.ErrDuplicate, e.Number)
		}
		r.byID[e.EmployeeID] = e
		r.byNumber[e.Number] = e.EmployeeID
	}
	return nil
}
