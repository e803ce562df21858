package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// CustomerRepository is the in-memory customer registry. Customer ids are a
// monotonic namespace: usedIDs keeps every id ever assigned and never
// shrinks, so an id stays taken even if its record were removed elsewhere.
type CustomerRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.Customer
	usedIDs map[string]struct{}
}

// NewCustomerRepository creates an empty customer registry.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byID:    make(map[string]domain.Customer),
		usedIDs: make(map[string]struct{}),
	}
}

// SaveCustomer inserts a new customer. The used-id scan and the insert are
// one critical section; on conflict the registry is unchanged.
func (r *CustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usedIDs[customer.CustomerID]; taken {
		return fmt.Errorf("%w: customer id %s", apperrors.ErrDuplicate, customer.CustomerID)
	}

	r.byID[customer.CustomerID] = customer
	r.usedIDs[customer.CustomerID] = struct{}{}
	return nil
}

// FindCustomerByID returns a copy of the customer or apperrors.ErrNotFound.
func (r *CustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.byID[customerID]
	if !exists {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return &customer, nil
}

// ListCustomers returns a snapshot of all customers ordered by id.
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]domain.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].CustomerID < customers[j].CustomerID })
	return customers, nil
}

// ReplaceCustomers restores the registry from persisted records and rebuilds
// the used-id set from them.
func (r *CustomerRepository) ReplaceCustomers(ctx context.Context, customers []domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]domain.Customer, len(customers))
	r.usedIDs = make(map[string]struct{}, len(customers))
	for _, c := range customers {
		if _, taken := r.usedIDs[c.CustomerID]; taken {
			return fmt.Errorf("%w: customer id %s in restore data", apperrors.ErrDuplicate, c.CustomerID)
		}
		r.byID[c.CustomerID] = c
		r.usedIDs[c.CustomerID] = struct{}{}
	}
	return nil
}
