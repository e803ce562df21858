package repositories

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// CustomerRepository defines the registry operations for customers. The
// customer id namespace is monotonic: once an id has been assigned it is
// never released, so SaveCustomer must reject an id that was ever used even
// if no live record holds it. The uniqueness scan and the insert are one
// critical section.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	// ReplaceCustomers restores the registry from persisted records. The
	// used-id set is rebuilt from the restored records.
	ReplaceCustomers(ctx context.Context, customers []domain.Customer) error
}
