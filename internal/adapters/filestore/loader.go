package filestore

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/utils/mapping"
)

// LoadSeedData is the one-shot startup loader: it restores branch reference
// data, the employee directory (binding credentials as it goes), the
// customer registry and the catalog from the store's record files.
func LoadSeedData(ctx context.Context, store *Store, repos portsrepo.RepositoryProvider, auth portssvc.AuthSvcFacade, logger *slog.Logger) error {
	branches, err := store.LoadBranches()
	if err != nil {
		return fmt.Errorf("failed to load branches: %w", err)
	}
	for _, branch := range branches {
		if err := repos.BranchRepo.SaveBranch(ctx, branch); err != nil {
			return fmt.Errorf("failed to register branch %s: %w", branch.BranchID, err)
		}
	}

	employeeRecords, err := store.LoadEmployees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	for _, record := range employeeRecords {
		employee, err := mapping.EmployeeFromRecord(record)
		if err != nil {
			return err
		}
		if err := repos.EmployeeRepo.SaveEmployee(ctx, employee); err != nil {
			return fmt.Errorf("failed to register employee %s: %w", employee.EmployeeID, err)
		}
		// Seed files carry plaintext passwords; Register hashes them, so no
		// hash of record ever lives on disk.
		if err := auth.Register(ctx, employee, record.Username, record.Password); err != nil {
			return fmt.Errorf("failed to bind credentials for %s: %w", record.Username, err)
		}
	}

	customers, err := store.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	if err := repos.CustomerRepo.ReplaceCustomers(ctx, customers); err != nil {
		return fmt.Errorf("failed to restore customers: %w", err)
	}

	products, err := store.LoadProducts()
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	if err := repos.ProductRepo.ReplaceProducts(ctx, products); err != nil {
		return fmt.Errorf("failed to restore products: %w", err)
	}

	logger.Info("seed data loaded",
		slog.Int("branches", len(branches)),
		slog.Int("employees", len(employeeRecords)),
		slog.Int("customers", len(customers)),
		slog.Int("products", len(products)))
	return nil
}
