// Package filestore is the file persistence collaborator: JSON snapshots of
// the registries at process boundaries, the one-shot startup loader, and the
// audit action log. It has no concurrency concerns of its own: every input
// is a materialized snapshot taken by the owning registry.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/models"
	"github.com/retailcore/branch_retail_app/internal/utils/mapping"
)

const (
	branchesFile  = "branches.json"
	employeesFile = "employees.json"
	customersFile = "customers.json"
	productsFile  = "products.json"
	salesFile     = "sales.json"
)

// Store reads and writes entity record files under one data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// SaveSales persists the ledger snapshot.
func (s *Store) SaveSales(sales []domain.SaleRecord) error {
	records := make([]models.SaleRecord, len(sales))
	for i, sale := range sales {
		records[i] = mapping.SaleToRecord(sale)
	}
	return writeJSON(filepath.Join(s.dir, salesFile), records)
}

// SaveProducts persists the catalog snapshot.
func (s *Store) SaveProducts(products []domain.Product) error {
	records := make([]models.ProductRecord, len(products))
	for i, p := range products {
		records[i] = mapping.ProductToRecord(p)
	}
	return writeJSON(filepath.Join(s.dir, productsFile), records)
}

// SaveCustomers persists the customer registry snapshot.
func (s *Store) SaveCustomers(customers []domain.Customer) error {
	records := make([]models.CustomerRecord, len(customers))
	for i, c := range customers {
		records[i] = mapping.CustomerToRecord(c)
	}
	return writeJSON(filepath.Join(s.dir, customersFile), records)
}

// LoadBranches reads branch reference data. A missing file yields an empty
// slice, not an error: a fresh deployment starts with empty files.
func (s *Store) LoadBranches() ([]domain.Branch, error) {
	var records []models.BranchRecord
	if err := readJSON(filepath.Join(s.dir, branchesFile), &records); err != nil {
		return nil, err
	}
	branches := make([]domain.Branch, 0, len(records))
	for _, record := range records {
		branch, err := mapping.BranchFromRecord(record)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

// LoadEmployees reads employee seed records, credentials included.
func (s *Store) LoadEmployees() ([]models.EmployeeRecord, error) {
	var records []models.EmployeeRecord
	if err := readJSON(filepath.Join(s.dir, employeesFile), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadCustomers reads the customer registry.
func (s *Store) LoadCustomers() ([]domain.Customer, error) {
	var records []models.CustomerRecord
	if err := readJSON(filepath.Join(s.dir, customersFile), &records); err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(records))
	for _, record := range records {
		customer, err := mapping.CustomerFromRecord(record)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// LoadProducts reads the catalog.
func (s *Store) LoadProducts() ([]domain.Product, error) {
	var records []models.ProductRecord
	if err := readJSON(filepath.Join(s.dir, productsFile), &records); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		product, err := mapping.ProductFromRecord(record)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
