// Package models holds the flat record shapes used by the file persistence
// collaborator. Records are the serialize-to-record / parse-from-record
// boundary: domain types never cross into files directly, and monetary
// amounts travel as fixed-point strings so the files stay stable and
// human-editable.
package models

import "time"

// BranchRecord is the persisted form of a branch.
type BranchRecord struct {
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
}

// EmployeeRecord is the persisted form of an employee. The password field is
// only populated in seed files and is consumed (hashed) at load time.
type EmployeeRecord struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	BankAccount string `json:"bankAccount"`
	BranchID    string `json:"branchId"`
	Number      int    `json:"number"`
	Role        string `json:"role"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
}

// CustomerRecord is the persisted form of a customer.
type CustomerRecord struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Tier       string `json:"tier"`
}

// ProductRecord is the persisted form of a catalog entry.
type ProductRecord struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"` // Fixed-point decimal string
	Stock     int    `json:"stock"`
	BranchID  string `json:"branchId"`
}

// SaleRecord is the persisted form of one ledger entry.
type SaleRecord struct {
	SaleID     string    `json:"saleId"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	BranchID   string    `json:"branchId"`
	Quantity   int       `json:"quantity"`
	FinalPrice string    `json:"finalPrice"` // Fixed-point decimal string
	SoldAt     time.Time `json:"soldAt"`
}
