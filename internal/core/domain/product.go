package domain

import "github.com/shopspring/decimal"

// ProductKey identifies a product. Product ids are branch-scoped: the same id
// may exist independently in different branches.
type ProductKey struct {
	ProductID string `json:"productID"`
	BranchID  string `json:"branchID"`
}

// Product represents a catalog entry for one branch. Stock is the only field
// mutated after creation (by sales and restocks).
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"` // Non-negative unit price
	Stock     int             `json:"stock"` // Non-negative quantity on hand
	BranchID  string          `json:"branchID"`
}

// Key returns the (productID, branchID) identity of the product.
func (p Product) Key() ProductKey {
	return ProductKey{ProductID: p.ProductID, BranchID: p.BranchID}
}
