package dto

import "github.com/shopspring/decimal"

// SellRequest carries the fields of the SELL command. The quantity sign is
// checked by the sale service rather than by tag validation so the failure is
// classified as an invalid-quantity error, not a generic validation error.
type SellRequest struct {
	ProductID  string `json:"productID" validate:"required"`
	BranchID   string `json:"branchID" validate:"required"`
	Quantity   int    `json:"quantity"`
	CustomerID string `json:"customerID" validate:"required,len=9,numeric"`
}

// RestockRequest carries the fields of the PURCHASE_PRODUCT command. The
// creation fields (name, category, unit price) are only consulted when the
// (productID, branchID) pair does not exist yet.
type RestockRequest struct {
	ProductID string          `json:"productID" validate:"required"`
	BranchID  string          `json:"branchID" validate:"required"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
