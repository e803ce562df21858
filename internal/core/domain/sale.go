package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is an immutable fact describing one completed sale. Records are
// only ever appended to the ledger, never updated or deleted.
type SaleRecord struct {
	SaleID     string          `json:"saleID"` // UUID
	ProductID  string          `json:"productID"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	BranchID   string          `json:"branchID"`
	Quantity   int             `json:"quantity"`
	FinalPrice decimal.Decimal `json:"finalPrice"` // Price actually charged, after tier discount
	SoldAt     time.Time       `json:"soldAt"`
}
