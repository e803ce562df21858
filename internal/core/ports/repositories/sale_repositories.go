package repositories

import (
	"context"
	"time"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// SaleRepository defines the append-only sales ledger. AppendSale must be
// safe under concurrent writers from different sessions; no record may be
// lost. Reads return fully materialized snapshots.
type SaleRepository interface {
	AppendSale(ctx context.Context, record domain.SaleRecord) error
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
	// ListSalesAfter returns up to limit records strictly after the
	// (soldAt, saleID) cursor position, ordered by (soldAt, saleID).
	ListSalesAfter(ctx context.Context, soldAt time.Time, saleID string, limit int) ([]domain.SaleRecord, error)
}
