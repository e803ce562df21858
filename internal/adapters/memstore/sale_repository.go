package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// SaleRepository is the in-memory append-only sales ledger. Appends from
// concurrent sessions are serialized by the mutex so no record is lost;
// reads return materialized copies.
type SaleRepository struct {
	mu      sync.RWMutex
	records []domain.SaleRecord
}

// NewSaleRepository creates an empty ledger.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// AppendSale appends one record to the ledger.
func (r *SaleRepository) AppendSale(ctx context.Context, record domain.SaleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	return nil
}

// ListSales returns the fully materialized ledger snapshot in append order.
func (r *SaleRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SaleRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// ListSalesAfter returns up to limit records strictly after the
// (soldAt, saleID) cursor position, ordered by (soldAt, saleID). A zero
// soldAt starts from the beginning. Append order is not cursor order:
// concurrent sessions can append out of timestamp order, so the snapshot is
// sorted before the cursor is applied.
func (r *SaleRepository) ListSalesAfter(ctx context.Context, soldAt time.Time, saleID string, limit int) ([]domain.SaleRecord, error) {
	r.mu.RLock()
	snapshot := make([]domain.SaleRecord, len(r.records))
	copy(snapshot, r.records)
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		if !snapshot[i].SoldAt.Equal(snapshot[j].SoldAt) {
			return snapshot[i].SoldAt.Before(snapshot[j].SoldAt)
		}
		return snapshot[i].SaleID < snapshot[j].SaleID
	})

	out := make([]domain.SaleRecord, 0, limit)
	for _, rec := range snapshot {
		if !afterCursor(rec, soldAt, saleID) {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func afterCursor(rec domain.SaleRecord, soldAt time.Time, saleID string) bool {
	if soldAt.IsZero() {
		return true
	}
	if rec.SoldAt.After(soldAt) {
		return true
	}
	return rec.SoldAt.Equal(soldAt) && rec.SaleID > saleID
}
