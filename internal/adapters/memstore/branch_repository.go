package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// BranchRepository holds branch reference data. Written only by the startup
// loader; read by every session afterwards.
type BranchRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Branch
}

// NewBranchRepository creates an empty branch registry.
func NewBranchRepository() *BranchRepository {
	return &BranchRepository{byID: make(map[string]domain.Branch)}
}

// SaveBranch inserts or replaces a branch.
func (r *BranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[branch.BranchID] = branch
	return nil
}

// FindBranchByID returns a copy of the branch or apperrors.ErrNotFound.
func (r *BranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branch, exists := r.byID[branchID]
	if !exists {
		return nil, fmt.Errorf("%w: branch %s", apperrors.ErrNotFound, branchID)
	}
	return &branch, nil
}

// ListBranches returns a snapshot of all branches ordered by id.
func (r *BranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branches := make([]domain.Branch, 0, len(r.byID))
	for _, b := range r.byID {
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].BranchID < branches[j].BranchID })
	return branches, nil
}
