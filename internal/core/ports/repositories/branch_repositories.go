package repositories

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// BranchRepository defines access to branch reference data. Branches are
// loaded once at startup and only read afterwards.
type BranchRepository interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}
