package domain

// Branch represents a physical store location. Branches are reference data:
// loaded once at startup and never mutated afterwards.
type Branch struct {
	BranchID string `json:"branchID"` // Short code, e.g. "TV01"
	Name     string `json:"name"`
}
