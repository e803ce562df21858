package domain

// EmployeeRole defines the possible roles an employee can hold.
type EmployeeRole string

const (
	RoleAdmin   EmployeeRole = "ADMIN"
	RoleManager EmployeeRole = "MANAGER"
	RoleCashier EmployeeRole = "CASHIER"
)

// ParseEmployeeRole maps a role token onto the closed role enum.
// Returns false when the token is not a known role.
func ParseEmployeeRole(token string) (EmployeeRole, bool) {
	switch EmployeeRole(token) {
	case RoleAdmin, RoleManager, RoleCashier:
		return EmployeeRole(token), true
	}
	return "", false
}

// IsAdmin reports whether the role carries administrative capabilities.
func (r EmployeeRole) IsAdmin() bool {
	return r == RoleAdmin
}

// Employee represents a member of staff. Identity fields are immutable after
// registration.
type Employee struct {
	EmployeeID  string       `json:"employeeID"` // 9-digit national id, unique
	Name        string       `json:"name"`
	Phone       string       `json:"phone"` // 10-digit
	BankAccount string       `json:"bankAccount"`
	BranchID    string       `json:"branchID"`
	Number      int          `json:"number"` // Internal employee number, unique
	Role        EmployeeRole `json:"role"`
	AuditFields
}
