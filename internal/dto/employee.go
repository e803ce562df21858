package dto

// CreateEmployeeRequest carries the fields of the ADD_EMPLOYEE command: a
// variable-length full name followed by the fixed identity, affiliation and
// credential fields.
type CreateEmployeeRequest struct {
	Name        string `json:"name" validate:"required,personname"`
	EmployeeID  string `json:"employeeID" validate:"required,len=9,numeric"`
	Phone       string `json:"phone" validate:"required,len=10,numeric"`
	BankAccount string `json:"bankAccount" validate:"required"`
	BranchID    string `json:"branchID" validate:"required"`
	Number      int    `json:"number" validate:"required,gt=0"`
	Role        string `json:"role" validate:"required,oneof=ADMIN MANAGER CASHIER"`
	Username    string `json:"username" validate:"required,min=3"`
	Password    string `json:"password" validate:"required,min=4"`
}
