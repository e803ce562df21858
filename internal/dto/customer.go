package dto

// CreateCustomerRequest carries the fields of the ADD_CUSTOMER command.
type CreateCustomerRequest struct {
	Name       string `json:"name" validate:"required,personname"`
	CustomerID string `json:"customerID" validate:"required,len=9,numeric"`
	Phone      string `json:"phone" validate:"required,len=10,numeric"`
	Tier       string `json:"tier" validate:"required,oneof=NEW RETURNING VIP"`
}
