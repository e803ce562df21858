package dto

import (
	"time"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/utils"
)

// SaleResponse is one ledger entry as exposed over the reporting API.
type SaleResponse struct {
	SaleID     string    `json:"saleID"`
	ProductID  string    `json:"productID"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	BranchID   string    `json:"branchID"`
	Quantity   int       `json:"quantity"`
	FinalPrice string    `json:"finalPrice"`
	SoldAt     time.Time `json:"soldAt"`
}

// ListSalesResponse wraps a page of ledger entries. NextToken is empty on the
// last page.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken string         `json:"nextToken,omitempty"`
}

// ToSaleResponse converts a domain.SaleRecord to its API shape.
func ToSaleResponse(record domain.SaleRecord) SaleResponse {
	return SaleResponse{
		SaleID:     record.SaleID,
		ProductID:  record.ProductID,
		Name:       record.Name,
		Category:   record.Category,
		BranchID:   record.BranchID,
		Quantity:   record.Quantity,
		FinalPrice: utils.FormatPrice(record.FinalPrice),
		SoldAt:     record.SoldAt,
	}
}

// ProductResponse is one catalog entry as exposed over the reporting API.
type ProductResponse struct {
	ProductID string `json:"productID"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
	BranchID  string `json:"branchID"`
}

// ListProductsResponse wraps the catalog listing.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToListProductsResponse converts catalog snapshots to their API shape.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     utils.FormatPrice(p.Price),
			Stock:     p.Stock,
			BranchID:  p.BranchID,
		}
	}
	return ListProductsResponse{Products: out}
}

// ChatSummaryResponse is one chat session as exposed over the reporting API.
// Message content stays on the textual protocol; the API reports shape only.
type ChatSummaryResponse struct {
	ChatID       string    `json:"chatID"`
	BranchIDs    []string  `json:"branchIDs"`
	MessageCount int       `json:"messageCount"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListChatsResponse wraps the chat registry listing.
type ListChatsResponse struct {
	Chats []ChatSummaryResponse `json:"chats"`
}

// ToListChatsResponse converts chat snapshots to their API shape.
func ToListChatsResponse(chats []domain.ChatSession) ListChatsResponse {
	out := make([]ChatSummaryResponse, len(chats))
	for i, c := range chats {
		out[i] = ChatSummaryResponse{
			ChatID:       c.ChatID,
			BranchIDs:    c.BranchIDs,
			MessageCount: len(c.Messages),
			Active:       c.Active,
			CreatedAt:    c.CreatedAt,
		}
	}
	return ListChatsResponse{Chats: out}
}
