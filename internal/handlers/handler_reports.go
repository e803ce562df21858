package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/retailcore/branch_retail_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ReportsHandler serves read-only views of the ledger, catalog and chat
// registry. All mutation stays on the textual command protocol.
type ReportsHandler struct {
	saleService    portssvc.SaleSvcFacade
	catalogService portssvc.CatalogSvcFacade
	chatService    portssvc.ChatSvcFacade
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(sale portssvc.SaleSvcFacade, catalog portssvc.CatalogSvcFacade, chat portssvc.ChatSvcFacade) *ReportsHandler {
	return &ReportsHandler{
		saleService:    sale,
		catalogService: catalog,
		chatService:    chat,
	}
}

// registerReportRoutes sets up the authenticated read-only report routes.
func registerReportRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewReportsHandler(services.Sale, services.Catalog, services.Chat)

	rg.GET("/sales", h.ListSales)
	rg.GET("/products", h.ListProducts)

	admin := rg.Group("", middleware.RequireAdmin())
	admin.GET("/chats", h.ListChats)
}

// ListSales returns one page of the sales ledger, newest-token based.
func (h *ReportsHandler) ListSales(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	sales, nextToken, err := h.saleService.ListSalesPage(c.Request.Context(), limit, c.Query("nextToken"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to list sales"})
		return
	}

	resp := dto.ListSalesResponse{
		Sales:     make([]dto.SaleResponse, len(sales)),
		NextToken: nextToken,
	}
	for i, sale := range sales {
		resp.Sales[i] = dto.ToSaleResponse(sale)
	}
	c.JSON(http.StatusOK, resp)
}

// ListProducts returns the catalog, optionally filtered by branch.
func (h *ReportsHandler) ListProducts(c *gin.Context) {
	var (
		products []domain.Product
		err      error
	)
	if branch := c.Query("branch"); branch != "" {
		products, err = h.catalogService.ListProductsByBranch(c.Request.Context(), branch)
	} else {
		products, err = h.catalogService.ListProducts(c.Request.Context())
	}
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// ListChats returns shape-only chat summaries. Admin tokens only.
func (h *ReportsHandler) ListChats(c *gin.Context) {
	chats, err := h.chatService.ListChats(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list chats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list chats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListChatsResponse(chats))
}
