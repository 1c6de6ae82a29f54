package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kasirhub/kasir-pos/internal/application/service"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/request"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/response"
	"github.com/kasirhub/kasir-pos/pkg/pagination"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	txService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// Create opens a new draft transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tx, err := h.txService.CreateDraft(c.Request.Context(), &service.CreateTransactionInput{
		CustomerName: req.CustomerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction created successfully", tx)
}

// List handles listing transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	pg := pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	pg.Validate()
	params := &repository.TransactionFilterParams{
		Search:     filter.Search,
		Pagination: pg,
	}
	if filter.Status != "" {
		status, err := enum.ParseTransactionStatus(filter.Status)
		if err != nil {
			response.BadRequest(c, "Unknown status: "+filter.Status)
			return
		}
		params.Status = &status
	}

	transactions, total, err := h.txService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully",
		pagination.NewPaginatedResult(transactions, pag))
}

// Get retrieves a transaction with its items
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.txService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction retrieved successfully", tx)
}

// AddItem adds a product to a draft cart
func (h *TransactionHandler) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tx, err := h.txService.AddItem(c.Request.Context(), id, req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added successfully", tx)
}

// UpdateItem changes an item quantity; zero removes the item
func (h *TransactionHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tx, err := h.txService.UpdateItemQuantity(c.Request.Context(), id, itemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item updated successfully", tx)
}

// RemoveItem deletes an item from a draft cart
func (h *TransactionHandler) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	tx, err := h.txService.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed successfully", tx)
}

// SetDiscount sets the manual transaction-level discount
func (h *TransactionHandler) SetDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tx, err := h.txService.SetManualDiscount(c.Request.Context(), id, req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount applied successfully", tx)
}

// SetCustomer attaches a customer name to a draft
func (h *TransactionHandler) SetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tx, err := h.txService.SetCustomerName(c.Request.Context(), id, req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", tx)
}

// Pay confirms payment and finalizes a draft
func (h *TransactionHandler) Pay(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tx, err := h.txService.ConfirmPayment(c.Request.Context(), id, &service.ConfirmPaymentInput{
		Method:        req.Method,
		PaymentCardID: req.PaymentCardID,
		Tendered:      req.Tendered,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment confirmed successfully", tx)
}

// Cancel soft-cancels a draft, keeping it for audit
func (h *TransactionHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.txService.CancelDraft(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction cancelled", tx)
}

// DeleteDraft hard-cancels a draft
func (h *TransactionHandler) DeleteDraft(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.txService.DeleteDraft(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// MarkReturn flags a completed transaction as returned
func (h *TransactionHandler) MarkReturn(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.txService.MarkReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction marked as returned", tx)
}

// Delete permanently removes a cancelled or returned transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.txService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
