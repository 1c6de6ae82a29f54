package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasirhub/kasir-pos/internal/application/service"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt and printer HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetStatus returns the current printer connection status
func (h *ReceiptHandler) GetStatus(c *gin.Context) {
	status := h.receiptService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint()
	if err != nil {
		// Return the receipt data anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"receipt": receipt,
	})
}

// Get returns the receipt value object for a transaction
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	receipt, err := h.receiptService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Print sends the receipt to the configured printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	receipt, err := h.receiptService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		// If the receipt was built but printing failed, return it with a warning
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}

// Escpos returns the raw ESC/POS byte stream for a transaction
func (h *ReceiptHandler) Escpos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	data, err := h.receiptService.EncodeReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// HTML returns the self-contained HTML receipt document
func (h *ReceiptHandler) HTML(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	doc, err := h.receiptService.RenderHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
