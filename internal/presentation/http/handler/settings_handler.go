package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kasirhub/kasir-pos/internal/application/service"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/request"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetTemplate retrieves the receipt template
func (h *SettingsHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.settingsService.GetTemplate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt template retrieved successfully", tpl)
}

// UpdateTemplate updates the receipt template
func (h *SettingsHandler) UpdateTemplate(c *gin.Context) {
	var req request.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	tpl, err := h.settingsService.UpdateTemplate(c.Request.Context(), &service.TemplateInput{
		StoreName:     req.StoreName,
		Address:       req.Address,
		Phone:         req.Phone,
		Website:       req.Website,
		FooterMessage: req.FooterMessage,
		ShowFooter:    req.ShowFooter,
		Logo:          req.Logo,
		ShowLogo:      req.ShowLogo,
		LogoWidth:     req.LogoWidth,
		LogoHeight:    req.LogoHeight,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt template updated successfully", tpl)
}

// GetDisplay retrieves the display settings
func (h *SettingsHandler) GetDisplay(c *gin.Context) {
	settings, err := h.settingsService.GetDisplay(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Display settings retrieved successfully", settings)
}

// UpdateDisplay updates the display settings
func (h *SettingsHandler) UpdateDisplay(c *gin.Context) {
	var req request.UpdateDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateDisplay(c.Request.Context(), req.DecimalPlaces, req.DateFormat)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Display settings updated successfully", settings)
}

// ListPaymentCards lists registered payment cards
func (h *SettingsHandler) ListPaymentCards(c *gin.Context) {
	cards, err := h.settingsService.ListPaymentCards(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment cards retrieved successfully", cards)
}

// CreatePaymentCard registers a payment card
func (h *SettingsHandler) CreatePaymentCard(c *gin.Context) {
	var req request.CreatePaymentCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	card, err := h.settingsService.CreatePaymentCard(c.Request.Context(), req.Name, req.Method)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment card created successfully", card)
}

// DeletePaymentCard removes a payment card
func (h *SettingsHandler) DeletePaymentCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid payment card ID")
		return
	}

	if err := h.settingsService.DeletePaymentCard(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
