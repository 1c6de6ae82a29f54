package request

// UpdateTemplateRequest represents a receipt template update request
type UpdateTemplateRequest struct {
	StoreName     string `json:"store_name" binding:"required,min=1,max=255"`
	Address       string `json:"address" binding:"omitempty,max=255"`
	Phone         string `json:"phone" binding:"omitempty,max=50"`
	Website       string `json:"website" binding:"omitempty,max=255"`
	FooterMessage string `json:"footer_message" binding:"omitempty,max=500"`
	ShowFooter    bool   `json:"show_footer"`
	Logo          string `json:"logo"`
	ShowLogo      bool   `json:"show_logo"`
	LogoWidth     int    `json:"logo_width" binding:"min=50,max=500"`
	LogoHeight    int    `json:"logo_height" binding:"min=20,max=300"`
}

// UpdateDisplayRequest represents a display settings update request
type UpdateDisplayRequest struct {
	DecimalPlaces int    `json:"decimal_places" binding:"min=0,max=4"`
	DateFormat    string `json:"date_format" binding:"omitempty,max=20"`
}

// CreatePaymentCardRequest represents a payment card registration request
type CreatePaymentCardRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Method string `json:"method" binding:"required,oneof=card transfer"`
}
