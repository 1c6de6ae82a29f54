package request

// CreateTransactionRequest represents a new draft transaction request
type CreateTransactionRequest struct {
	CustomerName string `json:"customer_name" binding:"omitempty,max=255"`
}

// AddItemRequest represents an add-item request
type AddItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// UpdateItemQuantityRequest represents an item quantity change
type UpdateItemQuantityRequest struct {
	Quantity float64 `json:"quantity" binding:"min=0"`
}

// SetDiscountRequest represents a manual transaction discount
type SetDiscountRequest struct {
	Discount int64 `json:"discount" binding:"min=0"`
}

// SetCustomerRequest represents a customer name change
type SetCustomerRequest struct {
	CustomerName string `json:"customer_name" binding:"max=255"`
}

// ConfirmPaymentRequest represents a payment confirmation request
type ConfirmPaymentRequest struct {
	Method        string `json:"method" binding:"required,oneof=cash card transfer"`
	PaymentCardID *uint  `json:"payment_card_id"`
	Tendered      int64  `json:"tendered" binding:"min=0"`
}

// TransactionFilterRequest represents transaction filter parameters
type TransactionFilterRequest struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
