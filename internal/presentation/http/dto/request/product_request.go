package request

// ProductRequest represents a product create/update request
type ProductRequest struct {
	CategoryID *uint   `json:"category_id"`
	Name       string  `json:"name" binding:"required,min=2,max=255"`
	Code       string  `json:"code" binding:"omitempty,max=100"`
	Price      int64   `json:"price" binding:"min=0"`
	Discount   float64 `json:"discount" validate:"discount_percent"`
	Stock      float64 `json:"stock" binding:"min=0"`
	Unit       string  `json:"unit" binding:"omitempty,max=20"`
	Fractional bool    `json:"fractional"`
}

// CategoryRequest represents a category creation request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID *uint  `form:"category_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
