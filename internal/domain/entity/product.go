package entity

import "time"

// Product represents a catalog item. Price is stored in the smallest
// currency unit, Discount is a percentage in [0,100]. Stock and Sold are
// fractional so continuous measures (weight, volume, length) work.
type Product struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	// Code is the barcode. Blank is allowed, so uniqueness of non-blank
	// codes is enforced in the service layer rather than by an index.
	Code string `gorm:"size:100;index" json:"code"`
	Price      int64     `gorm:"default:0" json:"price"`
	Discount   float64   `gorm:"default:0" json:"discount"`
	Stock      float64   `gorm:"default:0" json:"stock"`
	Sold       float64   `gorm:"default:0" json:"sold"`
	Unit       string    `gorm:"size:50;default:'pcs'" json:"unit"`
	Fractional bool      `gorm:"default:false" json:"fractional"` // continuous measure, allows fractional quantities
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Category represents a product category
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
