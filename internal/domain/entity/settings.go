package entity

import "time"

// Logo dimension bounds in device pixels.
const (
	LogoWidthMin  = 50
	LogoWidthMax  = 500
	LogoHeightMin = 20
	LogoHeightMax = 300
)

// ReceiptTemplate holds the store header and footer printed on every
// receipt. A single row exists per installation; defaults are seeded on
// first read.
type ReceiptTemplate struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StoreName     string    `gorm:"size:255;not null" json:"store_name"`
	Address       string    `gorm:"size:255" json:"address,omitempty"`
	Phone         string    `gorm:"size:50" json:"phone,omitempty"`
	Website       string    `gorm:"size:255" json:"website,omitempty"`
	FooterMessage string    `gorm:"type:text" json:"footer_message,omitempty"`
	ShowFooter    bool      `gorm:"default:true" json:"show_footer"`
	Logo          string    `gorm:"type:text" json:"logo,omitempty"` // data URI, base64 blob or URL
	ShowLogo      bool      `gorm:"default:false" json:"show_logo"`
	LogoWidth     int       `gorm:"default:200" json:"logo_width"`
	LogoHeight    int       `gorm:"default:80" json:"logo_height"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the ReceiptTemplate model
func (ReceiptTemplate) TableName() string {
	return "receipt_templates"
}

// DisplaySettings holds the app-wide amount and date formatting used by the
// receipt renderers.
type DisplaySettings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DecimalPlaces int       `gorm:"default:2" json:"decimal_places"`
	DateFormat    string    `gorm:"size:20;default:'DD/MM/YYYY'" json:"date_format"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the DisplaySettings model
func (DisplaySettings) TableName() string {
	return "display_settings"
}

// DefaultReceiptTemplate returns the template used when none is configured.
func DefaultReceiptTemplate() *ReceiptTemplate {
	return &ReceiptTemplate{
		StoreName:  "TOKO KASIR",
		ShowFooter: true,
		LogoWidth:  200,
		LogoHeight: 80,
	}
}

// DefaultDisplaySettings returns the formatting defaults.
func DefaultDisplaySettings() *DisplaySettings {
	return &DisplaySettings{
		DecimalPlaces: 2,
		DateFormat:    "DD/MM/YYYY",
	}
}
