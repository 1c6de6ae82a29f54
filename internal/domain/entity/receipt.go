package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
}

// ReceiptLine represents a single line item on a receipt. Amounts are raw
// smallest-unit integers; formatting happens at render time.
type ReceiptLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    int64   `json:"price"`
	SubTotal int64   `json:"sub_total"`
}

// Receipt is a value object representing a printable receipt. It is NOT a
// database entity - it is composed from transaction data at print time.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	Number       string        `json:"number"`
	Customer     string        `json:"customer,omitempty"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Items        []ReceiptLine `json:"items"`
	SubTotal     int64         `json:"sub_total"`
	Discount     int64         `json:"discount"`
	Total        int64         `json:"total"`
	PaymentLabel string        `json:"payment_label,omitempty"`
	Footer       []string      `json:"footer,omitempty"`
}
