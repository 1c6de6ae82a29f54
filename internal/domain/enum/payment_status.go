package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the payment state of a transaction. It must stay
// jointly consistent with TransactionStatus: a draft is always pending,
// completed pairs with paid, cancelled with cancelled and return with return.
type PaymentStatus int

const (
	PaymentStatusPending   PaymentStatus = 0
	PaymentStatusPaid      PaymentStatus = 1
	PaymentStatusCancelled PaymentStatus = 2
	PaymentStatusReturn    PaymentStatus = 3
)

func (s PaymentStatus) String() string {
	return [...]string{"Pending", "Paid", "Cancelled", "Return"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PaymentStatusPending
	case "Paid":
		*s = PaymentStatusPaid
	case "Cancelled":
		*s = PaymentStatusCancelled
	case "Return":
		*s = PaymentStatusReturn
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
