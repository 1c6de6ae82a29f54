package enum

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// TransactionStatus represents the lifecycle state of a transaction
type TransactionStatus int

const (
	TransactionStatusDraft     TransactionStatus = 0
	TransactionStatusPending   TransactionStatus = 1
	TransactionStatusCompleted TransactionStatus = 2
	TransactionStatusCancelled TransactionStatus = 3
	TransactionStatusReturn    TransactionStatus = 4
)

func (s TransactionStatus) String() string {
	return [...]string{"Draft", "Pending", "Completed", "Cancelled", "Return"}[s]
}

func (s TransactionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransactionStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = TransactionStatusDraft
	case "Pending":
		*s = TransactionStatusPending
	case "Completed":
		*s = TransactionStatusCompleted
	case "Cancelled":
		*s = TransactionStatusCancelled
	case "Return":
		*s = TransactionStatusReturn
	}
	return nil
}

// ParseTransactionStatus parses a status name, case-insensitively.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch strings.ToLower(s) {
	case "draft":
		return TransactionStatusDraft, nil
	case "pending":
		return TransactionStatusPending, nil
	case "completed":
		return TransactionStatusCompleted, nil
	case "cancelled":
		return TransactionStatusCancelled, nil
	case "return":
		return TransactionStatusReturn, nil
	}
	return TransactionStatusDraft, errors.New("unknown transaction status: " + s)
}

func (s TransactionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TransactionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransactionStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TransactionStatus(v)
	case int:
		*s = TransactionStatus(v)
	}
	return nil
}
