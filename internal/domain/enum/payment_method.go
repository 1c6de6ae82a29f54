package enum

// Payment methods accepted at the register.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// PaymentMethodLabel resolves a method to its receipt label. Unknown methods
// pass through unchanged.
func PaymentMethodLabel(m string) string {
	switch m {
	case PaymentMethodCash:
		return "Tunai"
	case PaymentMethodCard:
		return "Kartu"
	case PaymentMethodTransfer:
		return "Transfer"
	}
	return m
}
