package valueobjects

import "fmt"

// PaymentMethod tags how a transaction was captured. Real processor
// integrations are out of scope; the simulated method stands in for them.
type PaymentMethod string

const (
	PaymentMethodSimulated    PaymentMethod = "simulated"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// NewPaymentMethod parses a method tag, defaulting to simulated when empty.
func NewPaymentMethod(method string) (PaymentMethod, error) {
	if method == "" {
		return PaymentMethodSimulated, nil
	}
	pm := PaymentMethod(method)
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", method)
	}
	return pm, nil
}

func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodSimulated, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

func (pm PaymentMethod) String() string {
	return string(pm)
}
