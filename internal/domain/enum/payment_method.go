package enum

import "encoding/json"

// PaymentMethod represents how an invoice was settled
type PaymentMethod int

const (
	PaymentMethodCash   PaymentMethod = 0
	PaymentMethodCard   PaymentMethod = 1
	PaymentMethodUPI    PaymentMethod = 2
	PaymentMethodCredit PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	names := [...]string{"Cash", "Card", "UPI", "Credit"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			// Unknown shapes fall back to the default method rather
			// than failing the whole payload.
			*m = PaymentMethodCash
			return nil
		}
		*m = PaymentMethod(i)
		return nil
	}
	*m = ParsePaymentMethod(str)
	return nil
}

// ParsePaymentMethod maps a method name to its enum value. Unrecognized
// names map to Cash.
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "Card":
		return PaymentMethodCard
	case "UPI":
		return PaymentMethodUPI
	case "Credit":
		return PaymentMethodCredit
	default:
		return PaymentMethodCash
	}
}
