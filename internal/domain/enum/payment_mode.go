package enum

// PaymentMode represents how a bill was paid.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "CASH"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeCard PaymentMode = "CARD"
)

func (m PaymentMode) String() string {
	return string(m)
}

// Valid reports whether m is a known payment mode.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard:
		return true
	}
	return false
}

// RequiresReference reports whether a transaction reference must accompany
// a payment in this mode. Cash payments carry no reference.
func (m PaymentMode) RequiresReference() bool {
	return m == PaymentModeUPI || m == PaymentModeCard
}
