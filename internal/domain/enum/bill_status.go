package enum

// BillStatus represents the lifecycle status of a bill as reported by the
// server. ACTIVE bills can still be paid, edited, or cancelled; PAID and
// CANCELLED are terminal.
type BillStatus string

const (
	BillStatusActive    BillStatus = "ACTIVE"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusCancelled BillStatus = "CANCELLED"
)

func (s BillStatus) String() string {
	return string(s)
}

// Terminal reports whether no further transition is possible.
func (s BillStatus) Terminal() bool {
	return s == BillStatusPaid || s == BillStatusCancelled
}

// Valid reports whether s is a known status value.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusActive, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}
