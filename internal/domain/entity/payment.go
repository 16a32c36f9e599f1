package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/enum"
)

// Payment records how a bill was settled. A bill that transitions to PAID
// has exactly one payment.
type Payment struct {
	ID             int64            `json:"id"`
	BillID         int64            `json:"billId"`
	PaymentMode    enum.PaymentMode `json:"paymentMode"`
	Amount         decimal.Decimal  `json:"amount"`
	TransactionRef string           `json:"transactionRef,omitempty"`
	Status         string           `json:"status,omitempty"`
	PaymentDate    time.Time        `json:"paymentDate"`
}
