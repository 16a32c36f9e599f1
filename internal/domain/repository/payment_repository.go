package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/enum"
)

// CreatePaymentInput is the payload for recording a payment against a bill.
type CreatePaymentInput struct {
	BillID         int64            `json:"billId"`
	PaymentMode    enum.PaymentMode `json:"paymentMode"`
	Amount         decimal.Decimal  `json:"amount"`
	TransactionRef string           `json:"transactionRef,omitempty"`
}

// PaymentRepository defines the remote contract for payment operations.
type PaymentRepository interface {
	// Create records a payment; the server transitions the bill to PAID.
	Create(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error)
	// GetByBill returns the payment recorded for a PAID bill.
	GetByBill(ctx context.Context, billID int64) (*entity.Payment, error)
}
