package service

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/enum"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/apperror"
)

// PaymentService records and retrieves bill payments.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo repository.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// RecordPayment settles an ACTIVE bill in full. The amount is always the
// bill's total; partial payments do not exist in this flow. UPI and card
// payments must carry a transaction reference.
func (s *PaymentService) RecordPayment(ctx context.Context, bill *entity.Bill, mode enum.PaymentMode, transactionRef string) (*entity.Payment, error) {
	if bill.Status != enum.BillStatusActive {
		return nil, apperror.NewValidationMessage("Only active bills can be paid")
	}
	if !mode.Valid() {
		return nil, apperror.NewValidationError(apperror.FieldError{
			Field: "paymentMode", Message: "Select a payment mode",
		})
	}
	if mode.RequiresReference() && transactionRef == "" {
		return nil, apperror.NewValidationError(apperror.FieldError{
			Field: "transactionRef", Message: "Transaction reference is required for " + mode.String(),
		})
	}

	input := &repository.CreatePaymentInput{
		BillID:      bill.ID,
		PaymentMode: mode,
		Amount:      bill.Total,
	}
	if mode.RequiresReference() {
		input.TransactionRef = transactionRef
	}
	return s.paymentRepo.Create(ctx, input)
}

// GetForBill returns the payment recorded for a bill, for the payment
// details panel shown on PAID bills.
func (s *PaymentService) GetForBill(ctx context.Context, billID int64) (*entity.Payment, error) {
	return s.paymentRepo.GetByBill(ctx, billID)
}
