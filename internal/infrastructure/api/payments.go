package api

import (
	"context"
	"fmt"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
)

// PaymentAPI implements repository.PaymentRepository against the remote
// service.
type PaymentAPI struct {
	client *Client
}

// NewPaymentAPI creates a payment API backed by the given client.
func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

// Create records a payment; the server transitions the bill to PAID.
func (a *PaymentAPI) Create(ctx context.Context, input *repository.CreatePaymentInput) (*entity.Payment, error) {
	var created entity.Payment
	if err := a.client.post(ctx, "/payments", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByBill returns the payment recorded for the given bill.
func (a *PaymentAPI) GetByBill(ctx context.Context, billID int64) (*entity.Payment, error) {
	var payment entity.Payment
	if err := a.client.get(ctx, fmt.Sprintf("/payments/bill/%d", billID), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
