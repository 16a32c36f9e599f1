package service

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/enum"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/internal/presentation/view"
	"github.com/kmutua/billdesk/pkg/apperror"
	"github.com/kmutua/billdesk/pkg/pagination"
	"github.com/kmutua/billdesk/pkg/printer"
)

// BillService handles listing, inspection, cancellation, and printing of
// committed bills.
type BillService struct {
	billRepo    repository.BillRepository
	paymentRepo repository.PaymentRepository
	printer     printer.Printer
}

// NewBillService creates a new bill service. The printer may be nil when no
// receipt device is configured.
func NewBillService(billRepo repository.BillRepository, paymentRepo repository.PaymentRepository, p printer.Printer) *BillService {
	return &BillService{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		printer:     p,
	}
}

// List returns one page of bills matching the search term.
func (s *BillService) List(ctx context.Context, req pagination.PageRequest) (pagination.Page[entity.Bill], error) {
	return s.billRepo.List(ctx, req)
}

// GetDetails returns a bill with its items and server-computed totals.
func (s *BillService) GetDetails(ctx context.Context, id int64) (*entity.Bill, error) {
	return s.billRepo.GetDetails(ctx, id)
}

// Cancel cancels an ACTIVE bill; the server restores the stock it consumed.
// Terminal bills are rejected locally before any network call.
func (s *BillService) Cancel(ctx context.Context, id int64) (*entity.Bill, error) {
	bill, err := s.billRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if !view.BillActionsFor(bill.Status).CanCancel {
		return nil, apperror.NewValidationMessage("Only active bills can be cancelled")
	}
	return s.billRepo.Cancel(ctx, id)
}

// Print renders a bill receipt and sends it to the configured printer.
// Cancelled bills cannot be printed; for paid bills the recorded payment is
// included in the receipt footer.
func (s *BillService) Print(ctx context.Context, id int64) error {
	if s.printer == nil {
		return apperror.NewValidationMessage("No receipt printer configured")
	}

	bill, err := s.billRepo.GetDetails(ctx, id)
	if err != nil {
		return err
	}
	if !view.BillActionsFor(bill.Status).CanPrint {
		return apperror.NewValidationMessage("Cancelled bills cannot be printed")
	}

	var payment *entity.Payment
	if bill.Status == enum.BillStatusPaid {
		payment, err = s.paymentRepo.GetByBill(ctx, bill.ID)
		if err != nil {
			// The receipt is still printable without the payment footer.
			payment = nil
		}
	}

	doc := renderReceipt(bill, payment)
	return s.printer.Print(doc.Bytes())
}
