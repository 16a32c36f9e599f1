package view

import "github.com/kmutua/billdesk/internal/domain/enum"

// BillActions captures which bill-level controls are enabled for a given
// status. It is policy only; rendering is the caller's concern.
type BillActions struct {
	CanCancel          bool
	CanEdit            bool
	CanPay             bool
	ShowPaymentDetails bool
	CanPrint           bool
}

// BillActionsFor derives the action visibility for a bill status. Cancel,
// edit, and pay exist only while the bill is ACTIVE; the payment details
// panel appears only once it is PAID; printing is blocked for CANCELLED.
func BillActionsFor(status enum.BillStatus) BillActions {
	return BillActions{
		CanCancel:          status == enum.BillStatusActive,
		CanEdit:            status == enum.BillStatusActive,
		CanPay:             status == enum.BillStatusActive,
		ShowPaymentDetails: status == enum.BillStatusPaid,
		CanPrint:           status != enum.BillStatusCancelled,
	}
}
