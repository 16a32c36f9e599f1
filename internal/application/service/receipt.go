package service

import (
	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/pkg/printer"
)

// receiptWidth is the character width used for bill receipts (80mm paper).
const receiptWidth = 48

// renderReceipt builds the ESC/POS document for a bill. The payment is
// optional and printed as a footer when the bill has been settled.
func renderReceipt(bill *entity.Bill, payment *entity.Payment) *printer.Document {
	d := printer.NewDocument(receiptWidth)

	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("TAX INVOICE").
		SetFontSize(printer.FontNormal).
		SetBold(false).
		TextF("Bill %s", bill.BillNumber).
		Text(bill.BillDate.Format("02-01-2006")).
		LineFeed()

	d.SetAlign(printer.AlignLeft)
	if bill.CustomerName != "" {
		d.KeyValue("Customer", bill.CustomerName)
	}
	d.Separator('-')

	for _, item := range bill.Items {
		d.ItemLine(item.Quantity, item.ProductName, item.LineTotal.StringFixed(2))
		if item.GSTAmount.IsPositive() {
			d.KeyValue("  GST "+item.TaxPercent.String()+"%", item.GSTAmount.StringFixed(2))
		}
	}

	d.Separator('-').
		KeyValue("Subtotal", bill.Subtotal.StringFixed(2))
	if bill.Discount.IsPositive() {
		d.KeyValue("Discount", "-"+bill.Discount.StringFixed(2))
	}
	d.KeyValue("GST", bill.GSTAmount.StringFixed(2)).
		SetBold(true).
		KeyValue("TOTAL", bill.Total.StringFixed(2)).
		SetBold(false).
		Separator('-')

	d.KeyValue("Status", bill.Status.String())
	if payment != nil {
		d.KeyValue("Paid by", payment.PaymentMode.String())
		if payment.TransactionRef != "" {
			d.KeyValue("Ref", payment.TransactionRef)
		}
		d.KeyValue("Paid on", payment.PaymentDate.Format("02-01-2006"))
	}

	d.LineFeed().
		SetAlign(printer.AlignCenter).
		Text("Thank you for your business").
		FeedLines(3).
		Cut()

	return d
}
