package entity

import "github.com/shopspring/decimal"

// LineItem is one product-quantity entry within an in-progress cart. It is
// client-owned and never persisted: on submission only productId and
// quantity travel to the server, which re-derives pricing.
//
// Price and TaxPercent are snapshots captured when the product was first
// added, so a bill's line pricing stays stable even if catalog prices change
// mid-composition.
type LineItem struct {
	ProductID   int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	TaxPercent  decimal.Decimal
	TaxAmount   decimal.Decimal
	LineTotal   decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Recalculate derives LineTotal and TaxAmount from the snapshot price, the
// snapshot tax percent, and the current quantity.
func (li *LineItem) Recalculate() {
	li.LineTotal = li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
	li.TaxAmount = li.LineTotal.Mul(li.TaxPercent).Div(hundred)
}
