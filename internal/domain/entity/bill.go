package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/enum"
)

// Bill represents a committed, server-persisted sales transaction. Every
// monetary field on a Bill is server-computed; the client never recalculates
// a persisted bill's totals.
type Bill struct {
	ID           int64           `json:"id"`
	BillNumber   string          `json:"billNumber"`
	BillDate     time.Time       `json:"billDate"`
	CustomerID   *int64          `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	Items        []BillItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	GSTAmount    decimal.Decimal `json:"gstAmount"`
	Total        decimal.Decimal `json:"total"`
	Status       enum.BillStatus `json:"status"`
}

// BillItem is one line of a persisted bill as returned by the server,
// including the server-computed gstAmount and lineTotal.
type BillItem struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TaxPercent  decimal.Decimal `json:"taxPercent"`
	GSTAmount   decimal.Decimal `json:"gstAmount"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Normalize applies boundary defaults to a decoded bill.
func (b *Bill) Normalize() {
	if b.Items == nil {
		b.Items = []BillItem{}
	}
	if !b.Status.Valid() {
		b.Status = enum.BillStatusActive
	}
}
