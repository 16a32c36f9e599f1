package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/apperror"
)

// Composer builds a cart of line items against a loaded catalog and derives
// invoice totals before submission. Each bill-creation screen owns exactly
// one Composer; its mutations are synchronous and run to completion, so no
// two mutations ever interleave.
type Composer struct {
	catalog  *CatalogService
	billRepo repository.BillRepository

	// requireCustomer enforces customer attribution at submit time.
	requireCustomer bool

	items      []entity.LineItem
	discount   decimal.Decimal
	customerID *int64
}

// Totals is the pure derivation of the cart's aggregate amounts. Discount
// applies to the pre-tax subtotal only and is itself untaxed. It is not
// bounded by the subtotal: a larger discount yields a negative total, which
// the server is left to judge.
type Totals struct {
	Subtotal decimal.Decimal
	TotalTax decimal.Decimal
	Total    decimal.Decimal
}

// NewComposer creates an empty cart over the given catalog.
func NewComposer(catalog *CatalogService, billRepo repository.BillRepository, requireCustomer bool) *Composer {
	return &Composer{
		catalog:         catalog,
		billRepo:        billRepo,
		requireCustomer: requireCustomer,
	}
}

// AddItem merges quantity into the existing line for productID, or appends a
// new line with price and tax snapshotted from the catalog at this moment.
// Merging keeps the snapshot captured at first add; only the quantity and
// the derived amounts change. Returns false (no-op) when the product is not
// in the currently loaded catalog or the quantity is not positive. The
// catalog check applies to merges too: a product dropped by a mid-session
// reload keeps its existing line but cannot accumulate further quantity.
func (c *Composer) AddItem(productID int64, quantity int) bool {
	if quantity < 1 {
		return false
	}

	product, ok := c.catalog.Lookup(productID)
	if !ok {
		return false
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			c.items[i].Recalculate()
			return true
		}
	}

	item := entity.LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.SellingPrice,
		Quantity:    quantity,
		TaxPercent:  product.TaxPercent,
	}
	item.Recalculate()
	c.items = append(c.items, item)
	return true
}

// RemoveItem removes the line at the given position. Out-of-range indexes
// are ignored; remaining lines keep their order and contents.
func (c *Composer) RemoveItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Items returns the cart lines in insertion order.
func (c *Composer) Items() []entity.LineItem {
	out := make([]entity.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// SetDiscount sets the flat discount amount. Negative input is ignored.
func (c *Composer) SetDiscount(discount decimal.Decimal) {
	if discount.IsNegative() {
		return
	}
	c.discount = discount
}

// Discount returns the current discount amount.
func (c *Composer) Discount() decimal.Decimal {
	return c.discount
}

// SetCustomer attributes the bill to a customer. Nil clears the selection.
func (c *Composer) SetCustomer(customerID *int64) {
	c.customerID = customerID
}

// CustomerID returns the selected customer, if any.
func (c *Composer) CustomerID() *int64 {
	return c.customerID
}

// Totals recomputes the aggregates from the item list. It is derived on
// every call rather than kept incrementally, so there is no stored
// intermediate that can drift.
func (c *Composer) Totals() Totals {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for i := range c.items {
		subtotal = subtotal.Add(c.items[i].LineTotal)
		totalTax = totalTax.Add(c.items[i].TaxAmount)
	}
	return Totals{
		Subtotal: subtotal,
		TotalTax: totalTax,
		Total:    subtotal.Sub(c.discount).Add(totalTax),
	}
}

// Submit sends the composed cart to the server and returns the created
// bill. Only productId and quantity are sent per item; the server is the
// authority for final pricing and tax at commit time.
//
// Validation failures are raised locally before any network call. A server
// rejection (e.g. stock insufficient at commit time) leaves the cart
// untouched so the user can correct and retry; only success clears it.
func (c *Composer) Submit(ctx context.Context) (*entity.Bill, error) {
	if len(c.items) == 0 {
		return nil, apperror.NewValidationMessage("Add at least one item")
	}
	if c.requireCustomer && c.customerID == nil {
		return nil, apperror.NewValidationMessage("Please select a customer")
	}

	input := &repository.CreateBillInput{
		CustomerID: c.customerID,
		Discount:   c.discount,
		Items:      make([]repository.CreateBillItem, 0, len(c.items)),
	}
	for i := range c.items {
		input.Items = append(input.Items, repository.CreateBillItem{
			ProductID: c.items[i].ProductID,
			Quantity:  c.items[i].Quantity,
		})
	}

	bill, err := c.billRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	c.Reset()
	return bill, nil
}

// Reset discards the cart, discount, and customer selection.
func (c *Composer) Reset() {
	c.items = nil
	c.discount = decimal.Zero
	c.customerID = nil
}
