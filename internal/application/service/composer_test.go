package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/apperror"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testCatalog(t *testing.T, products ...entity.Product) *CatalogService {
	t.Helper()
	catalog := NewCatalogService(&fakeProductRepo{products: products})
	if _, err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return catalog
}

func widget() entity.Product {
	return entity.Product{
		ID:            1,
		Name:          "Widget",
		SellingPrice:  dec("100"),
		TaxPercent:    dec("18"),
		StockQuantity: 50,
	}
}

func gadget() entity.Product {
	return entity.Product{
		ID:            2,
		Name:          "Gadget",
		SellingPrice:  dec("40"),
		TaxPercent:    dec("5"),
		StockQuantity: 20,
	}
}

func TestComposerAddItem(t *testing.T) {
	t.Run("repeated adds merge into one line", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)

		if !c.AddItem(1, 2) {
			t.Fatal("first AddItem returned false")
		}
		if !c.AddItem(1, 3) {
			t.Fatal("second AddItem returned false")
		}

		items := c.Items()
		if len(items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(items))
		}
		if items[0].Quantity != 5 {
			t.Errorf("expected quantity 5, got %d", items[0].Quantity)
		}
		if !items[0].LineTotal.Equal(dec("500")) {
			t.Errorf("expected line total 500, got %s", items[0].LineTotal)
		}
		if !items[0].TaxAmount.Equal(dec("90")) {
			t.Errorf("expected tax amount 90, got %s", items[0].TaxAmount)
		}
	})

	t.Run("merge keeps the first-add price snapshot", func(t *testing.T) {
		repo := &fakeProductRepo{products: []entity.Product{widget()}}
		catalog := NewCatalogService(repo)
		if _, err := catalog.Load(context.Background()); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		c := NewComposer(catalog, &fakeBillRepo{}, false)

		c.AddItem(1, 1)

		// The catalog price changes mid-composition; the line keeps the
		// snapshot taken at first add.
		repo.products[0].SellingPrice = dec("999")
		if _, err := catalog.Load(context.Background()); err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		c.AddItem(1, 1)

		items := c.Items()
		if len(items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(items))
		}
		if !items[0].Price.Equal(dec("100")) {
			t.Errorf("expected snapshot price 100, got %s", items[0].Price)
		}
		if !items[0].LineTotal.Equal(dec("200")) {
			t.Errorf("expected line total 200, got %s", items[0].LineTotal)
		}
	})

	t.Run("insertion order survives merges", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget(), gadget()), &fakeBillRepo{}, false)

		c.AddItem(1, 1)
		c.AddItem(2, 1)
		c.AddItem(1, 4)

		items := c.Items()
		if len(items) != 2 {
			t.Fatalf("expected 2 line items, got %d", len(items))
		}
		if items[0].ProductID != 1 || items[1].ProductID != 2 {
			t.Errorf("expected order [1 2], got [%d %d]", items[0].ProductID, items[1].ProductID)
		}
	})

	t.Run("product dropped by a reload cannot merge further", func(t *testing.T) {
		repo := &fakeProductRepo{products: []entity.Product{widget(), gadget()}}
		catalog := NewCatalogService(repo)
		if _, err := catalog.Load(context.Background()); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		c := NewComposer(catalog, &fakeBillRepo{}, false)
		c.AddItem(1, 2)

		// The product is disabled mid-session and vanishes from the next
		// catalog load.
		repo.products = []entity.Product{gadget()}
		if _, err := catalog.Load(context.Background()); err != nil {
			t.Fatalf("reload failed: %v", err)
		}

		if c.AddItem(1, 3) {
			t.Error("AddItem merged a product missing from the catalog")
		}
		items := c.Items()
		if len(items) != 1 || items[0].Quantity != 2 {
			t.Errorf("existing line changed: %+v", items)
		}
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)

		if c.AddItem(99, 1) {
			t.Error("AddItem for unknown product returned true")
		}
		if len(c.Items()) != 0 {
			t.Errorf("expected empty cart, got %d items", len(c.Items()))
		}
	})

	t.Run("non-positive quantity is a no-op", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)

		if c.AddItem(1, 0) || c.AddItem(1, -2) {
			t.Error("AddItem with non-positive quantity returned true")
		}
		if len(c.Items()) != 0 {
			t.Errorf("expected empty cart, got %d items", len(c.Items()))
		}
	})
}

func TestComposerRemoveItem(t *testing.T) {
	c := NewComposer(testCatalog(t, widget(), gadget()), &fakeBillRepo{}, false)
	c.AddItem(1, 2)
	c.AddItem(2, 3)

	t.Run("out of range is a no-op", func(t *testing.T) {
		c.RemoveItem(-1)
		c.RemoveItem(2)
		if len(c.Items()) != 2 {
			t.Fatalf("expected 2 items, got %d", len(c.Items()))
		}
	})

	t.Run("removal leaves other lines untouched", func(t *testing.T) {
		c.RemoveItem(0)
		items := c.Items()
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].ProductID != 2 || items[0].Quantity != 3 {
			t.Errorf("surviving line changed: product %d qty %d", items[0].ProductID, items[0].Quantity)
		}
		if !items[0].Price.Equal(dec("40")) {
			t.Errorf("surviving line price changed: %s", items[0].Price)
		}
	})
}

func TestComposerTotals(t *testing.T) {
	t.Run("empty cart totals are zero", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)
		totals := c.Totals()
		if !totals.Subtotal.IsZero() || !totals.TotalTax.IsZero() || !totals.Total.IsZero() {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})

	t.Run("total is subtotal minus discount plus tax", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)
		c.AddItem(1, 5) // subtotal 500, tax 90
		c.SetDiscount(dec("50"))

		totals := c.Totals()
		if !totals.Subtotal.Equal(dec("500")) {
			t.Errorf("expected subtotal 500, got %s", totals.Subtotal)
		}
		if !totals.TotalTax.Equal(dec("90")) {
			t.Errorf("expected tax 90, got %s", totals.TotalTax)
		}
		if !totals.Total.Equal(dec("540")) {
			t.Errorf("expected total 540, got %s", totals.Total)
		}
	})

	t.Run("totals match independent recomputation", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget(), gadget()), &fakeBillRepo{}, false)
		c.AddItem(1, 3)
		c.AddItem(2, 7)
		c.RemoveItem(0)
		c.AddItem(1, 2)

		wantSubtotal := decimal.Zero
		wantTax := decimal.Zero
		for _, item := range c.Items() {
			wantSubtotal = wantSubtotal.Add(item.LineTotal)
			wantTax = wantTax.Add(item.TaxAmount)
		}

		totals := c.Totals()
		if !totals.Subtotal.Equal(wantSubtotal) {
			t.Errorf("subtotal drifted: %s vs %s", totals.Subtotal, wantSubtotal)
		}
		if !totals.TotalTax.Equal(wantTax) {
			t.Errorf("tax drifted: %s vs %s", totals.TotalTax, wantTax)
		}
	})

	t.Run("discount above subtotal yields a negative total", func(t *testing.T) {
		c := NewComposer(testCatalog(t, gadget()), &fakeBillRepo{}, false)
		c.AddItem(2, 1) // subtotal 40, tax 2
		c.SetDiscount(dec("100"))

		totals := c.Totals()
		if !totals.Total.Equal(dec("-58")) {
			t.Errorf("expected total -58, got %s", totals.Total)
		}
	})

	t.Run("negative discount is ignored", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)
		c.SetDiscount(dec("25"))
		c.SetDiscount(dec("-10"))
		if !c.Discount().Equal(dec("25")) {
			t.Errorf("expected discount 25, got %s", c.Discount())
		}
	})
}

func TestComposerSubmit(t *testing.T) {
	t.Run("empty cart fails without a network call", func(t *testing.T) {
		repo := &fakeBillRepo{}
		c := NewComposer(testCatalog(t, widget()), repo, false)

		_, err := c.Submit(context.Background())
		if !apperror.IsKind(err, apperror.ValidationFailed) {
			t.Fatalf("expected ValidationFailed, got %v", err)
		}
		if repo.createCalls != 0 {
			t.Errorf("expected no network call, got %d", repo.createCalls)
		}
	})

	t.Run("missing customer fails when attribution is enforced", func(t *testing.T) {
		repo := &fakeBillRepo{}
		c := NewComposer(testCatalog(t, widget()), repo, true)
		c.AddItem(1, 1)

		_, err := c.Submit(context.Background())
		if !apperror.IsKind(err, apperror.ValidationFailed) {
			t.Fatalf("expected ValidationFailed, got %v", err)
		}
		if repo.createCalls != 0 {
			t.Errorf("expected no network call, got %d", repo.createCalls)
		}
	})

	t.Run("payload carries product and quantity only", func(t *testing.T) {
		repo := &fakeBillRepo{}
		c := NewComposer(testCatalog(t, widget(), gadget()), repo, true)
		c.AddItem(1, 2)
		c.AddItem(2, 1)
		c.SetDiscount(dec("10"))
		customerID := int64(7)
		c.SetCustomer(&customerID)

		bill, err := c.Submit(context.Background())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if bill == nil || bill.ID != 1 {
			t.Fatalf("unexpected bill: %+v", bill)
		}

		input := repo.lastInput
		if input.CustomerID == nil || *input.CustomerID != 7 {
			t.Errorf("customer id not sent: %v", input.CustomerID)
		}
		if !input.Discount.Equal(dec("10")) {
			t.Errorf("expected discount 10, got %s", input.Discount)
		}
		if len(input.Items) != 2 {
			t.Fatalf("expected 2 payload items, got %d", len(input.Items))
		}
		if input.Items[0].ProductID != 1 || input.Items[0].Quantity != 2 {
			t.Errorf("unexpected first payload item: %+v", input.Items[0])
		}
	})

	t.Run("success clears composer state", func(t *testing.T) {
		c := NewComposer(testCatalog(t, widget()), &fakeBillRepo{}, false)
		c.AddItem(1, 1)
		c.SetDiscount(dec("5"))

		if _, err := c.Submit(context.Background()); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if len(c.Items()) != 0 {
			t.Error("items not cleared after submit")
		}
		if !c.Discount().IsZero() {
			t.Error("discount not cleared after submit")
		}
		if c.CustomerID() != nil {
			t.Error("customer not cleared after submit")
		}
	})

	t.Run("server rejection preserves the cart", func(t *testing.T) {
		repo := &fakeBillRepo{
			createFunc: func(_ *repository.CreateBillInput) (*entity.Bill, error) {
				return nil, apperror.NewSubmissionRejected("Insufficient stock for: Widget", nil)
			},
		}
		c := NewComposer(testCatalog(t, widget()), repo, false)
		c.AddItem(1, 2)
		c.SetDiscount(dec("5"))

		_, err := c.Submit(context.Background())
		if !apperror.IsKind(err, apperror.SubmissionRejected) {
			t.Fatalf("expected SubmissionRejected, got %v", err)
		}
		if len(c.Items()) != 1 {
			t.Error("cart not preserved after rejection")
		}
		if !c.Discount().Equal(dec("5")) {
			t.Error("discount not preserved after rejection")
		}
	})

	t.Run("network failure preserves the cart", func(t *testing.T) {
		repo := &fakeBillRepo{
			createFunc: func(_ *repository.CreateBillInput) (*entity.Bill, error) {
				return nil, apperror.NewNetworkFailure(errors.New("connection refused"))
			},
		}
		c := NewComposer(testCatalog(t, widget()), repo, false)
		c.AddItem(1, 2)

		_, err := c.Submit(context.Background())
		if !apperror.IsKind(err, apperror.NetworkFailure) {
			t.Fatalf("expected NetworkFailure, got %v", err)
		}
		if len(c.Items()) != 1 {
			t.Error("cart not preserved after network failure")
		}
	})
}
