package service

import (
	"context"
	"errors"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/pagination"
)

// fakeProductRepo serves a fixed product list, or fails every call.
type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (f *fakeProductRepo) ListActive(_ context.Context) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, f.err
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, f.err
}

func (f *fakeProductRepo) Disable(_ context.Context, id int64) (*entity.Product, error) {
	return &entity.Product{ID: id, Disabled: true}, f.err
}

// fakeCustomerRepo serves a fixed customer list and records deletions.
type fakeCustomerRepo struct {
	customers   []entity.Customer
	deletedIDs  []int64
	createCalls int
	err         error
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Customer, len(f.customers))
	copy(out, f.customers)
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	f.createCalls++
	return c, f.err
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	return c, f.err
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.err
}

// fakeBillRepo records calls and delegates to optional per-test hooks.
type fakeBillRepo struct {
	createCalls int
	lastInput   *repository.CreateBillInput

	createFunc  func(input *repository.CreateBillInput) (*entity.Bill, error)
	detailsFunc func(id int64) (*entity.Bill, error)
	cancelCalls int
}

func (f *fakeBillRepo) List(_ context.Context, _ pagination.PageRequest) (pagination.Page[entity.Bill], error) {
	return pagination.Page[entity.Bill]{Content: []entity.Bill{}}, nil
}

func (f *fakeBillRepo) Create(_ context.Context, input *repository.CreateBillInput) (*entity.Bill, error) {
	f.createCalls++
	f.lastInput = input
	if f.createFunc != nil {
		return f.createFunc(input)
	}
	return &entity.Bill{ID: 1, BillNumber: "BILL-0001"}, nil
}

func (f *fakeBillRepo) GetDetails(_ context.Context, id int64) (*entity.Bill, error) {
	if f.detailsFunc != nil {
		return f.detailsFunc(id)
	}
	return nil, errors.New("not found")
}

func (f *fakeBillRepo) Cancel(_ context.Context, id int64) (*entity.Bill, error) {
	f.cancelCalls++
	if f.detailsFunc != nil {
		bill, err := f.detailsFunc(id)
		if err != nil {
			return nil, err
		}
		bill.Status = "CANCELLED"
		return bill, nil
	}
	return nil, errors.New("not found")
}

// fakePaymentRepo records the last payment input.
type fakePaymentRepo struct {
	lastInput *repository.CreatePaymentInput
	payment   *entity.Payment
	err       error
}

func (f *fakePaymentRepo) Create(_ context.Context, input *repository.CreatePaymentInput) (*entity.Payment, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	if f.payment != nil {
		return f.payment, nil
	}
	return &entity.Payment{
		ID:          1,
		BillID:      input.BillID,
		PaymentMode: input.PaymentMode,
		Amount:      input.Amount,
	}, nil
}

func (f *fakePaymentRepo) GetByBill(_ context.Context, billID int64) (*entity.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.payment != nil {
		return f.payment, nil
	}
	return nil, errors.New("not found")
}

// fakePrinter captures printed bytes.
type fakePrinter struct {
	printed [][]byte
	err     error
}

func (f *fakePrinter) Print(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.printed = append(f.printed, data)
	return nil
}

func (f *fakePrinter) Close() error { return nil }
