package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/pagination"
)

// BillAPI implements repository.BillRepository against the remote service.
type BillAPI struct {
	client *Client
}

// NewBillAPI creates a bill API backed by the given client.
func NewBillAPI(client *Client) *BillAPI {
	return &BillAPI{client: client}
}

// List returns one 0-indexed page of bills, optionally filtered by search.
func (a *BillAPI) List(ctx context.Context, req pagination.PageRequest) (pagination.Page[entity.Bill], error) {
	req.Validate()

	query := url.Values{}
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("size", strconv.Itoa(req.Size))
	if req.Search != "" {
		query.Set("search", req.Search)
	}

	var page pagination.Page[entity.Bill]
	if err := a.client.get(ctx, "/bills/list", query, &page); err != nil {
		return pagination.Page[entity.Bill]{}, err
	}
	if page.Content == nil {
		page.Content = []entity.Bill{}
	}
	for i := range page.Content {
		page.Content[i].Normalize()
	}
	return page, nil
}

// Create commits a composed cart as a new bill in one atomic server call.
func (a *BillAPI) Create(ctx context.Context, input *repository.CreateBillInput) (*entity.Bill, error) {
	var created entity.Bill
	if err := a.client.post(ctx, "/bills", input, &created); err != nil {
		return nil, err
	}
	created.Normalize()
	return &created, nil
}

// GetDetails returns a bill with its items and server-computed totals.
func (a *BillAPI) GetDetails(ctx context.Context, id int64) (*entity.Bill, error) {
	var bill entity.Bill
	if err := a.client.get(ctx, fmt.Sprintf("/bills/details/%d", id), nil, &bill); err != nil {
		return nil, err
	}
	bill.Normalize()
	return &bill, nil
}

// Cancel transitions a bill to CANCELLED; the server restores stock.
func (a *BillAPI) Cancel(ctx context.Context, id int64) (*entity.Bill, error) {
	var updated entity.Bill
	if err := a.client.put(ctx, fmt.Sprintf("/bills/%d/cancel", id), nil, &updated); err != nil {
		return nil, err
	}
	updated.Normalize()
	return &updated, nil
}
