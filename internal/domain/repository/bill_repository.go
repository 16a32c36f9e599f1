package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/pkg/pagination"
)

// CreateBillInput is the payload for bill creation. Only product IDs and
// quantities are sent: the server is the authority for pricing and tax at
// commit time and re-derives every monetary field.
type CreateBillInput struct {
	CustomerID *int64           `json:"customerId,omitempty"`
	Discount   decimal.Decimal  `json:"discount"`
	Items      []CreateBillItem `json:"items"`
}

// CreateBillItem is one productId+quantity pair of a bill creation payload.
type CreateBillItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// BillRepository defines the remote contract for bill operations.
type BillRepository interface {
	// List returns one page of bills matching the request's search term.
	List(ctx context.Context, req pagination.PageRequest) (pagination.Page[entity.Bill], error)
	// Create atomically commits a composed cart into a bill. The server
	// assigns the bill number and decrements stock; insufficient stock at
	// commit time is a rejection, not a partial write.
	Create(ctx context.Context, input *CreateBillInput) (*entity.Bill, error)
	// GetDetails returns a bill with its items and computed totals.
	GetDetails(ctx context.Context, id int64) (*entity.Bill, error)
	// Cancel transitions an ACTIVE bill to CANCELLED and restores stock.
	Cancel(ctx context.Context, id int64) (*entity.Bill, error)
}
