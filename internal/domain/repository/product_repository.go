package repository

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
)

// ProductRepository defines the remote contract for product operations.
// The remote service owns every product record; disabling is a soft delete
// and disabled products never appear in ListActive results.
type ProductRepository interface {
	// ListActive returns all currently sellable (non-disabled) products.
	ListActive(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Disable(ctx context.Context, id int64) (*entity.Product, error)
}
