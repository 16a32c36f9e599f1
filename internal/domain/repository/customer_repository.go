package repository

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
)

// CustomerRepository defines the remote contract for customer operations.
// Delete is a hard delete against the remote service; customers have no
// soft-disable like products do.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) error
}
