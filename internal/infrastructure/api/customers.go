package api

import (
	"context"
	"fmt"

	"github.com/kmutua/billdesk/internal/domain/entity"
)

// CustomerAPI implements repository.CustomerRepository against the remote
// service.
type CustomerAPI struct {
	client *Client
}

// NewCustomerAPI creates a customer API backed by the given client.
func NewCustomerAPI(client *Client) *CustomerAPI {
	return &CustomerAPI{client: client}
}

// List returns all customers.
func (a *CustomerAPI) List(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := a.client.get(ctx, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID returns a single customer.
func (a *CustomerAPI) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customer entity.Customer
	if err := a.client.get(ctx, fmt.Sprintf("/customers/%d", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create creates a customer and returns the server copy.
func (a *CustomerAPI) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	var created entity.Customer
	if err := a.client.post(ctx, "/customers", customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a customer's fields and returns the server copy.
func (a *CustomerAPI) Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	var updated entity.Customer
	if err := a.client.put(ctx, fmt.Sprintf("/customers/%d", customer.ID), customer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a customer. This is a hard delete on the remote service.
func (a *CustomerAPI) Delete(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/customers/%d", id))
}
