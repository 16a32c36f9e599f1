package api

import (
	"context"
	"fmt"

	"github.com/kmutua/billdesk/internal/domain/entity"
)

// ProductAPI implements repository.ProductRepository against the remote
// service.
type ProductAPI struct {
	client *Client
}

// NewProductAPI creates a product API backed by the given client.
func NewProductAPI(client *Client) *ProductAPI {
	return &ProductAPI{client: client}
}

// ListActive returns all currently sellable products. Disabled products are
// filtered server-side and never appear here.
func (a *ProductAPI) ListActive(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := a.client.get(ctx, "/products", nil, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

// GetByID returns a single product.
func (a *ProductAPI) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	product.Normalize()
	return &product, nil
}

// Create creates a product and returns the server copy.
func (a *ProductAPI) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := a.client.post(ctx, "/products", product, &created); err != nil {
		return nil, err
	}
	created.Normalize()
	return &created, nil
}

// Update replaces a product's fields and returns the server copy.
func (a *ProductAPI) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var updated entity.Product
	if err := a.client.put(ctx, fmt.Sprintf("/products/%d", product.ID), product, &updated); err != nil {
		return nil, err
	}
	updated.Normalize()
	return &updated, nil
}

// Disable soft-deletes a product so it stops appearing in the catalog.
func (a *ProductAPI) Disable(ctx context.Context, id int64) (*entity.Product, error) {
	var updated entity.Product
	if err := a.client.put(ctx, fmt.Sprintf("/products/%d/disable", id), nil, &updated); err != nil {
		return nil, err
	}
	updated.Normalize()
	return &updated, nil
}
