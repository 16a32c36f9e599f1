package service

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/apperror"
)

// CatalogService holds the sellable product list for one bill-creation
// session. It is loaded once on entry to the create-bill flow and rebuilt
// fresh each time the flow is entered; there is no cross-session sharing or
// invalidation beyond that.
type CatalogService struct {
	productRepo repository.ProductRepository

	products  []entity.Product
	index     map[int64]int
	available bool
}

// NewCatalogService creates an empty, unloaded catalog.
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		index:       map[int64]int{},
	}
}

// Load fetches the currently active products. On failure the catalog is
// left empty and unavailable, and the error is CatalogUnavailable: the
// caller must disable item-adding controls and surface a non-blocking
// notification.
func (s *CatalogService) Load(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		s.products = nil
		s.index = map[int64]int{}
		s.available = false
		return nil, apperror.NewCatalogUnavailable("products", err)
	}

	s.products = products
	s.index = make(map[int64]int, len(products))
	for i := range products {
		s.index[products[i].ID] = i
	}
	s.available = true
	return s.Products(), nil
}

// Available reports whether the catalog loaded successfully, i.e. whether
// item-adding controls should be enabled.
func (s *CatalogService) Available() bool {
	return s.available
}

// Products returns the loaded catalog.
func (s *CatalogService) Products() []entity.Product {
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Lookup resolves a product by ID from the loaded catalog.
func (s *CatalogService) Lookup(productID int64) (*entity.Product, bool) {
	i, ok := s.index[productID]
	if !ok {
		return nil, false
	}
	product := s.products[i]
	return &product, true
}
