package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/apperror"
)

// ProductService handles product catalog management.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListActive returns all currently sellable products.
func (s *ProductService) ListActive(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.NewCatalogUnavailable("products", err)
	}
	return products, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct validates and creates a product. Validation failures are
// raised locally; server field-error maps come back as SubmissionRejected
// and are mapped onto form fields by the caller either way.
func (s *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if fieldErrors := validateProduct(product); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors...)
	}
	return s.productRepo.Create(ctx, product)
}

// UpdateProduct validates and updates a product.
func (s *ProductService) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if fieldErrors := validateProduct(product); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors...)
	}
	return s.productRepo.Update(ctx, product)
}

// DisableProduct soft-deletes a product. Once disabled it no longer appears
// in the catalog available for new bills.
func (s *ProductService) DisableProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return s.productRepo.Disable(ctx, id)
}

func validateProduct(p *entity.Product) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if p.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if p.SellingPrice.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "sellingPrice", Message: "Selling price cannot be negative",
		})
	}
	if p.CostPrice.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "costPrice", Message: "Cost price cannot be negative",
		})
	}
	if p.StockQuantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "stockQuantity", Message: "Stock quantity cannot be negative",
		})
	}
	if p.TaxPercent.IsNegative() || p.TaxPercent.GreaterThan(decimal.NewFromInt(100)) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "taxPercent", Message: "Tax percent must be between 0 and 100",
		})
	}

	return fieldErrors
}
