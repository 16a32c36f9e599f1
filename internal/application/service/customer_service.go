package service

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
	"github.com/kmutua/billdesk/pkg/apperror"
)

// CustomerService handles customer management.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// ListCustomers returns all customers.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, apperror.NewCatalogUnavailable("customers", err)
	}
	return customers, nil
}

// GetCustomer retrieves a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// CreateCustomer validates and creates a customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if customer.Name == "" {
		return nil, apperror.NewValidationError(apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	return s.customerRepo.Create(ctx, customer)
}

// UpdateCustomer validates and updates a customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if customer.Name == "" {
		return nil, apperror.NewValidationError(apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	return s.customerRepo.Update(ctx, customer)
}

// DeleteCustomer removes a customer. The remote endpoint hard-deletes the
// record; there is no soft-deactivate for customers.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}
