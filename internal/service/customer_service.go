package service

import (
	"context"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/repository"
	"github.com/repairdeck/repairshop-service/internal/validation"
)

// CustomerService coordinates customer record workflows.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService constructs the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, form validation.CustomerForm) (*domain.Customer, error) {
	draft, errs := form.Validate()
	if errs.HasErrors() {
		return nil, errs.AsDomainError()
	}
	return s.customers.Create(ctx, draft)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, form validation.CustomerForm) (*domain.Customer, error) {
	draft, errs := form.Validate()
	if errs.HasErrors() {
		return nil, errs.AsDomainError()
	}
	return s.customers.Update(ctx, id, draft)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}
