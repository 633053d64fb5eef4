package impl

import (
	"context"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements customer management.
type customerService struct {
	customerRepo repository.CustomerRepository
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
	}
}

// CreateCustomer registers a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, input usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		Country:   input.Country,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// GetCustomer retrieves a single customer.
func (s *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// ListCustomers lists every customer.
func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.FindAllCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// UpdateCustomer modifies an existing customer.
func (s *customerService) UpdateCustomer(ctx context.Context, id int64, input usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
	}

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return s.GetCustomer(ctx, id)
}

// DeleteCustomer removes a customer. Deletion is refused while orders still
// reference them.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}
		if errors.Is(err, repository.ErrCustomerReferenced) {
			return domainerrors.ErrCustomerHasOrders
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}
