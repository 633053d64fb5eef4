package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"
)

var (
	// ErrCustomerNotFound is returned when a customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerReferenced is returned when deletion is blocked by existing orders.
	ErrCustomerReferenced = errors.New("customer is referenced by orders")
)

// CustomerRepository is the store boundary for customers.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
	FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindAllCustomers(ctx context.Context) ([]*entity.Customer, error)
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}
