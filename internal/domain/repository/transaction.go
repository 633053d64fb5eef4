package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewProductRepository() ProductRepository
	NewCustomerRepository() CustomerRepository
}

// TransactionManager runs a unit of work inside a single store transaction.
// Order creation uses it so the header and its lines commit atomically.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
