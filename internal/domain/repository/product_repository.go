package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. SearchTerm is a case-insensitive
// substring match on the product name; CategoryID narrows to one category.
// Both are optional.
type ProductFilter struct {
	SearchTerm string
	CategoryID *int64
}

// ProductRepository is the store boundary for the product catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindProducts lists products matching the filter. The filter is pushed
	// to the store, never applied after materialization.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	// FindAllActiveProducts returns every active product; the scan reporting
	// strategy evaluates the low-stock predicate over this set in memory.
	FindAllActiveProducts(ctx context.Context) ([]*entity.Product, error)
}
