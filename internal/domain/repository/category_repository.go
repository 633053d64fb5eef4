// Package repository defines the persistence boundary consumed by the use cases.
package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryReferenced is returned when deletion is blocked by products
	// still pointing at the category.
	ErrCategoryReferenced = errors.New("category is referenced by products")
)

// CategoryRepository is the store boundary for categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category. The store enforces referential
	// integrity: deletion fails with ErrCategoryReferenced while products
	// still reference it.
	DeleteCategory(ctx context.Context, id int64) error
}
