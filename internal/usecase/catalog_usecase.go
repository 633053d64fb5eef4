package usecase

import (
	"context"

	"tally/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CategoryInput is the administrative payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// ProductInput is the administrative payload for creating or updating a product.
type ProductInput struct {
	Name          string          `json:"name" validate:"required,max=200"`
	CategoryID    int64           `json:"category_id" validate:"required,gt=0"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int64           `json:"stock_quantity" validate:"gte=0"`
	ReorderLevel  int64           `json:"reorder_level" validate:"gte=0"`
	IsActive      bool            `json:"is_active"`
}

// ProductListQuery narrows the product listing.
type ProductListQuery struct {
	SearchTerm string
	CategoryID *int64
}

// CatalogUsecase manages categories and products. The reporting core only
// ever reads this data.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListProducts(ctx context.Context, query ProductListQuery) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
