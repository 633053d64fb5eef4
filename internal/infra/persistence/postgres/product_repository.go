package postgres

import (
	"context"
	"log/slog"

	"tally/config"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
// The retry policy covers only the read-only catalog scan; writes run once.
type productRepository struct {
	db    *gorm.DB
	retry *retryPolicy
}

// ProductRepositoryParams holds dependencies for productRepository, injected by Fx.
type ProductRepositoryParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(params ProductRepositoryParams) repository.ProductRepository {
	return &productRepository{
		db:    params.DB,
		retry: newRetryPolicy(params.Config.Retry, params.Logger),
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references missing category")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("stock quantity cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProducts lists products matching the filter. Both predicates are
// evaluated by the store.
func (repo *productRepository) FindProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.SearchTerm != "" {
		query = query.Where("name ILIKE ?", "%"+filter.SearchTerm+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var productModels []model.ProductModel
	if err := query.Order("name ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// UpdateProduct modifies an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":           product.Name,
			"category_id":    product.CategoryID,
			"unit_price":     product.UnitPrice,
			"stock_quantity": product.StockQuantity,
			"reorder_level":  product.ReorderLevel,
			"is_active":      product.IsActive,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references missing category")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("stock quantity cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product. Historic order lines keep their product
// id; reports treat those as unresolved references.
func (repo *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindAllActiveProducts returns every active product for in-memory
// evaluation of the low-stock predicate.
func (repo *productRepository) FindAllActiveProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel

	err := repo.retry.do(ctx, "active products", func() error {
		productModels = productModels[:0]

		return repo.db.WithContext(ctx).
			Where("is_active = ?", true).
			Order("name ASC").
			Find(&productModels).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomains(productModels), nil
}

func toProductDomains(productModels []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products
}

// toProductDomain maps the persistence model to a pure domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            productM.ID,
		Name:          productM.Name,
		CategoryID:    productM.CategoryID,
		UnitPrice:     productM.UnitPrice,
		StockQuantity: productM.StockQuantity,
		ReorderLevel:  productM.ReorderLevel,
		IsActive:      productM.IsActive,
		CreatedAt:     productM.CreatedAt,
	}
}

// fromProductDomain maps a domain entity to the persistence model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            product.ID,
		Name:          product.Name,
		CategoryID:    product.CategoryID,
		UnitPrice:     product.UnitPrice,
		StockQuantity: product.StockQuantity,
		ReorderLevel:  product.ReorderLevel,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
	}
}
