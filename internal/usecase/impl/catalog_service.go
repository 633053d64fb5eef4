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

// catalogService implements category and product management. Reports only
// ever read this data; all writes come through here.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
	}
}

// CreateCategory adds a new category to the catalog.
func (s *catalogService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// GetCategory retrieves a single category.
func (s *catalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// ListCategories lists every category.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateCategory modifies an existing category.
func (s *catalogService) UpdateCategory(ctx context.Context, id int64, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category. Deletion is refused while products
// still reference it.
func (s *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		if errors.Is(err, repository.ErrCategoryReferenced) {
			return domainerrors.ErrCategoryInUse
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// CreateProduct adds a new product to the catalog. The category must exist.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to verify category")
	}

	product := &entity.Product{
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		UnitPrice:     input.UnitPrice,
		StockQuantity: input.StockQuantity,
		ReorderLevel:  input.ReorderLevel,
		IsActive:      input.IsActive,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a single product.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts lists products matching the filter.
func (s *catalogService) ListProducts(ctx context.Context, query usecase.ProductListQuery) ([]*entity.Product, error) {
	products, err := s.productRepo.FindProducts(ctx, repository.ProductFilter{
		SearchTerm: query.SearchTerm,
		CategoryID: query.CategoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct modifies an existing product. The target category must exist.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, input usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to verify category")
	}

	product := &entity.Product{
		ID:            id,
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		UnitPrice:     input.UnitPrice,
		StockQuantity: input.StockQuantity,
		ReorderLevel:  input.ReorderLevel,
		IsActive:      input.IsActive,
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product. Historic order lines keep their snapshot
// figures; reports flag them as unresolved from then on.
func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
