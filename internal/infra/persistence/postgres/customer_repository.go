package postgres

import (
	"context"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt

	return nil
}

// FindCustomerByID retrieves a customer by their unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).First(&customerM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindAllCustomers lists every customer, name ascending.
func (repo *customerRepository) FindAllCustomers(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []model.CustomerModel

	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, toCustomerDomain(&customerModels[i]))
	}

	return customers, nil
}

// UpdateCustomer modifies an existing customer.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":    customer.Name,
			"email":   customer.Email,
			"phone":   customer.Phone,
			"address": customer.Address,
			"city":    customer.City,
			"country": customer.Country,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// DeleteCustomer removes a customer. The FK from sales orders restricts
// deletion while orders still reference them.
func (repo *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCustomerReferenced
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// toCustomerDomain maps the persistence model to a pure domain entity.
func toCustomerDomain(customerM *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        customerM.ID,
		Name:      customerM.Name,
		Email:     customerM.Email,
		Phone:     customerM.Phone,
		Address:   customerM.Address,
		City:      customerM.City,
		Country:   customerM.Country,
		CreatedAt: customerM.CreatedAt,
	}
}

// fromCustomerDomain maps a domain entity to the persistence model.
func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		City:      customer.City,
		Country:   customer.Country,
		CreatedAt: customer.CreatedAt,
	}
}
