package usecase

import (
	"context"

	"tally/internal/domain/entity"
)

// CustomerInput is the administrative payload for creating or updating a customer.
type CustomerInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
	Phone   string `json:"phone" validate:"max=20"`
	Address string `json:"address" validate:"max=500"`
	City    string `json:"city" validate:"max=100"`
	Country string `json:"country" validate:"max=100"`
}

// CustomerUsecase manages customers.
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, input CustomerInput) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
