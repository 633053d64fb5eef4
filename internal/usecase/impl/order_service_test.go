package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(orderRepo *fakeOrderRepo, productRepo *fakeProductRepo, customerRepo *fakeCustomerRepo) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		TxManager: &fakeTxManager{
			orderRepo:    orderRepo,
			productRepo:  productRepo,
			customerRepo: customerRepo,
		},
	})
}

func orderTestFixtures() (*fakeOrderRepo, *fakeProductRepo, *fakeCustomerRepo) {
	orderRepo := &fakeOrderRepo{}
	productRepo := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Bolts", CategoryID: 1, UnitPrice: decimal.RequireFromString("2.50"), StockQuantity: 100, IsActive: true},
		2: {ID: 2, Name: "Nuts", CategoryID: 1, UnitPrice: decimal.RequireFromString("1.25"), StockQuantity: 4, IsActive: true},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		1: {ID: 1, Name: "Dana"},
	}}

	return orderRepo, productRepo, customerRepo
}

func TestOrderService_CreateOrder(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	order, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerID: 1,
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 4},
			{ProductID: 2, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	// 4 * 2.50 + 2 * 1.25 = 12.50, prices snapshotted from the catalog.
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("12.50")))
	require.Len(t, order.Lines, 2)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, order.Lines[0].Subtotal.Equal(decimal.RequireFromString("10.00")))

	// Stock decremented for both products.
	assert.Equal(t, int64(96), productRepo.products[1].StockQuantity)
	assert.Equal(t, int64(2), productRepo.products[2].StockQuantity)

	require.Len(t, orderRepo.created, 1)
}

func TestOrderService_CreateOrder_EmptyOrder(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{CustomerID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
	assert.Empty(t, orderRepo.created)
}

func TestOrderService_CreateOrder_UnknownCustomer(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerID: 42,
		Items:      []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerID: 1,
		Items:      []usecase.OrderItemInput{{ProductID: 99, Quantity: 1}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, orderRepo.created)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerID: 1,
		Items:      []usecase.OrderItemInput{{ProductID: 2, Quantity: 5}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, orderRepo.created)
}

func TestOrderService_CreateOrder_RejectsNonPositiveQuantity(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerID: 1,
		Items:      []usecase.OrderItemInput{{ProductID: 1, Quantity: 0}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidQuantity.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	require.NoError(t, service.UpdateOrderStatus(context.Background(), 1, entity.StatusCompleted))
	assert.Equal(t, entity.StatusCompleted, orderRepo.statuses[1])

	err := service.UpdateOrderStatus(context.Background(), 1, "Shipped")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_ListOrders_RejectsReversedRange(t *testing.T) {
	orderRepo, productRepo, customerRepo := orderTestFixtures()
	service := newTestOrderService(orderRepo, productRepo, customerRepo)

	listStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	listEnd := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.ListOrders(context.Background(), usecase.OrderListQuery{StartDate: &listStart, EndDate: &listEnd})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRange)
}
