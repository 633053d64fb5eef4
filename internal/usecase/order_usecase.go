package usecase

import (
	"context"
	"time"

	"tally/internal/domain/entity"
)

// OrderItemInput is one requested line of a new order. The unit price is
// snapshotted from the product at creation time, never taken from the caller.
type OrderItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput is the payload for placing an order.
type CreateOrderInput struct {
	CustomerID int64            `json:"customer_id" validate:"required,gt=0"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderListQuery narrows the order listing. Bounds are inclusive and
// optional; status, when non-empty, is an exact match.
type OrderListQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
}

// OrderUsecase manages the sales order lifecycle. An order and its lines are
// created atomically as one unit; deletion cascades to the lines.
type OrderUsecase interface {
	// CreateOrder places an order: generates the order number, snapshots
	// unit prices, computes subtotals and the total, and persists header and
	// lines in one transaction.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.SalesOrder, error)

	GetOrderDetails(ctx context.Context, id int64) (*entity.OrderDetails, error)
	ListOrders(ctx context.Context, query OrderListQuery) ([]entity.OrderListItem, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	DeleteOrder(ctx context.Context, id int64) error
}
