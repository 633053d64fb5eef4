package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"
)

var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when an order number collides.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderListQuery narrows the order listing. Nil bounds mean unbounded;
// bounds are inclusive. Status, when non-empty, is an exact match.
type OrderListQuery struct {
	Range  *entity.DateRange
	Status string
}

// OrderRepository is the store boundary for sales orders.
type OrderRepository interface {
	// CreateOrder persists an order header together with its lines. Callers
	// needing atomicity run it through the TransactionManager.
	CreateOrder(ctx context.Context, order *entity.SalesOrder) error

	FindOrderByID(ctx context.Context, id int64) (*entity.SalesOrder, error)

	// FindOrderDetails resolves the order, its customer, and every line's
	// product and category names in one read.
	FindOrderDetails(ctx context.Context, id int64) (*entity.OrderDetails, error)

	// ListOrders returns listing rows with item counts, filters pushed to the
	// store, newest first.
	ListOrders(ctx context.Context, query OrderListQuery) ([]entity.OrderListItem, error)

	UpdateOrderStatus(ctx context.Context, id int64, status string) error

	// DeleteOrder removes an order; its lines cascade.
	DeleteOrder(ctx context.Context, id int64) error

	// FindOrderFacts returns one flat row per order in the range (inclusive),
	// customer fields resolved. Feed for the in-memory reporting strategy.
	FindOrderFacts(ctx context.Context, dateRange entity.DateRange) ([]entity.OrderFact, error)

	// FindLineFacts returns one flat row per order line in the range,
	// product and category names resolved. Lines whose product no longer
	// exists are returned with ProductFound=false, never dropped silently.
	FindLineFacts(ctx context.Context, dateRange entity.DateRange) ([]entity.LineFact, error)
}
