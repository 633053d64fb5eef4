package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the sales order lifecycle. Order creation runs
// through the transaction manager so the header, its lines, and the stock
// decrements commit or roll back as one unit.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	CustomerRepo repository.CustomerRepository
	TxManager    repository.TransactionManager
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		customerRepo: params.CustomerRepo,
		txManager:    params.TxManager,
	}
}

// CreateOrder places an order. Unit prices are snapshotted from the product
// at this moment; later price changes never touch the stored lines. Stock is
// decremented inside the same transaction, so an insufficient line rolls the
// whole order back.
func (s *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.SalesOrder, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails(
				fmt.Sprintf("product %d requested with quantity %d", item.ProductID, item.Quantity))
		}
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to verify customer")
	}

	now := time.Now().UTC()
	order := &entity.SalesOrder{
		OrderNumber: generateOrderNumber(now),
		CustomerID:  input.CustomerID,
		OrderDate:   now,
		Status:      entity.StatusPending,
		TotalAmount: decimal.Zero,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		for _, item := range input.Items {
			product, err := productRepo.FindProductByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails(
						fmt.Sprintf("product %d does not exist", item.ProductID))
				}

				return errors.Wrap(err, "failed to load product")
			}
			if product.StockQuantity < item.Quantity {
				return domainerrors.ErrInsufficientStock.WithDetails(
					fmt.Sprintf("product %q has %d in stock, %d requested", product.Name, product.StockQuantity, item.Quantity))
			}

			subtotal := product.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
			order.Lines = append(order.Lines, entity.SalesOrderLine{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.UnitPrice,
				Subtotal:  subtotal,
			})
			order.TotalAmount = order.TotalAmount.Add(subtotal)

			product.StockQuantity -= item.Quantity
			if err := productRepo.UpdateProduct(ctx, product); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		return repoFactory.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderDetails retrieves an order with its customer and every line's
// display names resolved.
func (s *orderService) GetOrderDetails(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	details, err := s.orderRepo.FindOrderDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order details")
	}

	return details, nil
}

// ListOrders returns listing rows, newest first. Bounds are inclusive and
// each may be open.
func (s *orderService) ListOrders(ctx context.Context, query usecase.OrderListQuery) ([]entity.OrderListItem, error) {
	listQuery := repository.OrderListQuery{Status: query.Status}

	if query.StartDate != nil || query.EndDate != nil {
		dateRange := entity.DateRange{
			Start: time.Time{},
			End:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
		}
		if query.StartDate != nil {
			dateRange.Start = *query.StartDate
		}
		if query.EndDate != nil {
			dateRange.End = *query.EndDate
		}
		if dateRange.Start.After(dateRange.End) {
			return nil, domainerrors.ErrInvalidRange
		}
		listQuery.Range = &dateRange
	}

	items, err := s.orderRepo.ListOrders(ctx, listQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return items, nil
}

// UpdateOrderStatus changes the status of an existing order. Only the three
// canonical statuses are accepted.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case entity.StatusPending, entity.StatusCompleted, entity.StatusCancelled:
	default:
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", status))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

// DeleteOrder removes an order; its lines cascade at the store.
func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// generateOrderNumber builds a unique human-scannable order number. The
// timestamp keeps numbers roughly sortable; the UUID suffix breaks
// same-second collisions.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])

	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102150405"), suffix)
}
