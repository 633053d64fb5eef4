package postgres

import (
	"context"
	"log/slog"
	"time"

	"tally/config"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface. The
// retry policy covers only the read-only fact queries; writes run once.
type orderRepository struct {
	db    *gorm.DB
	retry *retryPolicy
}

// OrderRepositoryParams holds dependencies for orderRepository, injected by Fx.
type OrderRepositoryParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(params OrderRepositoryParams) repository.OrderRepository {
	return &orderRepository{
		db:    params.DB,
		retry: newRetryPolicy(params.Config.Retry, params.Logger),
	}
}

// CreateOrder persists the order header together with its lines. GORM
// inserts the associated detail rows with the header; callers that need the
// stock updates in the same unit run this through the transaction manager.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.SalesOrder) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("order references missing customer or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i := range orderM.Details {
		order.Lines[i].ID = orderM.Details[i].ID
		order.Lines[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order header with its lines.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id int64) (*entity.SalesOrder, error) {
	var orderM model.SalesOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// orderItemRow is the scan target for the detail line join.
type orderItemRow struct {
	LineID       int64
	ProductID    int64
	ProductName  string
	CategoryName string
	Quantity     int64
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}

// FindOrderDetails resolves the order, its customer, and every line's
// product and category names in one read. Lines whose product was deleted
// keep their snapshot figures with an empty product name.
func (repo *orderRepository) FindOrderDetails(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	var orderM model.SalesOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order details")
	}

	var rows []orderItemRow
	if err := repo.db.WithContext(ctx).Raw(`
		SELECT d.id AS line_id,
		       d.product_id,
		       COALESCE(p.name, '') AS product_name,
		       COALESCE(c.name, '') AS category_name,
		       d.quantity,
		       d.unit_price,
		       d.subtotal
		FROM sales_order_details d
		LEFT JOIN products p ON p.id = d.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE d.order_id = ?
		ORDER BY d.id ASC`, id).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	details := &entity.OrderDetails{
		Order: *toOrderDomain(&orderM),
		Items: make([]entity.OrderItemView, 0, len(rows)),
	}
	if orderM.Customer != nil {
		details.Customer = *toCustomerDomain(orderM.Customer)
	}
	for _, row := range rows {
		details.Items = append(details.Items, entity.OrderItemView{
			LineID:       row.LineID,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			CategoryName: row.CategoryName,
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			Subtotal:     row.Subtotal,
		})
	}

	return details, nil
}

// ListOrders returns listing rows with item counts, newest first. Filters
// are evaluated by the store.
func (repo *orderRepository) ListOrders(ctx context.Context, query repository.OrderListQuery) ([]entity.OrderListItem, error) {
	builder := repo.db.WithContext(ctx).
		Table("sales_orders AS o").
		Select(`o.id AS order_id,
			o.order_number,
			o.customer_id,
			COALESCE(cu.name, '') AS customer_name,
			COALESCE(cu.email, '') AS email,
			o.order_date,
			o.total_amount,
			o.status,
			(SELECT COUNT(*) FROM sales_order_details d WHERE d.order_id = o.id) AS item_count`).
		Joins("LEFT JOIN customers cu ON cu.id = o.customer_id")

	if query.Range != nil {
		builder = builder.Where("o.order_date BETWEEN ? AND ?", query.Range.Start, query.Range.End)
	}
	if query.Status != "" {
		builder = builder.Where("o.status = ?", query.Status)
	}

	var items []entity.OrderListItem
	if err := builder.Order("o.order_date DESC, o.id DESC").Scan(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return items, nil
}

// UpdateOrderStatus changes the status of an existing order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	result := repo.db.WithContext(ctx).Model(&model.SalesOrderModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteOrder removes an order; the FK cascade removes its lines.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.SalesOrderModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// orderFactRow is the scan target for the order fact query.
type orderFactRow struct {
	OrderID       int64
	OrderDate     time.Time
	Status        string
	TotalAmount   decimal.Decimal
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	CustomerCity  string
	CustomerFound bool
}

// FindOrderFacts returns one flat row per order in the range, inclusive on
// both bounds. Orders whose customer was deleted come back with
// CustomerFound false so the aggregation can exclude and count them.
func (repo *orderRepository) FindOrderFacts(ctx context.Context, dateRange entity.DateRange) ([]entity.OrderFact, error) {
	var rows []orderFactRow

	err := repo.retry.do(ctx, "order facts", func() error {
		rows = rows[:0]

		return repo.db.WithContext(ctx).Raw(`
			SELECT o.id AS order_id,
			       o.order_date,
			       o.status,
			       o.total_amount,
			       o.customer_id,
			       COALESCE(cu.name, '') AS customer_name,
			       COALESCE(cu.email, '') AS customer_email,
			       COALESCE(cu.city, '') AS customer_city,
			       cu.id IS NOT NULL AS customer_found
			FROM sales_orders o
			LEFT JOIN customers cu ON cu.id = o.customer_id
			WHERE o.order_date BETWEEN ? AND ?
			ORDER BY o.order_date ASC, o.id ASC`, dateRange.Start, dateRange.End).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order facts")
	}

	facts := make([]entity.OrderFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, entity.OrderFact{
			OrderID:       row.OrderID,
			OrderDate:     row.OrderDate,
			Status:        row.Status,
			TotalAmount:   row.TotalAmount,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerCity:  row.CustomerCity,
			CustomerFound: row.CustomerFound,
		})
	}

	return facts, nil
}

// lineFactRow is the scan target for the line fact query.
type lineFactRow struct {
	OrderID      int64
	OrderDate    time.Time
	Status       string
	ProductID    int64
	ProductName  string
	CategoryID   int64
	CategoryName string
	Quantity     int64
	Subtotal     decimal.Decimal
	ProductFound bool
}

// FindLineFacts returns one flat row per order line in the range. Lines
// whose product was deleted come back with ProductFound false, never
// dropped silently.
func (repo *orderRepository) FindLineFacts(ctx context.Context, dateRange entity.DateRange) ([]entity.LineFact, error) {
	var rows []lineFactRow

	err := repo.retry.do(ctx, "line facts", func() error {
		rows = rows[:0]

		return repo.db.WithContext(ctx).Raw(`
			SELECT o.id AS order_id,
			       o.order_date,
			       o.status,
			       d.product_id,
			       COALESCE(p.name, '') AS product_name,
			       COALESCE(p.category_id, 0) AS category_id,
			       COALESCE(c.name, '') AS category_name,
			       d.quantity,
			       d.subtotal,
			       p.id IS NOT NULL AS product_found
			FROM sales_order_details d
			JOIN sales_orders o ON o.id = d.order_id
			LEFT JOIN products p ON p.id = d.product_id
			LEFT JOIN categories c ON c.id = p.category_id
			WHERE o.order_date BETWEEN ? AND ?
			ORDER BY o.id ASC, d.id ASC`, dateRange.Start, dateRange.End).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load line facts")
	}

	facts := make([]entity.LineFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, entity.LineFact{
			OrderID:      row.OrderID,
			OrderDate:    row.OrderDate,
			Status:       row.Status,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Quantity:     row.Quantity,
			Subtotal:     row.Subtotal,
			ProductFound: row.ProductFound,
		})
	}

	return facts, nil
}

// toOrderDomain maps the persistence model to a pure domain entity.
func toOrderDomain(orderM *model.SalesOrderModel) *entity.SalesOrder {
	order := &entity.SalesOrder{
		ID:          orderM.ID,
		OrderNumber: orderM.OrderNumber,
		CustomerID:  orderM.CustomerID,
		OrderDate:   orderM.OrderDate,
		TotalAmount: orderM.TotalAmount,
		Status:      orderM.Status,
		CreatedAt:   orderM.CreatedAt,
	}
	for i := range orderM.Details {
		lineM := &orderM.Details[i]
		order.Lines = append(order.Lines, entity.SalesOrderLine{
			ID:        lineM.ID,
			OrderID:   lineM.OrderID,
			ProductID: lineM.ProductID,
			Quantity:  lineM.Quantity,
			UnitPrice: lineM.UnitPrice,
			Subtotal:  lineM.Subtotal,
		})
	}

	return order
}

// fromOrderDomain maps a domain entity to the persistence model.
func fromOrderDomain(order *entity.SalesOrder) *model.SalesOrderModel {
	orderM := &model.SalesOrderModel{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		OrderDate:   order.OrderDate,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	}
	for _, line := range order.Lines {
		orderM.Details = append(orderM.Details, model.SalesOrderLineModel{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return orderM
}
