package postgres

import (
	"context"
	"log/slog"
	"time"

	"tally/config"
	"tally/internal/domain/entity"
	"tally/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// reportingRepository implements the repository.ReportingRepository
// interface. Every method is a single aggregate query evaluated by the
// store, so result size scales with group counts rather than order volume.
// All methods are read-only, which makes the retry policy safe to apply.
type reportingRepository struct {
	db    *gorm.DB
	retry *retryPolicy
}

// ReportingParams defines the required parameters
type ReportingParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// NewReportingRepository is the constructor for reportingRepository.
func NewReportingRepository(params ReportingParams) repository.ReportingRepository {
	return &reportingRepository{
		db:    params.DB,
		retry: newRetryPolicy(params.Config.Retry, params.Logger),
	}
}

type orderTotalsRow struct {
	TotalOrders     int
	TotalRevenue    decimal.Decimal
	CompletedOrders int
	PendingOrders   int
	CancelledOrders int
}

// OrderTotals returns the headline counters for the range. Every order in
// range counts toward the totals; only the three canonical statuses get
// dedicated counters.
func (repo *reportingRepository) OrderTotals(ctx context.Context, dateRange entity.DateRange) (entity.ReportTotals, error) {
	var row orderTotalsRow

	err := repo.retry.do(ctx, "order totals", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT COUNT(*) AS total_orders,
			       COALESCE(SUM(total_amount), 0) AS total_revenue,
			       COUNT(*) FILTER (WHERE status = ?) AS completed_orders,
			       COUNT(*) FILTER (WHERE status = ?) AS pending_orders,
			       COUNT(*) FILTER (WHERE status = ?) AS cancelled_orders
			FROM sales_orders
			WHERE order_date BETWEEN ? AND ?`,
			entity.StatusCompleted, entity.StatusPending, entity.StatusCancelled,
			dateRange.Start, dateRange.End).
			Scan(&row).Error
	})
	if err != nil {
		return entity.ReportTotals{}, errors.Wrap(err, "failed to compute order totals")
	}

	return entity.ReportTotals{
		TotalOrders:     row.TotalOrders,
		TotalRevenue:    row.TotalRevenue,
		CompletedOrders: row.CompletedOrders,
		PendingOrders:   row.PendingOrders,
		CancelledOrders: row.CancelledOrders,
	}, nil
}

// TopProducts ranks products by revenue descending, ties broken by name
// ascending. Lines whose product no longer resolves never enter the
// grouping; UnresolvedLines counts them separately.
func (repo *reportingRepository) TopProducts(ctx context.Context, dateRange entity.DateRange, limit int) ([]entity.TopProduct, error) {
	var rows []entity.TopProduct

	err := repo.retry.do(ctx, "top products", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT p.id AS product_id,
			       p.name,
			       SUM(d.quantity) AS total_quantity,
			       SUM(d.subtotal) AS total_revenue,
			       COUNT(DISTINCT d.order_id) AS order_count
			FROM sales_order_details d
			JOIN sales_orders o ON o.id = d.order_id
			JOIN products p ON p.id = d.product_id
			WHERE o.order_date BETWEEN ? AND ?
			GROUP BY p.id, p.name
			ORDER BY total_revenue DESC, p.name ASC
			LIMIT ?`, dateRange.Start, dateRange.End, limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	return rows, nil
}

// TopCustomers ranks customers by spend descending, ties broken by name
// ascending. The average is rounded to cents, matching the in-memory path.
func (repo *reportingRepository) TopCustomers(ctx context.Context, dateRange entity.DateRange, limit int) ([]entity.TopCustomer, error) {
	var rows []entity.TopCustomer

	err := repo.retry.do(ctx, "top customers", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT cu.id AS customer_id,
			       cu.name,
			       cu.email,
			       cu.city,
			       COUNT(*) AS order_count,
			       SUM(o.total_amount) AS total_spent,
			       ROUND(SUM(o.total_amount) / COUNT(*), 2) AS average_order_value
			FROM sales_orders o
			JOIN customers cu ON cu.id = o.customer_id
			WHERE o.order_date BETWEEN ? AND ?
			GROUP BY cu.id, cu.name, cu.email, cu.city
			ORDER BY total_spent DESC, cu.name ASC
			LIMIT ?`, dateRange.Start, dateRange.End, limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank customers")
	}

	return rows, nil
}

// RevenueByCategory returns the complete category breakdown, revenue
// descending. Not truncated; the rows partition the resolvable revenue.
func (repo *reportingRepository) RevenueByCategory(ctx context.Context, dateRange entity.DateRange) ([]entity.CategoryRevenue, error) {
	var rows []entity.CategoryRevenue

	err := repo.retry.do(ctx, "revenue by category", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT c.id AS category_id,
			       c.name,
			       SUM(d.subtotal) AS total_revenue,
			       SUM(d.quantity) AS total_quantity,
			       COUNT(DISTINCT d.order_id) AS order_count
			FROM sales_order_details d
			JOIN sales_orders o ON o.id = d.order_id
			JOIN products p ON p.id = d.product_id
			JOIN categories c ON c.id = p.category_id
			WHERE o.order_date BETWEEN ? AND ?
			GROUP BY c.id, c.name
			ORDER BY total_revenue DESC, c.name ASC`, dateRange.Start, dateRange.End).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to break revenue down by category")
	}

	return rows, nil
}

type dailyRevenueRow struct {
	Day        time.Time
	OrderCount int
	Revenue    decimal.Decimal
}

// DailyRevenue returns the per-calendar-day trend, oldest first. Days are
// bucketed in UTC to match the in-memory path.
func (repo *reportingRepository) DailyRevenue(ctx context.Context, dateRange entity.DateRange) ([]entity.DailyRevenue, error) {
	var rows []dailyRevenueRow

	err := repo.retry.do(ctx, "daily revenue", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT (order_date AT TIME ZONE 'UTC')::date AS day,
			       COUNT(*) AS order_count,
			       SUM(total_amount) AS revenue
			FROM sales_orders
			WHERE order_date BETWEEN ? AND ?
			GROUP BY day
			ORDER BY day ASC`, dateRange.Start, dateRange.End).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute daily revenue")
	}

	trend := make([]entity.DailyRevenue, 0, len(rows))
	for _, row := range rows {
		trend = append(trend, entity.DailyRevenue{
			Date:       time.Date(row.Day.Year(), row.Day.Month(), row.Day.Day(), 0, 0, 0, 0, time.UTC),
			OrderCount: row.OrderCount,
			Revenue:    row.Revenue,
		})
	}

	return trend, nil
}

// UnresolvedLines counts order lines in the range whose product no longer
// resolves. A non-zero count marks the report as partial.
func (repo *reportingRepository) UnresolvedLines(ctx context.Context, dateRange entity.DateRange) (int, error) {
	var count int

	err := repo.retry.do(ctx, "unresolved lines", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM sales_order_details d
			JOIN sales_orders o ON o.id = d.order_id
			LEFT JOIN products p ON p.id = d.product_id
			WHERE o.order_date BETWEEN ? AND ?
			  AND p.id IS NULL`, dateRange.Start, dateRange.End).
			Scan(&count).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unresolved lines")
	}

	return count, nil
}

// UnresolvedOrders counts orders in the range whose customer no longer
// resolves. Mirrors the in-memory exclusion from the customer grouping.
func (repo *reportingRepository) UnresolvedOrders(ctx context.Context, dateRange entity.DateRange) (int, error) {
	var count int

	err := repo.retry.do(ctx, "unresolved orders", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM sales_orders o
			LEFT JOIN customers cu ON cu.id = o.customer_id
			WHERE o.order_date BETWEEN ? AND ?
			  AND cu.id IS NULL`, dateRange.Start, dateRange.End).
			Scan(&count).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unresolved orders")
	}

	return count, nil
}

// LowStock returns active products at or below their reorder level, most
// urgent first. The suggested quantity restores twice the reorder level,
// never less than one unit.
func (repo *reportingRepository) LowStock(ctx context.Context) ([]entity.LowStockItem, error) {
	var rows []entity.LowStockItem

	err := repo.retry.do(ctx, "low stock", func() error {
		return repo.db.WithContext(ctx).Raw(`
			SELECT p.id AS product_id,
			       p.name,
			       COALESCE(c.name, '') AS category_name,
			       p.unit_price,
			       p.stock_quantity,
			       p.reorder_level,
			       GREATEST(p.reorder_level * 2 - p.stock_quantity, 1) AS quantity_to_order
			FROM products p
			LEFT JOIN categories c ON c.id = p.category_id
			WHERE p.is_active = TRUE
			  AND p.stock_quantity <= p.reorder_level
			ORDER BY p.stock_quantity ASC, p.name ASC`).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	return rows, nil
}
