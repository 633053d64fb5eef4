package repository

import (
	"context"

	"tally/internal/domain/entity"
)

// ReportingRepository is the pushdown reporting boundary: every method maps
// to a single aggregate query evaluated by the store, so result size scales
// with group counts rather than with order volume. All methods are read-only
// and safe to retry.
type ReportingRepository interface {
	// OrderTotals returns order count, revenue, and the three canonical
	// status counts for the range.
	OrderTotals(ctx context.Context, dateRange entity.DateRange) (entity.ReportTotals, error)

	// TopProducts ranks products by revenue descending, ties broken by name
	// ascending, truncated to limit.
	TopProducts(ctx context.Context, dateRange entity.DateRange, limit int) ([]entity.TopProduct, error)

	// TopCustomers ranks customers by spend descending, ties broken by name
	// ascending, truncated to limit.
	TopCustomers(ctx context.Context, dateRange entity.DateRange, limit int) ([]entity.TopCustomer, error)

	// RevenueByCategory returns the full category breakdown (not top-N),
	// revenue descending.
	RevenueByCategory(ctx context.Context, dateRange entity.DateRange) ([]entity.CategoryRevenue, error)

	// DailyRevenue returns the per-calendar-day trend, oldest first.
	DailyRevenue(ctx context.Context, dateRange entity.DateRange) ([]entity.DailyRevenue, error)

	// UnresolvedLines counts order lines in the range whose product no
	// longer resolves. A non-zero count marks the report as partial.
	UnresolvedLines(ctx context.Context, dateRange entity.DateRange) (int, error)

	// UnresolvedOrders counts orders in the range whose customer no longer
	// resolves. Such orders still count toward totals but are excluded from
	// the customer grouping, so they flag the report as partial too.
	UnresolvedOrders(ctx context.Context, dateRange entity.DateRange) (int, error)

	// LowStock returns active products at or below their reorder level,
	// most urgent first. Ignores date ranges; point-in-time catalog query.
	LowStock(ctx context.Context) ([]entity.LowStockItem, error)
}
