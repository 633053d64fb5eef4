package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive [Start, End] window over order dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ReportTotals carries the headline figures of a sales report.
type ReportTotals struct {
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CompletedOrders int             `json:"completed_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
}

// TopProduct is one row of the product ranking: detail lines grouped by
// product id, with revenue summed from line subtotals.
type TopProduct struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	OrderCount    int             `json:"order_count"` // Distinct orders touching the product.
}

// TopCustomer is one row of the customer ranking: orders grouped by
// customer id, with spend summed from order totals.
type TopCustomer struct {
	CustomerID        int64           `json:"customer_id"`
	Name              string          `json:"name"`
	Email             string          `json:"email,omitempty"`
	City              string          `json:"city,omitempty"`
	OrderCount        int             `json:"order_count"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// CategoryRevenue is one row of the category breakdown. Categories partition
// all detail lines, so these rows sum to the report's total revenue.
type CategoryRevenue struct {
	CategoryID    int64           `json:"category_id"`
	Name          string          `json:"name"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalQuantity int64           `json:"total_quantity"`
	OrderCount    int             `json:"order_count"`
}

// DailyRevenue is one calendar day of the revenue trend. Date carries only
// the date component, at midnight UTC.
type DailyRevenue struct {
	Date       time.Time       `json:"date"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// SalesReport is the immutable result of one report request.
type SalesReport struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	CompletedOrders   int             `json:"completed_orders"`
	PendingOrders     int             `json:"pending_orders"`
	CancelledOrders   int             `json:"cancelled_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`

	TopProducts       []TopProduct      `json:"top_products"`
	TopCustomers      []TopCustomer     `json:"top_customers"`
	RevenueByCategory []CategoryRevenue `json:"revenue_by_category"`
	DailyRevenue      []DailyRevenue    `json:"daily_revenue"`

	// Partial marks a report computed with unresolvable references excluded.
	Partial       bool `json:"partial"`
	ExcludedLines int  `json:"excluded_lines,omitempty"`
}

// LowStockItem is one row of the low-stock report, most urgent first.
type LowStockItem struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	CategoryName    string          `json:"category_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	StockQuantity   int64           `json:"stock_quantity"`
	ReorderLevel    int64           `json:"reorder_level"`
	QuantityToOrder int64           `json:"quantity_to_order"`
}

// OrderFact is a flat reporting row: one order with its customer fields
// resolved by the store. CustomerFound is false when the customer reference
// dangles; such orders are excluded from customer grouping.
type OrderFact struct {
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

// LineFact is a flat reporting row: one order line joined with its order and
// product/category names. ProductFound is false when the product reference
// dangles; such lines are excluded from product and category grouping.
type LineFact struct {
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
