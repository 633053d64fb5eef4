package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical order statuses. The status field is an open string set; only
// these three get dedicated counters in reports.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// SalesOrder is an order header. TotalAmount is derived at creation time as
// the sum of line subtotals and is the figure reports trust; it is never
// recomputed during aggregation.
type SalesOrder struct {
	ID          int64            `json:"id"`
	OrderNumber string           `json:"order_number"` // Unique, generated at creation, at most 50 characters.
	CustomerID  int64            `json:"customer_id"`
	OrderDate   time.Time        `json:"order_date"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	Lines       []SalesOrderLine `json:"lines,omitempty"`
}

// SalesOrderLine is one line of an order. UnitPrice is a snapshot of the
// product's price at order time and must not be assumed equal to the
// product's current price. Subtotal = UnitPrice * Quantity.
type SalesOrderLine struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"` // > 0.
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderListItem is a read model for the order listing: one row per order with
// its customer and line count resolved by the store.
type OrderListItem struct {
	OrderID      int64           `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email,omitempty"`
	OrderDate    time.Time       `json:"order_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	ItemCount    int64           `json:"item_count"`
}

// OrderDetails is a read model for a single order with every line joined to
// its product and category names.
type OrderDetails struct {
	Order    SalesOrder      `json:"order"`
	Customer Customer        `json:"customer"`
	Items    []OrderItemView `json:"items"`
}

// OrderItemView is one detail line with display names resolved.
type OrderItemView struct {
	LineID       int64           `json:"line_id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}
