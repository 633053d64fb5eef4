package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Stock levels never go negative; backorders are
// not part of this domain.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`           // Required, at most 200 characters.
	CategoryID    int64           `json:"category_id"`    // Must reference an existing category.
	UnitPrice     decimal.Decimal `json:"unit_price"`     // Current list price, two decimal places.
	StockQuantity int64           `json:"stock_quantity"` // On-hand quantity, >= 0.
	ReorderLevel  int64           `json:"reorder_level"`  // Stock threshold at or below which restocking is due.
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NeedsRestock reports whether the product is at or below its reorder level.
// Inactive products are never restocked.
func (p *Product) NeedsRestock() bool {
	return p.IsActive && p.StockQuantity <= p.ReorderLevel
}
