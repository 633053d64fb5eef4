package report

import (
	"testing"

	"tally/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityToOrder(t *testing.T) {
	tests := []struct {
		name    string
		stock   int64
		reorder int64
		want    int64
	}{
		{name: "empty stock", stock: 0, reorder: 10, want: 20},
		{name: "partial stock", stock: 5, reorder: 10, want: 15},
		{name: "at threshold", stock: 10, reorder: 10, want: 10},
		{name: "floored at one", stock: 10, reorder: 5, want: 1},
		{name: "zero reorder level", stock: 0, reorder: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuantityToOrder(tt.stock, tt.reorder))
		})
	}
}

func TestLowStock_SelectsAndSorts(t *testing.T) {
	price := money("2.50")
	products := []*entity.Product{
		{ID: 1, Name: "Nuts", CategoryID: 1, UnitPrice: price, StockQuantity: 5, ReorderLevel: 10, IsActive: true},
		{ID: 2, Name: "Bolts", CategoryID: 1, UnitPrice: price, StockQuantity: 0, ReorderLevel: 10, IsActive: true},
		{ID: 3, Name: "Washers", CategoryID: 1, UnitPrice: price, StockQuantity: 50, ReorderLevel: 10, IsActive: true},
		{ID: 4, Name: "Anchors", CategoryID: 1, UnitPrice: price, StockQuantity: 0, ReorderLevel: 10, IsActive: false},
	}
	names := map[int64]string{1: "Fasteners"}

	items := LowStock(products, names)

	// The inactive product and the well-stocked one are skipped; the rest
	// sort by stock ascending.
	require.Len(t, items, 2)
	assert.Equal(t, "Bolts", items[0].Name)
	assert.Equal(t, "Nuts", items[1].Name)
	assert.Equal(t, "Fasteners", items[0].CategoryName)
	assert.Equal(t, int64(20), items[0].QuantityToOrder)
}

func TestLowStock_TieBrokenByNameAscending(t *testing.T) {
	price := money("1.00")
	products := []*entity.Product{
		{ID: 1, Name: "Zinc", StockQuantity: 2, ReorderLevel: 10, IsActive: true},
		{ID: 2, Name: "Alum", StockQuantity: 2, ReorderLevel: 10, IsActive: true},
	}
	products[0].UnitPrice = price
	products[1].UnitPrice = price

	items := LowStock(products, nil)

	require.Len(t, items, 2)
	assert.Equal(t, "Alum", items[0].Name)
	assert.Equal(t, "Zinc", items[1].Name)
}

func TestLowStock_BoundaryAtReorderLevel(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "At", UnitPrice: money("1.00"), StockQuantity: 10, ReorderLevel: 10, IsActive: true},
		{ID: 2, Name: "Above", UnitPrice: money("1.00"), StockQuantity: 11, ReorderLevel: 10, IsActive: true},
	}

	items := LowStock(products, nil)

	// At the threshold qualifies; one above does not.
	require.Len(t, items, 1)
	assert.Equal(t, "At", items[0].Name)
}
