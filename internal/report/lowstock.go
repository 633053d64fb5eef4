package report

import (
	"sort"

	"tally/internal/domain/entity"
)

// minReorderQuantity keeps the suggestion meaningful even when stock sits
// exactly at the threshold.
const minReorderQuantity = 1

// QuantityToOrder suggests how much to reorder: restock to twice the reorder
// level so the product does not immediately reappear in the report, floored
// at minReorderQuantity.
func QuantityToOrder(stockQuantity, reorderLevel int64) int64 {
	quantity := reorderLevel*2 - stockQuantity
	if quantity < minReorderQuantity {
		quantity = minReorderQuantity
	}

	return quantity
}

// LowStock selects active products at or below their reorder level and
// orders them by stock ascending (most urgent first), name ascending on
// ties. categoryNames resolves category ids to display names; an unknown
// category yields an empty name rather than dropping the product, since the
// urgency signal matters more than the label.
func LowStock(products []*entity.Product, categoryNames map[int64]string) []entity.LowStockItem {
	items := make([]entity.LowStockItem, 0)
	for _, product := range products {
		if !product.NeedsRestock() {
			continue
		}

		items = append(items, entity.LowStockItem{
			ProductID:       product.ID,
			Name:            product.Name,
			CategoryName:    categoryNames[product.CategoryID],
			UnitPrice:       product.UnitPrice,
			StockQuantity:   product.StockQuantity,
			ReorderLevel:    product.ReorderLevel,
			QuantityToOrder: QuantityToOrder(product.StockQuantity, product.ReorderLevel),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].StockQuantity != items[j].StockQuantity {
			return items[i].StockQuantity < items[j].StockQuantity
		}

		return items[i].Name < items[j].Name
	})

	return items
}
