package report

import (
	"sort"
	"time"

	"tally/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Aggregates holds the four independent aggregate views over one filtered
// order set, plus the rows excluded for dangling references. Group keys are
// entity ids throughout; display names come from any one member of the group.
type Aggregates struct {
	Totals     entity.ReportTotals
	Products   []entity.TopProduct      // Revenue descending, name ascending on ties.
	Customers  []entity.TopCustomer     // Spend descending, name ascending on ties.
	Categories []entity.CategoryRevenue // Revenue descending, name ascending on ties.
	Days       []entity.DailyRevenue    // Oldest day first.

	ExcludedLines  int // Lines skipped because their product no longer resolves.
	ExcludedOrders int // Orders skipped from customer grouping for a dangling customer.
}

// Aggregate computes every aggregate view in one pass over flat rows.
// Monetary sums are exact decimals; an empty input yields zero-valued totals
// and empty groups, never an absent result. Rows with dangling references
// are excluded and counted rather than emitted as null-named groups.
func Aggregate(orders []entity.OrderFact, lines []entity.LineFact) Aggregates {
	agg := Aggregates{
		Totals: entity.ReportTotals{TotalRevenue: decimal.Zero},
	}

	aggregateOrders(&agg, orders)
	aggregateLines(&agg, lines)

	return agg
}

func aggregateOrders(agg *Aggregates, orders []entity.OrderFact) {
	type customerGroup struct {
		row entity.TopCustomer
	}

	customers := make(map[int64]*customerGroup)
	days := make(map[time.Time]*entity.DailyRevenue)

	for _, order := range orders {
		agg.Totals.TotalOrders++
		agg.Totals.TotalRevenue = agg.Totals.TotalRevenue.Add(order.TotalAmount)

		switch order.Status {
		case entity.StatusCompleted:
			agg.Totals.CompletedOrders++
		case entity.StatusPending:
			agg.Totals.PendingOrders++
		case entity.StatusCancelled:
			agg.Totals.CancelledOrders++
		}

		day := calendarDay(order.OrderDate)
		bucket, ok := days[day]
		if !ok {
			bucket = &entity.DailyRevenue{Date: day, Revenue: decimal.Zero}
			days[day] = bucket
		}
		bucket.OrderCount++
		bucket.Revenue = bucket.Revenue.Add(order.TotalAmount)

		if !order.CustomerFound {
			agg.ExcludedOrders++

			continue
		}

		group, ok := customers[order.CustomerID]
		if !ok {
			group = &customerGroup{row: entity.TopCustomer{
				CustomerID: order.CustomerID,
				Name:       order.CustomerName,
				Email:      order.CustomerEmail,
				City:       order.CustomerCity,
				TotalSpent: decimal.Zero,
			}}
			customers[order.CustomerID] = group
		}
		group.row.OrderCount++
		group.row.TotalSpent = group.row.TotalSpent.Add(order.TotalAmount)
	}

	agg.Customers = make([]entity.TopCustomer, 0, len(customers))
	for _, group := range customers {
		group.row.AverageOrderValue = averageValue(group.row.TotalSpent, group.row.OrderCount)
		agg.Customers = append(agg.Customers, group.row)
	}
	sortByRevenue(agg.Customers,
		func(c entity.TopCustomer) decimal.Decimal { return c.TotalSpent },
		func(c entity.TopCustomer) string { return c.Name })

	agg.Days = make([]entity.DailyRevenue, 0, len(days))
	for _, bucket := range days {
		agg.Days = append(agg.Days, *bucket)
	}
	sort.Slice(agg.Days, func(i, j int) bool { return agg.Days[i].Date.Before(agg.Days[j].Date) })
}

func aggregateLines(agg *Aggregates, lines []entity.LineFact) {
	type productGroup struct {
		row    entity.TopProduct
		orders map[int64]struct{}
	}
	type categoryGroup struct {
		row    entity.CategoryRevenue
		orders map[int64]struct{}
	}

	products := make(map[int64]*productGroup)
	categories := make(map[int64]*categoryGroup)

	for _, line := range lines {
		if !line.ProductFound {
			agg.ExcludedLines++

			continue
		}

		product, ok := products[line.ProductID]
		if !ok {
			product = &productGroup{
				row: entity.TopProduct{
					ProductID:    line.ProductID,
					Name:         line.ProductName,
					TotalRevenue: decimal.Zero,
				},
				orders: make(map[int64]struct{}),
			}
			products[line.ProductID] = product
		}
		product.row.TotalQuantity += line.Quantity
		product.row.TotalRevenue = product.row.TotalRevenue.Add(line.Subtotal)
		product.orders[line.OrderID] = struct{}{}

		category, ok := categories[line.CategoryID]
		if !ok {
			category = &categoryGroup{
				row: entity.CategoryRevenue{
					CategoryID:   line.CategoryID,
					Name:         line.CategoryName,
					TotalRevenue: decimal.Zero,
				},
				orders: make(map[int64]struct{}),
			}
			categories[line.CategoryID] = category
		}
		category.row.TotalQuantity += line.Quantity
		category.row.TotalRevenue = category.row.TotalRevenue.Add(line.Subtotal)
		category.orders[line.OrderID] = struct{}{}
	}

	agg.Products = make([]entity.TopProduct, 0, len(products))
	for _, group := range products {
		group.row.OrderCount = len(group.orders)
		agg.Products = append(agg.Products, group.row)
	}
	sortByRevenue(agg.Products,
		func(p entity.TopProduct) decimal.Decimal { return p.TotalRevenue },
		func(p entity.TopProduct) string { return p.Name })

	agg.Categories = make([]entity.CategoryRevenue, 0, len(categories))
	for _, group := range categories {
		group.row.OrderCount = len(group.orders)
		agg.Categories = append(agg.Categories, group.row)
	}
	sortByRevenue(agg.Categories,
		func(c entity.CategoryRevenue) decimal.Decimal { return c.TotalRevenue },
		func(c entity.CategoryRevenue) string { return c.Name })
}

// calendarDay truncates a timestamp to its UTC date component at midnight
// UTC. The conversion must happen before extracting the date: drivers can
// return timestamps in the session zone, and the store buckets by the UTC
// day.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// averageValue divides spend by order count rounded to cents, defined as
// zero for an empty group.
func averageValue(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return total.DivRound(decimal.NewFromInt(int64(count)), 2)
}

func sortByRevenue[T any](rows []T, key func(T) decimal.Decimal, name func(T) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := key(rows[i]).Cmp(key(rows[j]))
		if cmp != 0 {
			return cmp > 0
		}

		return name(rows[i]) < name(rows[j])
	})
}
