package report

import (
	"tally/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Assemble composes one immutable report from an aggregate set. The average
// order value is guarded against zero orders, the top-N views are truncated
// rankings of the product and customer aggregates, and the category
// breakdown stays complete so its revenue always partitions the total.
func Assemble(dateRange entity.DateRange, agg Aggregates, topN int) entity.SalesReport {
	topProducts := TopN(agg.Products, topN,
		func(p entity.TopProduct) decimal.Decimal { return p.TotalRevenue },
		func(p entity.TopProduct) string { return p.Name })

	topCustomers := TopN(agg.Customers, topN,
		func(c entity.TopCustomer) decimal.Decimal { return c.TotalSpent },
		func(c entity.TopCustomer) string { return c.Name })

	excluded := agg.ExcludedLines + agg.ExcludedOrders

	return entity.SalesReport{
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,

		TotalOrders:       agg.Totals.TotalOrders,
		TotalRevenue:      agg.Totals.TotalRevenue,
		CompletedOrders:   agg.Totals.CompletedOrders,
		PendingOrders:     agg.Totals.PendingOrders,
		CancelledOrders:   agg.Totals.CancelledOrders,
		AverageOrderValue: averageValue(agg.Totals.TotalRevenue, agg.Totals.TotalOrders),

		TopProducts:       topProducts,
		TopCustomers:      topCustomers,
		RevenueByCategory: agg.Categories,
		DailyRevenue:      agg.Days,

		Partial:       excluded > 0,
		ExcludedLines: excluded,
	}
}
