package report

import (
	"testing"
	"time"

	"tally/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Two orders across two months, two products in one category. The same
// fixture backs most aggregation assertions so the views can be checked for
// consistency against each other.
func fixtureFacts() ([]entity.OrderFact, []entity.LineFact) {
	jan10 := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	feb5 := time.Date(2024, 2, 5, 9, 30, 0, 0, time.UTC)

	orders := []entity.OrderFact{
		{
			OrderID: 1, OrderDate: jan10, Status: entity.StatusCompleted,
			TotalAmount: money("30.00"),
			CustomerID:  1, CustomerName: "Dana", CustomerCity: "Lisbon", CustomerFound: true,
		},
		{
			OrderID: 2, OrderDate: feb5, Status: entity.StatusPending,
			TotalAmount: money("50.00"),
			CustomerID:  2, CustomerName: "Alex", CustomerCity: "Porto", CustomerFound: true,
		},
	}
	lines := []entity.LineFact{
		{
			OrderID: 1, OrderDate: jan10, Status: entity.StatusCompleted,
			ProductID: 1, ProductName: "A", CategoryID: 1, CategoryName: "Tools",
			Quantity: 3, Subtotal: money("30.00"), ProductFound: true,
		},
		{
			OrderID: 2, OrderDate: feb5, Status: entity.StatusPending,
			ProductID: 2, ProductName: "B", CategoryID: 1, CategoryName: "Tools",
			Quantity: 1, Subtotal: money("50.00"), ProductFound: true,
		},
	}

	return orders, lines
}

func TestAggregate_Totals(t *testing.T) {
	orders, lines := fixtureFacts()

	agg := Aggregate(orders, lines)

	assert.Equal(t, 2, agg.Totals.TotalOrders)
	assert.True(t, agg.Totals.TotalRevenue.Equal(money("80.00")))
	assert.Equal(t, 1, agg.Totals.CompletedOrders)
	assert.Equal(t, 1, agg.Totals.PendingOrders)
	assert.Zero(t, agg.Totals.CancelledOrders)
}

func TestAggregate_ProductsRankedByRevenue(t *testing.T) {
	orders, lines := fixtureFacts()

	agg := Aggregate(orders, lines)

	// B earned 50.00, A earned 30.00, so B ranks first despite the lower
	// quantity.
	require.Len(t, agg.Products, 2)
	assert.Equal(t, "B", agg.Products[0].Name)
	assert.Equal(t, int64(1), agg.Products[0].TotalQuantity)
	assert.Equal(t, 1, agg.Products[0].OrderCount)
	assert.Equal(t, "A", agg.Products[1].Name)
	assert.True(t, agg.Products[1].TotalRevenue.Equal(money("30.00")))
}

func TestAggregate_TieBrokenByNameAscending(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	lines := []entity.LineFact{
		{OrderID: 1, OrderDate: jan10, ProductID: 2, ProductName: "Zinc", CategoryID: 1, CategoryName: "C", Quantity: 1, Subtotal: money("10.00"), ProductFound: true},
		{OrderID: 1, OrderDate: jan10, ProductID: 1, ProductName: "Alum", CategoryID: 1, CategoryName: "C", Quantity: 1, Subtotal: money("10.00"), ProductFound: true},
	}

	agg := Aggregate(nil, lines)

	require.Len(t, agg.Products, 2)
	assert.Equal(t, "Alum", agg.Products[0].Name)
	assert.Equal(t, "Zinc", agg.Products[1].Name)
}

func TestAggregate_CustomersAndAverage(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	orders := []entity.OrderFact{
		{OrderID: 1, OrderDate: jan10, TotalAmount: money("10.00"), CustomerID: 1, CustomerName: "Dana", CustomerFound: true},
		{OrderID: 2, OrderDate: jan10, TotalAmount: money("15.00"), CustomerID: 1, CustomerName: "Dana", CustomerFound: true},
	}

	agg := Aggregate(orders, nil)

	require.Len(t, agg.Customers, 1)
	assert.Equal(t, 2, agg.Customers[0].OrderCount)
	assert.True(t, agg.Customers[0].TotalSpent.Equal(money("25.00")))
	assert.True(t, agg.Customers[0].AverageOrderValue.Equal(money("12.50")))
}

func TestAggregate_DailyBucketsInUTC(t *testing.T) {
	// Two timestamps on the same UTC calendar day must share one bucket.
	morning := time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
	orders := []entity.OrderFact{
		{OrderID: 1, OrderDate: morning, TotalAmount: money("10.00"), CustomerID: 1, CustomerFound: true},
		{OrderID: 2, OrderDate: evening, TotalAmount: money("20.00"), CustomerID: 1, CustomerFound: true},
	}

	agg := Aggregate(orders, nil)

	require.Len(t, agg.Days, 1)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), agg.Days[0].Date)
	assert.Equal(t, 2, agg.Days[0].OrderCount)
	assert.True(t, agg.Days[0].Revenue.Equal(money("30.00")))
}

func TestAggregate_DailyBucketsConvertZonesToUTC(t *testing.T) {
	// 23:30 UTC carried in a UTC+5 location reads as 04:30 the next local
	// day; the bucket must still be the UTC calendar day.
	east := time.FixedZone("UTC+5", 5*60*60)
	lateEvening := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC).In(east)
	orders := []entity.OrderFact{
		{OrderID: 1, OrderDate: lateEvening, TotalAmount: money("10.00"), CustomerID: 1, CustomerFound: true},
	}

	agg := Aggregate(orders, nil)

	require.Len(t, agg.Days, 1)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), agg.Days[0].Date)
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := Aggregate(nil, nil)

	assert.Zero(t, agg.Totals.TotalOrders)
	assert.True(t, agg.Totals.TotalRevenue.IsZero())
	assert.Empty(t, agg.Products)
	assert.Empty(t, agg.Customers)
	assert.Empty(t, agg.Categories)
	assert.Empty(t, agg.Days)
}

func TestAggregate_ExcludesDanglingReferences(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	orders := []entity.OrderFact{
		{OrderID: 1, OrderDate: jan10, TotalAmount: money("10.00"), CustomerID: 9, CustomerFound: false},
	}
	lines := []entity.LineFact{
		{OrderID: 1, OrderDate: jan10, ProductID: 9, Quantity: 1, Subtotal: money("10.00"), ProductFound: false},
	}

	agg := Aggregate(orders, lines)

	// The order still counts toward totals and the daily trend, but neither
	// grouping emits a row for a dangling reference.
	assert.Equal(t, 1, agg.Totals.TotalOrders)
	require.Len(t, agg.Days, 1)
	assert.Empty(t, agg.Customers)
	assert.Empty(t, agg.Products)
	assert.Equal(t, 1, agg.ExcludedOrders)
	assert.Equal(t, 1, agg.ExcludedLines)
}

func TestAggregate_CategoryRowsPartitionRevenue(t *testing.T) {
	orders, lines := fixtureFacts()

	agg := Aggregate(orders, lines)

	sum := decimal.Zero
	for _, row := range agg.Categories {
		sum = sum.Add(row.TotalRevenue)
	}
	assert.True(t, sum.Equal(agg.Totals.TotalRevenue))
}
