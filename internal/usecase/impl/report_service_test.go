package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tally/config"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Report = &config.ReportConfig{Strategy: "pushdown", TopN: 10, DefaultRangeDays: 30}
	cfg.Store = &config.StoreConfig{QueryTimeout: time.Second}

	return cfg
}

func newTestReportService(repo *fakeReportingRepo) usecase.ReportUsecase {
	return NewReportService(ReportServiceParams{
		ReportingRepo: repo,
		Config:        testConfig(),
		Logger:        slog.Default(),
	})
}

func TestReportService_GenerateSalesReport(t *testing.T) {
	repo := &fakeReportingRepo{
		totals: entity.ReportTotals{
			TotalOrders:     2,
			TotalRevenue:    decimal.RequireFromString("80.00"),
			CompletedOrders: 1,
			PendingOrders:   1,
		},
		products: []entity.TopProduct{
			{ProductID: 2, Name: "B", TotalQuantity: 1, TotalRevenue: decimal.RequireFromString("50.00"), OrderCount: 1},
			{ProductID: 1, Name: "A", TotalQuantity: 3, TotalRevenue: decimal.RequireFromString("30.00"), OrderCount: 1},
		},
	}
	service := newTestReportService(repo)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	got, err := service.GenerateSalesReport(context.Background(), usecase.ReportQuery{StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalOrders)
	assert.True(t, got.TotalRevenue.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, got.AverageOrderValue.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, start, got.StartDate)
	assert.Equal(t, end, got.EndDate)
	assert.False(t, got.Partial)

	require.Len(t, got.TopProducts, 2)
	assert.Equal(t, "B", got.TopProducts[0].Name)
	assert.Equal(t, "A", got.TopProducts[1].Name)

	// The configured limit reaches the store queries.
	assert.Equal(t, []int{10, 10}, repo.seenLimits)
}

func TestReportService_GenerateSalesReport_EmptyRange(t *testing.T) {
	repo := &fakeReportingRepo{
		totals: entity.ReportTotals{TotalRevenue: decimal.Zero},
	}
	service := newTestReportService(repo)

	got, err := service.GenerateSalesReport(context.Background(), usecase.ReportQuery{})
	require.NoError(t, err)

	assert.Zero(t, got.TotalOrders)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.True(t, got.AverageOrderValue.IsZero(), "average must be defined as zero for an empty range")
	assert.Empty(t, got.TopProducts)
}

func TestReportService_GenerateSalesReport_DefaultWindow(t *testing.T) {
	repo := &fakeReportingRepo{}
	service := newTestReportService(repo)

	_, err := service.GenerateSalesReport(context.Background(), usecase.ReportQuery{})
	require.NoError(t, err)

	require.Len(t, repo.seenRanges, 1)
	window := repo.seenRanges[0].End.Sub(repo.seenRanges[0].Start)
	assert.Equal(t, 30*24*time.Hour, window)
}

func TestReportService_GenerateSalesReport_RejectsReversedRange(t *testing.T) {
	service := newTestReportService(&fakeReportingRepo{})

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.GenerateSalesReport(context.Background(), usecase.ReportQuery{StartDate: &start, EndDate: &end})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRange.ErrorCode(), appErr.ErrorCode())
}

func TestReportService_GenerateSalesReport_PartialOnUnresolvedLines(t *testing.T) {
	repo := &fakeReportingRepo{unresolved: 3}
	service := newTestReportService(repo)

	got, err := service.GenerateSalesReport(context.Background(), usecase.ReportQuery{})
	require.NoError(t, err)

	assert.True(t, got.Partial)
	assert.Equal(t, 3, got.ExcludedLines)
}

func TestReportService_GenerateSalesReport_PartialOnUnresolvedCustomers(t *testing.T) {
	// An order whose customer was deleted leaves the customer grouping but
	// stays in the totals; the report must flag it just like the in-memory
	// aggregation does.
	repo := &fakeReportingRepo{unresolvedOrders: 2}
	service := newTestReportService(repo)

	got, err := service.GenerateSalesReport(context.Background(), usecase.ReportQuery{})
	require.NoError(t, err)

	assert.True(t, got.Partial)
	assert.Equal(t, 2, got.ExcludedLines)
}

func TestReportService_GetLowStockReport(t *testing.T) {
	repo := &fakeReportingRepo{
		lowStock: []entity.LowStockItem{
			{ProductID: 1, Name: "Bolts", StockQuantity: 0, ReorderLevel: 10, QuantityToOrder: 20},
			{ProductID: 2, Name: "Nuts", StockQuantity: 5, ReorderLevel: 10, QuantityToOrder: 15},
		},
	}
	service := newTestReportService(repo)

	items, err := service.GetLowStockReport(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bolts", items[0].Name)
}
