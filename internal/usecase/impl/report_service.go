// Package impl provides the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"tally/config"
	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
	"tally/internal/report"
	"tally/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// reportService is the pushdown reporting implementation. Every aggregate is
// one query evaluated by the store, so memory stays proportional to group
// counts regardless of how many orders the range covers. This is the
// production default.
type reportService struct {
	reportingRepo repository.ReportingRepository
	config        *config.Config
	logger        *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportingRepo repository.ReportingRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReportService creates a new pushdown report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportingRepo: params.ReportingRepo,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// GenerateSalesReport computes the full sales report for the query range
// with every aggregate pushed to the store.
func (s *reportService) GenerateSalesReport(ctx context.Context, query usecase.ReportQuery) (*entity.SalesReport, error) {
	dateRange, err := report.NormalizeRange(query.StartDate, query.EndDate, time.Now().UTC(), s.config.Report.DefaultRangeDays)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.OrderTotals(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order totals")
	}

	topProducts, err := s.reportingRepo.TopProducts(ctx, dateRange, s.config.Report.TopN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	topCustomers, err := s.reportingRepo.TopCustomers(ctx, dateRange, s.config.Report.TopN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank customers")
	}

	byCategory, err := s.reportingRepo.RevenueByCategory(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to break revenue down by category")
	}

	daily, err := s.reportingRepo.DailyRevenue(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute daily revenue")
	}

	unresolvedLines, err := s.reportingRepo.UnresolvedLines(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unresolved lines")
	}

	unresolvedOrders, err := s.reportingRepo.UnresolvedOrders(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unresolved orders")
	}

	unresolved := unresolvedLines + unresolvedOrders
	if unresolved > 0 {
		s.logger.WarnContext(ctx, "report computed with unresolved references",
			slog.Int("excludedLines", unresolvedLines),
			slog.Int("excludedOrders", unresolvedOrders))
	}

	averageOrderValue := decimal.Zero
	if totals.TotalOrders > 0 {
		averageOrderValue = totals.TotalRevenue.DivRound(decimal.NewFromInt(int64(totals.TotalOrders)), 2)
	}

	return &entity.SalesReport{
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,

		TotalOrders:       totals.TotalOrders,
		TotalRevenue:      totals.TotalRevenue,
		CompletedOrders:   totals.CompletedOrders,
		PendingOrders:     totals.PendingOrders,
		CancelledOrders:   totals.CancelledOrders,
		AverageOrderValue: averageOrderValue,

		TopProducts:       topProducts,
		TopCustomers:      topCustomers,
		RevenueByCategory: byCategory,
		DailyRevenue:      daily,

		Partial:       unresolved > 0,
		ExcludedLines: unresolved,
	}, nil
}

// GetLowStockReport lists active products at or below their reorder level,
// most urgent first.
func (s *reportService) GetLowStockReport(ctx context.Context) ([]entity.LowStockItem, error) {
	items, err := s.reportingRepo.LowStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	return items, nil
}
