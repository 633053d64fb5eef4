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
	"go.uber.org/fx"
)

// scanReportService is the full-materialization reporting implementation:
// it loads every flat order and line row in range and aggregates in memory
// through the pure reporting core. Memory grows with order volume, so it
// serves as the reference implementation and differential-test oracle for
// the pushdown path rather than as the production default.
type scanReportService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	config       *config.Config
	logger       *slog.Logger
}

// ScanReportServiceParams holds dependencies for ScanReportService, injected by Fx.
type ScanReportServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewScanReportService creates a new in-memory report service instance
func NewScanReportService(params ScanReportServiceParams) usecase.ReportUsecase {
	return &scanReportService{
		orderRepo:    params.OrderRepo,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// GenerateSalesReport materializes the order set for the range and runs the
// in-memory aggregation. Must produce the same report as the pushdown path
// for any store state.
func (s *scanReportService) GenerateSalesReport(ctx context.Context, query usecase.ReportQuery) (*entity.SalesReport, error) {
	dateRange, err := report.NormalizeRange(query.StartDate, query.EndDate, time.Now().UTC(), s.config.Report.DefaultRangeDays)
	if err != nil {
		return nil, err
	}

	// Materializing every row in range is the one latency risk of this
	// strategy, so the store reads carry an explicit deadline.
	ctx, cancel := context.WithTimeout(ctx, s.config.Store.QueryTimeout)
	defer cancel()

	orderFacts, err := s.orderRepo.FindOrderFacts(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order facts")
	}

	lineFacts, err := s.orderRepo.FindLineFacts(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load line facts")
	}

	agg := report.Aggregate(orderFacts, lineFacts)
	if agg.ExcludedLines > 0 || agg.ExcludedOrders > 0 {
		s.logger.WarnContext(ctx, "report computed with unresolved references",
			slog.Int("excludedLines", agg.ExcludedLines),
			slog.Int("excludedOrders", agg.ExcludedOrders))
	}

	result := report.Assemble(dateRange, agg, s.config.Report.TopN)

	return &result, nil
}

// GetLowStockReport evaluates the low-stock predicate over the active
// product set in memory.
func (s *scanReportService) GetLowStockReport(ctx context.Context) ([]entity.LowStockItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Store.QueryTimeout)
	defer cancel()

	products, err := s.productRepo.FindAllActiveProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active products")
	}

	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	categoryNames := make(map[int64]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	return report.LowStock(products, categoryNames), nil
}
