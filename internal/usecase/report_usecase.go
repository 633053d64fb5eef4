// Package usecase defines the application-facing interfaces and their
// input shapes.
package usecase

import (
	"context"
	"time"

	"tally/internal/domain/entity"
)

// ReportQuery carries the optional bounds of a report request. A missing end
// defaults to now, a missing start to the configured window before the end.
type ReportQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ReportUsecase generates analytical reports over the order history and the
// product catalog. Implementations are read-only and stateless between
// invocations; concurrent requests are safe.
type ReportUsecase interface {
	// GenerateSalesReport computes the full sales report for the query range.
	GenerateSalesReport(ctx context.Context, query ReportQuery) (*entity.SalesReport, error)

	// GetLowStockReport lists active products at or below their reorder
	// level, most urgent first.
	GetLowStockReport(ctx context.Context) ([]entity.LowStockItem, error)
}
