package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tally/internal/delivery/http/response"
	"tally/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for report-related handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GetSalesReport handles GET /reports/sales?start_date=&end_date=.
// Both bounds are optional; dates are inclusive calendar days.
func (h *ReportHandler) GetSalesReport(c echo.Context) error {
	query := usecase.ReportQuery{}

	start, err := parseDateParam(c.QueryParam("start_date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "start_date must be formatted as YYYY-MM-DD")
	}
	query.StartDate = start

	end, err := parseDateParam(c.QueryParam("end_date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "end_date must be formatted as YYYY-MM-DD")
	}
	query.EndDate = end

	report, err := h.reportUC.GenerateSalesReport(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report, "Sales report generated")
}

// GetLowStockReport handles GET /reports/low-stock.
func (h *ReportHandler) GetLowStockReport(c echo.Context) error {
	items, err := h.reportUC.GetLowStockReport(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items, "Low stock report generated")
}

// parseDateParam parses an optional YYYY-MM-DD query parameter as midnight UTC.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
