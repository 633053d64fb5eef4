package handler

import (
	"log/slog"
	"net/http"

	"tally/internal/delivery/http/response"
	"tally/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder handles POST /orders.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// GetOrderDetails handles GET /orders/:id.
func (h *OrderHandler) GetOrderDetails(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Order id must be a positive integer")
	}

	details, err := h.orderUC.GetOrderDetails(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, details, "")
}

// ListOrders handles GET /orders?start_date=&end_date=&status=.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	query := usecase.OrderListQuery{
		Status: c.QueryParam("status"),
	}

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

	orders, err := h.orderUC.ListOrders(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Order id must be a positive integer")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

// DeleteOrder handles DELETE /orders/:id.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Order id must be a positive integer")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}
