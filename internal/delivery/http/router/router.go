// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tally/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReportHandler   *handler.ReportHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	CustomerHandler *handler.CustomerHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	reportHandler   *handler.ReportHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	customerHandler *handler.CustomerHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reportHandler:   params.ReportHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		customerHandler: params.CustomerHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	reportGroup := e.Group("/reports")
	{
		reportGroup.GET("/sales", r.reportHandler.GetSalesReport)
		reportGroup.GET("/low-stock", r.reportHandler.GetLowStockReport)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.POST("", r.categoryHandler.CreateCategory)
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoryGroup.PUT("/:id", r.categoryHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	customerGroup := e.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.CreateCustomer)
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.GET("/:id", r.customerHandler.GetCustomer)
		customerGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customerGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrderDetails)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}
}
