// Package admin implements the back office API handlers.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/tavolaworks/trattoria-manager/internal/analytics"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

// Server implements handlers for the back office.
type Server struct {
	repo dependency.Repository
}

// New creates a new server with admin handlers.
func New(r dependency.Repository) *Server {
	return &Server{
		repo: r,
	}
}

// ORDERS

// ListOrders returns orders newest first, optionally filtered by status name.
func (s *Server) ListOrders(ctx context.Context, status entity.OrderStatusName, limit, offset int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	statusId := 0
	if status != "" {
		os, ok := s.repo.Cache().GetOrderStatusByName(status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown order status %s", gerr.ErrValidation, status)
		}
		statusId = os.ID
	}

	orders, err := s.repo.Orders().GetOrdersPaged(ctx, statusId, limit, offset)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list orders",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the full order with items and customer.
func (s *Server) GetOrder(ctx context.Context, orderUUID string) (*entity.OrderFull, error) {
	return s.repo.Orders().GetOrderFullByUUID(ctx, orderUUID)
}

// UpdateOrderStatus moves an order along the allowed status transitions.
func (s *Server) UpdateOrderStatus(ctx context.Context, orderUUID string, status entity.OrderStatusName) (*entity.Order, error) {
	if !entity.ValidOrderStatusNames[status] {
		return nil, fmt.Errorf("%w: unknown order status %s", gerr.ErrValidation, status)
	}

	o, err := s.repo.Orders().UpdateOrderStatus(ctx, orderUUID, status)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't update order status",
			slog.String("err", err.Error()),
			slog.String("uuid", orderUUID),
		)
		return nil, err
	}
	return o, nil
}

// MENU

// AddMenuItem creates a menu item and returns its id.
func (s *Server) AddMenuItem(ctx context.Context, mi *entity.MenuItemInsert) (int, error) {
	if _, err := v.ValidateStruct(mi); err != nil {
		return 0, fmt.Errorf("%w: %v", gerr.ErrValidation, err)
	}
	if mi.Price.IsNegative() {
		return 0, fmt.Errorf("%w: price must not be negative", gerr.ErrValidation)
	}
	return s.repo.Menu().AddMenuItem(ctx, mi)
}

// UpdateMenuItem replaces a menu item in place.
func (s *Server) UpdateMenuItem(ctx context.Context, id int, mi *entity.MenuItemInsert) error {
	if _, err := v.ValidateStruct(mi); err != nil {
		return fmt.Errorf("%w: %v", gerr.ErrValidation, err)
	}
	if mi.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", gerr.ErrValidation)
	}
	return s.repo.Menu().UpdateMenuItem(ctx, id, mi)
}

// DeleteMenuItem removes a menu item.
func (s *Server) DeleteMenuItem(ctx context.Context, id int) error {
	return s.repo.Menu().DeleteMenuItemById(ctx, id)
}

// GetMenu returns the whole menu including items hidden from the public.
func (s *Server) GetMenu(ctx context.Context) ([]entity.MenuItem, error) {
	return s.repo.Menu().GetMenuItems(ctx, true)
}

// CUSTOMERS

// ListCustomers returns the customer roster.
func (s *Server) ListCustomers(ctx context.Context, limit, offset int) ([]entity.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.Customers().GetCustomersPaged(ctx, limit, offset)
}

// HISTORICAL SALES

// UpsertHistoricalSale imports or replaces one month of pre-tracking revenue.
func (s *Server) UpsertHistoricalSale(ctx context.Context, sale *entity.HistoricalSale) error {
	if sale.Revenue.IsNegative() {
		return fmt.Errorf("%w: revenue must not be negative", gerr.ErrValidation)
	}
	return s.repo.Sales().UpsertHistoricalSale(ctx, sale)
}

// GetHistoricalSales returns all imported months, oldest first.
func (s *Server) GetHistoricalSales(ctx context.Context) ([]entity.HistoricalSale, error) {
	return s.repo.Sales().GetHistoricalSales(ctx)
}

// ANALYTICS

// DashboardResponse is the analytics summary plus the stable color palette
// the charts are drawn with.
type DashboardResponse struct {
	analytics.Summary
	ChartPalette []string `json:"chartPalette"`
}

// GetDashboard loads the full data snapshot and computes the dashboard
// summary. rangeDays limits live orders to the trailing window; nil means
// all time.
func (s *Server) GetDashboard(ctx context.Context, rangeDays *int) (*DashboardResponse, error) {
	orders, err := s.repo.Orders().GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	items, err := s.repo.Orders().GetAllOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}
	sales, err := s.repo.Sales().GetHistoricalSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get historical sales: %w", err)
	}
	customers, err := s.repo.Customers().GetAllCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get customers: %w", err)
	}

	summary := analytics.Compute(analytics.Input{
		Orders:          orders,
		OrderItems:      items,
		HistoricalSales: sales,
		Customers:       customers,
	}, rangeDays, s.repo.Now())

	return &DashboardResponse{
		Summary:      summary,
		ChartPalette: analytics.ChartPalette[:],
	}, nil
}
