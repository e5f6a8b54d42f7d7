package admin

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tavolaworks/trattoria-manager/internal/dependency/mocks"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewRepository(t)
	orders := mocks.NewOrders(t)
	sales := mocks.NewSales(t)
	customers := mocks.NewCustomers(t)

	repo.On("Orders").Return(orders)
	repo.On("Sales").Return(sales)
	repo.On("Customers").Return(customers)
	repo.On("Now").Return(time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))

	orders.On("GetAllOrders", mock.Anything).Return([]entity.Order{
		{ID: 1, CustomerID: 1, TotalPrice: decimal.NewFromInt(100),
			CreatedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{ID: 2, CustomerID: 1, TotalPrice: decimal.NewFromInt(50),
			CreatedAt: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)},
	}, nil)
	orders.On("GetAllOrderItems", mock.Anything).Return([]entity.OrderItem{
		{OrderID: 1, ItemName: "Lasagna", Quantity: 2},
		{OrderID: 2, ItemName: "Tiramisu", Quantity: 1},
	}, nil)
	sales.On("GetHistoricalSales", mock.Anything).Return([]entity.HistoricalSale{
		{Year: 2023, Month: 1, Revenue: decimal.NewFromInt(200)},
	}, nil)
	customers.On("GetAllCustomers", mock.Anything).Return([]entity.Customer{
		{ID: 1, Name: "Ana", Phone: "+15550001"},
	}, nil)

	s := New(repo)
	resp, err := s.GetDashboard(ctx, nil)
	require.NoError(t, err)

	assert.True(t, resp.TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, resp.TotalOrders)
	assert.Equal(t, 1, resp.TotalCustomers)
	// Jan 2023 historical + Jan 2024 live
	require.Len(t, resp.RevenueTrend, 2)
	assert.Equal(t, "Jan 2023", resp.RevenueTrend[0].Label)
	assert.Equal(t, "Jan 2024", resp.RevenueTrend[1].Label)
	assert.NotEmpty(t, resp.ChartPalette)
	// thisYear 150 vs lastYearToDate 200 (months through Feb)
	assert.Equal(t, "-25.0", resp.YoYGrowth)
}

func TestListOrdersUnknownStatus(t *testing.T) {
	repo := mocks.NewRepository(t)
	cache := mocks.NewCache(t)
	repo.On("Cache").Return(cache)
	cache.On("GetOrderStatusByName", entity.OrderStatusName("bogus")).
		Return(entity.OrderStatus{}, false)

	s := New(repo)
	_, err := s.ListOrders(context.Background(), "bogus", 10, 0)
	assert.Error(t, err)
}

func TestListOrdersByStatus(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewRepository(t)
	cache := mocks.NewCache(t)
	orders := mocks.NewOrders(t)
	repo.On("Cache").Return(cache)
	repo.On("Orders").Return(orders)
	cache.On("GetOrderStatusByName", entity.Pending).
		Return(entity.OrderStatus{ID: 1, Name: entity.Pending}, true)
	orders.On("GetOrdersPaged", mock.Anything, 1, 50, 0).
		Return([]entity.Order{{ID: 7}}, nil)

	s := New(repo)
	got, err := s.ListOrders(ctx, entity.Pending, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
}

func TestUpdateOrderStatusUnknownName(t *testing.T) {
	s := New(mocks.NewRepository(t))
	_, err := s.UpdateOrderStatus(context.Background(), "uuid", "shipped")
	assert.Error(t, err)
}

func TestAddMenuItemValidation(t *testing.T) {
	s := New(mocks.NewRepository(t))

	_, err := s.AddMenuItem(context.Background(), &entity.MenuItemInsert{
		Price:    decimal.NewFromInt(10),
		Category: entity.Mains,
	})
	assert.Error(t, err, "name is required")

	_, err = s.AddMenuItem(context.Background(), &entity.MenuItemInsert{
		Name:     "Lasagna",
		Price:    decimal.NewFromInt(-1),
		Category: entity.Mains,
	})
	assert.Error(t, err, "negative price")
}

func TestUpsertHistoricalSaleNegativeRevenue(t *testing.T) {
	s := New(mocks.NewRepository(t))
	err := s.UpsertHistoricalSale(context.Background(), &entity.HistoricalSale{
		Year: 2023, Month: 5, Revenue: decimal.NewFromInt(-10),
	})
	assert.Error(t, err)
}
