package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

func addTestMenuItem(t *testing.T, db *MYSQLStore, name string, price int64, available bool) int {
	t.Helper()
	id, err := db.Menu().AddMenuItem(context.Background(), &entity.MenuItemInsert{
		Name:      name,
		Price:     decimal.NewFromInt(price),
		Category:  entity.Mains,
		Available: available,
	})
	require.NoError(t, err)
	return id
}

func TestOrders_CreateOrder(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	lasagnaId := addTestMenuItem(t, db, "Lasagna", 14, true)
	tiramisuId := addTestMenuItem(t, db, "Tiramisu", 7, true)

	of, err := db.Orders().CreateOrder(ctx, &entity.OrderNew{
		Items: []entity.OrderItemInsert{
			{MenuItemID: lasagnaId, Quantity: 2},
			{MenuItemID: tiramisuId, Quantity: 1, Label: "Tiramisu (no cocoa)"},
		},
		CustomerName: "Ana Rossi",
		Phone:        "+15550001",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, of.Order.UUID)
	assert.True(t, of.Order.TotalPrice.Equal(decimal.NewFromInt(35)), "total %s", of.Order.TotalPrice)
	assert.Equal(t, "Ana Rossi", of.Order.CustomerName)
	require.Len(t, of.OrderItems, 2)
	assert.Equal(t, "Lasagna", of.OrderItems[0].ItemName)
	assert.Equal(t, "Tiramisu (no cocoa)", of.OrderItems[1].ItemName, "catering label overrides the menu name")

	status, ok := db.Cache().GetOrderStatusById(of.Order.OrderStatusID)
	require.True(t, ok)
	assert.Equal(t, entity.Pending, status.Name)

	// confirmation landed in the outbox
	unsent, err := db.Notifications().GetAllUnsent(ctx, false)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, "+15550001", unsent[0].Recipient)

	// a second order from the same phone reuses the customer row
	_, err = db.Orders().CreateOrder(ctx, &entity.OrderNew{
		Items:        []entity.OrderItemInsert{{MenuItemID: lasagnaId, Quantity: 1}},
		CustomerName: "Ana R.",
		Phone:        "+15550001",
	})
	require.NoError(t, err)
	customers, err := db.Customers().GetAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
	assert.Equal(t, "Ana R.", customers[0].Name)
}

func TestOrders_CreateOrderUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	offMenuId := addTestMenuItem(t, db, "Seasonal Special", 20, false)

	_, err := db.Orders().CreateOrder(context.Background(), &entity.OrderNew{
		Items:        []entity.OrderItemInsert{{MenuItemID: offMenuId, Quantity: 1}},
		CustomerName: "Ben",
		Phone:        "+15550002",
	})
	assert.ErrorIs(t, err, gerr.ErrItemUnavailable)
}

func TestOrders_UpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	itemId := addTestMenuItem(t, db, "Lasagna", 14, true)
	of, err := db.Orders().CreateOrder(ctx, &entity.OrderNew{
		Items:        []entity.OrderItemInsert{{MenuItemID: itemId, Quantity: 1}},
		CustomerName: "Ana",
		Phone:        "+15550001",
	})
	require.NoError(t, err)

	// delivered straight from pending is not allowed
	_, err = db.Orders().UpdateOrderStatus(ctx, of.Order.UUID, entity.Delivered)
	assert.ErrorIs(t, err, gerr.ErrInvalidStatusTransition)

	packed, err := db.Orders().UpdateOrderStatus(ctx, of.Order.UUID, entity.Packed)
	require.NoError(t, err)
	status, ok := db.Cache().GetOrderStatusById(packed.OrderStatusID)
	require.True(t, ok)
	assert.Equal(t, entity.Packed, status.Name)

	_, err = db.Orders().UpdateOrderStatus(ctx, of.Order.UUID, entity.Delivered)
	require.NoError(t, err)

	_, err = db.Orders().UpdateOrderStatus(ctx, "no-such-uuid", entity.Packed)
	assert.ErrorIs(t, err, gerr.ErrOrderNotFound)
}

func TestOrders_UpdateOrderStatusCustomerGone(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	itemId := addTestMenuItem(t, db, "Lasagna", 14, true)
	of, err := db.Orders().CreateOrder(ctx, &entity.OrderNew{
		Items:        []entity.OrderItemInsert{{MenuItemID: itemId, Quantity: 1}},
		CustomerName: "Ana",
		Phone:        "+15550001",
	})
	require.NoError(t, err)

	unsent, err := db.Notifications().GetAllUnsent(ctx, false)
	require.NoError(t, err)
	require.Len(t, unsent, 1)

	// the status update still goes through when the customer row is gone,
	// it just has nobody to notify; the FK check is toggled on a single
	// connection to let the row disappear under the order
	tx, err := db.DB().BeginTxx(ctx, nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS=0")
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "DELETE FROM customer WHERE id = ?", of.Order.CustomerID)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS=1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	packed, err := db.Orders().UpdateOrderStatus(ctx, of.Order.UUID, entity.Packed)
	require.NoError(t, err)
	status, ok := db.Cache().GetOrderStatusById(packed.OrderStatusID)
	require.True(t, ok)
	assert.Equal(t, entity.Packed, status.Name)

	unsent, err = db.Notifications().GetAllUnsent(ctx, false)
	require.NoError(t, err)
	assert.Len(t, unsent, 1, "no status notification without a customer record")
}

func TestSales_Upsert(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	require.NoError(t, db.Sales().UpsertHistoricalSale(ctx, &entity.HistoricalSale{
		Year: 2023, Month: 5, Revenue: decimal.NewFromInt(1000),
	}))
	// same month again replaces, not duplicates
	require.NoError(t, db.Sales().UpsertHistoricalSale(ctx, &entity.HistoricalSale{
		Year: 2023, Month: 5, Revenue: decimal.NewFromInt(1200),
	}))

	sales, err := db.Sales().GetHistoricalSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].Revenue.Equal(decimal.NewFromInt(1200)))

	err = db.Sales().UpsertHistoricalSale(ctx, &entity.HistoricalSale{Year: 2023, Month: 13, Revenue: decimal.NewFromInt(1)})
	assert.Error(t, err)
}
