package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

type ordersStore struct {
	*MYSQLStore
}

// Orders returns an object implementing Orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &ordersStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error) {
	var of *entity.OrderFull
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		customer, err := rep.Customers().UpsertCustomerByPhone(ctx, &entity.CustomerInsert{
			Name:  orderNew.CustomerName,
			Phone: orderNew.Phone,
		})
		if err != nil {
			return fmt.Errorf("can't upsert customer: %w", err)
		}

		items, total, err := snapshotOrderItems(ctx, rep, orderNew.Items)
		if err != nil {
			return err
		}

		pending, ok := rep.Cache().GetOrderStatusByName(entity.Pending)
		if !ok {
			return fmt.Errorf("pending status not in dictionary cache")
		}

		order := entity.Order{
			UUID:          uuid.New().String(),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			TotalPrice:    total,
			OrderStatusID: pending.ID,
			Note:          orderNew.Note,
			CreatedAt:     rep.Now(),
			ModifiedAt:    rep.Now(),
		}

		orderId, err := ExecNamedLastId(ctx, rep.DB(), `
			INSERT INTO customer_order
				(uuid, customer_id, customer_name, total_price, order_status_id, note, created_at, modified_at)
			VALUES
				(:uuid, :customerId, :customerName, :totalPrice, :orderStatusId, :note, :createdAt, :modifiedAt)`,
			map[string]any{
				"uuid":          order.UUID,
				"customerId":    order.CustomerID,
				"customerName":  order.CustomerName,
				"totalPrice":    order.TotalPrice,
				"orderStatusId": order.OrderStatusID,
				"note":          order.Note,
				"createdAt":     order.CreatedAt,
				"modifiedAt":    order.ModifiedAt,
			})
		if err != nil {
			return fmt.Errorf("can't insert order: %w", err)
		}
		order.ID = orderId

		rows := make([]map[string]any, 0, len(items))
		for i := range items {
			items[i].OrderID = orderId
			items[i].CreatedAt = rep.Now()
			rows = append(rows, map[string]any{
				"order_id":          items[i].OrderID,
				"item_name":         items[i].ItemName,
				"quantity":          items[i].Quantity,
				"price_at_purchase": items[i].PriceAtPurchase,
				"created_at":        items[i].CreatedAt,
			})
		}
		if err := BulkInsert(ctx, rep.DB(), "order_item", rows); err != nil {
			return fmt.Errorf("can't insert order items: %w", err)
		}

		if _, err := rep.Notifications().AddNotification(ctx, orderConfirmation(&order, customer)); err != nil {
			return fmt.Errorf("can't enqueue order confirmation: %w", err)
		}

		of = &entity.OrderFull{
			Order:      order,
			OrderItems: items,
			Customer:   *customer,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return of, nil
}

// snapshotOrderItems resolves the requested menu items and freezes their
// current name and price onto order item rows. A free-text catering label
// overrides the menu name when provided.
func snapshotOrderItems(ctx context.Context, rep dependency.Repository, inserts []entity.OrderItemInsert) ([]entity.OrderItem, decimal.Decimal, error) {
	items := make([]entity.OrderItem, 0, len(inserts))
	total := decimal.Zero

	for _, ins := range inserts {
		mi, err := rep.Menu().GetMenuItemById(ctx, ins.MenuItemID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("menu item %d: %w", ins.MenuItemID, err)
		}
		if !mi.Available {
			return nil, decimal.Zero, fmt.Errorf("menu item %d: %w", ins.MenuItemID, gerr.ErrItemUnavailable)
		}

		name := mi.Name
		if ins.Label != "" {
			name = ins.Label
		}

		lineTotal := mi.PriceDecimal().Mul(decimal.NewFromInt(int64(ins.Quantity)))
		total = total.Add(lineTotal)

		items = append(items, entity.OrderItem{
			ItemName:        name,
			Quantity:        ins.Quantity,
			PriceAtPurchase: mi.PriceDecimal(),
		})
	}

	return items, total.Round(2), nil
}

func orderConfirmation(o *entity.Order, c *entity.Customer) *entity.NotificationInsert {
	return &entity.NotificationInsert{
		Kind:      entity.NotificationWhatsApp,
		Recipient: c.Phone,
		Subject:   "Order received",
		Body: fmt.Sprintf("Hi %s, we received your order %s (%s). We'll message you when it's packed.",
			c.Name, o.UUID, o.TotalPriceDecimal().StringFixed(2)),
	}
}

func orderStatusUpdate(o *entity.Order, status entity.OrderStatusName) *entity.NotificationInsert {
	return &entity.NotificationInsert{
		Kind:      entity.NotificationWhatsApp,
		Recipient: "", // filled by the caller once the customer is loaded
		Subject:   "Order " + status.String(),
		Body:      fmt.Sprintf("Your order %s is now %s.", o.UUID, status.String()),
	}
}

func (ms *MYSQLStore) GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.Order, error) {
	order, err := QueryNamedOne[entity.Order](ctx, ms.DB(), `
		SELECT * FROM customer_order WHERE uuid = :uuid`,
		map[string]any{"uuid": orderUUID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrOrderNotFound
		}
		return nil, fmt.Errorf("can't get order by uuid: %w", err)
	}
	return &order, nil
}

func (ms *MYSQLStore) GetOrderFullByUUID(ctx context.Context, orderUUID string) (*entity.OrderFull, error) {
	order, err := ms.GetOrderByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}

	items, err := QueryListNamed[entity.OrderItem](ctx, ms.DB(), `
		SELECT * FROM order_item WHERE order_id = :orderId ORDER BY id`,
		map[string]any{"orderId": order.ID})
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	customer, err := QueryNamedOne[entity.Customer](ctx, ms.DB(), `
		SELECT * FROM customer WHERE id = :id`,
		map[string]any{"id": order.CustomerID})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("can't get order customer: %w", err)
	}

	return &entity.OrderFull{
		Order:      *order,
		OrderItems: items,
		Customer:   customer,
	}, nil
}

func (ms *MYSQLStore) GetOrdersPaged(ctx context.Context, statusId, limit, offset int) ([]entity.Order, error) {
	query := `SELECT * FROM customer_order`
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}
	if statusId != 0 {
		query += ` WHERE order_status_id = :statusId`
		params["statusId"] = statusId
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT :limit OFFSET :offset`

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get orders paged: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) UpdateOrderStatus(ctx context.Context, orderUUID string, to entity.OrderStatusName) (*entity.Order, error) {
	if !entity.ValidOrderStatusNames[to] {
		return nil, fmt.Errorf("%w: unknown status %q", gerr.ErrInvalidStatusTransition, to)
	}

	var updated *entity.Order
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order, err := rep.Orders().GetOrderByUUID(ctx, orderUUID)
		if err != nil {
			return err
		}

		current, ok := rep.Cache().GetOrderStatusById(order.OrderStatusID)
		if !ok {
			return fmt.Errorf("status %d not in dictionary cache", order.OrderStatusID)
		}
		if !transitionAllowed(current.Name, to) {
			return fmt.Errorf("%w: %s -> %s", gerr.ErrInvalidStatusTransition, current.Name, to)
		}

		target, ok := rep.Cache().GetOrderStatusByName(to)
		if !ok {
			return fmt.Errorf("status %q not in dictionary cache", to)
		}

		err = ExecNamed(ctx, rep.DB(), `
			UPDATE customer_order SET order_status_id = :statusId, modified_at = :modifiedAt
			WHERE uuid = :uuid`,
			map[string]any{
				"statusId":   target.ID,
				"modifiedAt": rep.Now(),
				"uuid":       orderUUID,
			})
		if err != nil {
			return fmt.Errorf("can't update order status: %w", err)
		}

		cust, err := QueryNamedOne[entity.Customer](ctx, rep.DB(), `
			SELECT * FROM customer WHERE id = :id`,
			map[string]any{"id": order.CustomerID})
		switch {
		case err == nil:
			n := orderStatusUpdate(order, to)
			n.Recipient = cust.Phone
			if _, err := rep.Notifications().AddNotification(ctx, n); err != nil {
				return fmt.Errorf("can't enqueue status notification: %w", err)
			}
		case errors.Is(err, sql.ErrNoRows):
			// no customer record, nothing to notify
		default:
			return fmt.Errorf("can't get customer for status notification: %w", err)
		}

		order.OrderStatusID = target.ID
		order.ModifiedAt = rep.Now()
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func transitionAllowed(from, to entity.OrderStatusName) bool {
	for _, next := range entity.OrderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (ms *MYSQLStore) GetAllOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), `
		SELECT * FROM customer_order ORDER BY created_at, id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get all orders: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) GetAllOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	items, err := QueryListNamed[entity.OrderItem](ctx, ms.DB(), `
		SELECT * FROM order_item ORDER BY created_at, id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get all order items: %w", err)
	}
	return items, nil
}

func (ms *MYSQLStore) GetItemLabelCorpus(ctx context.Context) ([]string, error) {
	type row struct {
		ItemName string `db:"item_name"`
	}
	rows, err := QueryListNamed[row](ctx, ms.DB(), `
		SELECT item_name FROM order_item ORDER BY created_at, id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get item label corpus: %w", err)
	}
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.ItemName
	}
	return labels, nil
}
