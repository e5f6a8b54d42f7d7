package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderNew struct {
	Items        []OrderItemInsert `valid:"required"`
	CustomerName string            `valid:"required"`
	Phone        string            `valid:"required"`
	Note         string            `valid:"-"`
}

type OrderFull struct {
	Order      Order
	OrderItems []OrderItem
	Customer   Customer
}

// Order represents the customer_order table. Rows are read-only snapshots
// for analytics purposes: total_price is frozen at checkout.
type Order struct {
	ID            int             `db:"id"`
	UUID          string          `db:"uuid"`
	CustomerID    int             `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	OrderStatusID int             `db:"order_status_id"`
	Note          string          `db:"note"`
	CreatedAt     time.Time       `db:"created_at"`
	ModifiedAt    time.Time       `db:"modified_at"`
}

func (o *Order) TotalPriceDecimal() decimal.Decimal {
	return o.TotalPrice.Round(2)
}

// OrderItem represents the order_item table. ItemName and PriceAtPurchase are
// denormalized from the menu at checkout so later menu edits don't rewrite
// order history.
type OrderItem struct {
	ID              int             `db:"id"`
	OrderID         int             `db:"order_id"`
	ItemName        string          `db:"item_name"`
	Quantity        int             `db:"quantity"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
	CreatedAt       time.Time       `db:"created_at"`
}

type OrderItemInsert struct {
	MenuItemID int    `db:"menu_item_id" valid:"required"`
	Quantity   int    `db:"quantity" valid:"required,range(1|100)"`
	Label      string `db:"item_name" valid:"-"` // free-text catering label, overrides the menu name
}

// OrderStatusName is the custom type to enforce enum-like behavior
type OrderStatusName string

func (osn *OrderStatusName) String() string {
	return string(*osn)
}

const (
	Pending   OrderStatusName = "pending"
	Packed    OrderStatusName = "packed"
	Delivered OrderStatusName = "delivered"
	Cancelled OrderStatusName = "cancelled"
)

// ValidOrderStatusNames is a set of valid order status names
var ValidOrderStatusNames = map[OrderStatusName]bool{
	Pending:   true,
	Packed:    true,
	Delivered: true,
	Cancelled: true,
}

// OrderStatusTransitions lists the allowed next statuses per status.
var OrderStatusTransitions = map[OrderStatusName][]OrderStatusName{
	Pending:   {Packed, Cancelled},
	Packed:    {Delivered, Cancelled},
	Delivered: {},
	Cancelled: {},
}

// OrderStatus represents the order_status table
type OrderStatus struct {
	ID   int             `db:"id"`
	Name OrderStatusName `db:"name"`
}
