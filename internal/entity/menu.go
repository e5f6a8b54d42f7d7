package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory represents the menu_category dictionary table.
type MenuCategory struct {
	ID   int              `db:"id"`
	Name MenuCategoryName `db:"name"`
}

// MenuCategoryName is the custom type to enforce enum-like behavior
type MenuCategoryName string

func (mcn *MenuCategoryName) String() string {
	return string(*mcn)
}

const (
	Starters MenuCategoryName = "starters"
	Mains    MenuCategoryName = "mains"
	Sides    MenuCategoryName = "sides"
	Desserts MenuCategoryName = "desserts"
	Drinks   MenuCategoryName = "drinks"
	Catering MenuCategoryName = "catering"
)

var ValidMenuCategoryNames = map[MenuCategoryName]bool{
	Starters: true,
	Mains:    true,
	Sides:    true,
	Desserts: true,
	Drinks:   true,
	Catering: true,
}

// MenuItem represents the menu_item table
type MenuItem struct {
	ID         int       `db:"id"`
	CategoryID int       `db:"category_id"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	MenuItemInsert
}

type MenuItemInsert struct {
	Name        string           `db:"name" valid:"required"`
	Description string           `db:"description" valid:"-"`
	Price       decimal.Decimal  `db:"price" valid:"-"`
	Category    MenuCategoryName `db:"-" valid:"required"`
	Available   bool             `db:"available" valid:"-"`
}

func (mi *MenuItemInsert) PriceDecimal() decimal.Decimal {
	return mi.Price.Round(2)
}
