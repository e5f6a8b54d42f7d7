// Package cache holds the in-memory dictionary tables (order statuses, menu
// categories) loaded once at boot. Dictionary rows never change at runtime;
// the cache only answers lookups.
package cache

import (
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

type Cache struct {
	OrderStatus  *OrderStatusCache
	MenuCategory *MenuCategoryCache
}

func NewCache(
	orderStatuses []entity.OrderStatus,
	menuCategories []entity.MenuCategory,
) (dependency.Cache, error) {
	oc, err := newOrderStatusCache(orderStatuses)
	if err != nil {
		return nil, err
	}

	mc, err := newMenuCategoryCache(menuCategories)
	if err != nil {
		return nil, err
	}

	return &Cache{
		OrderStatus:  oc,
		MenuCategory: mc,
	}, nil
}

func (c *Cache) GetOrderStatusById(id int) (*entity.OrderStatus, bool) {
	return c.OrderStatus.GetOrderStatusByID(id)
}

func (c *Cache) GetOrderStatusByName(orderStatus entity.OrderStatusName) (entity.OrderStatus, bool) {
	return c.OrderStatus.GetOrderStatusByName(orderStatus)
}

func (c *Cache) GetMenuCategoryById(id int) (*entity.MenuCategory, bool) {
	return c.MenuCategory.GetMenuCategoryByID(id)
}

func (c *Cache) GetMenuCategoryByName(category entity.MenuCategoryName) (entity.MenuCategory, bool) {
	return c.MenuCategory.GetMenuCategoryByName(category)
}
