package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Cache is a mock for the dictionary cache.
type Cache struct {
	mock.Mock
}

func NewCache(t testingT) *Cache {
	m := &Cache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Cache) GetOrderStatusById(id int) (*entity.OrderStatus, bool) {
	ret := _m.Called(id)
	var r0 *entity.OrderStatus
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.OrderStatus)
	}
	return r0, ret.Bool(1)
}

func (_m *Cache) GetOrderStatusByName(orderStatus entity.OrderStatusName) (entity.OrderStatus, bool) {
	ret := _m.Called(orderStatus)
	return ret.Get(0).(entity.OrderStatus), ret.Bool(1)
}

func (_m *Cache) GetMenuCategoryById(id int) (*entity.MenuCategory, bool) {
	ret := _m.Called(id)
	var r0 *entity.MenuCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.MenuCategory)
	}
	return r0, ret.Bool(1)
}

func (_m *Cache) GetMenuCategoryByName(category entity.MenuCategoryName) (entity.MenuCategory, bool) {
	ret := _m.Called(category)
	return ret.Get(0).(entity.MenuCategory), ret.Bool(1)
}
