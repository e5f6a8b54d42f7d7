package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Orders is a mock for the Orders repository.
type Orders struct {
	mock.Mock
}

func NewOrders(t testingT) *Orders {
	m := &Orders{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Orders) Tx(ctx context.Context, fn func(context.Context, dependency.Repository) error) error {
	ret := _m.Called(ctx, fn)
	return ret.Error(0)
}

func (_m *Orders) CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error) {
	ret := _m.Called(ctx, orderNew)
	var r0 *entity.OrderFull
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.OrderFull)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.Order, error) {
	ret := _m.Called(ctx, orderUUID)
	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) GetOrderFullByUUID(ctx context.Context, orderUUID string) (*entity.OrderFull, error) {
	ret := _m.Called(ctx, orderUUID)
	var r0 *entity.OrderFull
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.OrderFull)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) GetOrdersPaged(ctx context.Context, statusId, limit, offset int) ([]entity.Order, error) {
	ret := _m.Called(ctx, statusId, limit, offset)
	var r0 []entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) UpdateOrderStatus(ctx context.Context, orderUUID string, to entity.OrderStatusName) (*entity.Order, error) {
	ret := _m.Called(ctx, orderUUID, to)
	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) GetAllOrders(ctx context.Context) ([]entity.Order, error) {
	ret := _m.Called(ctx)
	var r0 []entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) GetAllOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	ret := _m.Called(ctx)
	var r0 []entity.OrderItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.OrderItem)
	}
	return r0, ret.Error(1)
}

func (_m *Orders) GetItemLabelCorpus(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}
