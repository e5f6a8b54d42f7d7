package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Customers is a mock for the Customers repository.
type Customers struct {
	mock.Mock
}

func NewCustomers(t testingT) *Customers {
	m := &Customers{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Customers) UpsertCustomerByPhone(ctx context.Context, ci *entity.CustomerInsert) (*entity.Customer, error) {
	ret := _m.Called(ctx, ci)
	var r0 *entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *Customers) GetCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	ret := _m.Called(ctx, phone)
	var r0 *entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *Customers) GetAllCustomers(ctx context.Context) ([]entity.Customer, error) {
	ret := _m.Called(ctx)
	var r0 []entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *Customers) GetCustomersPaged(ctx context.Context, limit, offset int) ([]entity.Customer, error) {
	ret := _m.Called(ctx, limit, offset)
	var r0 []entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Customer)
	}
	return r0, ret.Error(1)
}
