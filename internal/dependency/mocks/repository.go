package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
)

// Repository is a mock for the root repository. Substore accessors are
// configured with .On("Orders").Return(ordersMock) and so on.
type Repository struct {
	mock.Mock
}

func NewRepository(t testingT) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Repository) Orders() dependency.Orders {
	ret := _m.Called()
	var r0 dependency.Orders
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Orders)
	}
	return r0
}

func (_m *Repository) Menu() dependency.Menu {
	ret := _m.Called()
	var r0 dependency.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Menu)
	}
	return r0
}

func (_m *Repository) Customers() dependency.Customers {
	ret := _m.Called()
	var r0 dependency.Customers
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Customers)
	}
	return r0
}

func (_m *Repository) Sales() dependency.Sales {
	ret := _m.Called()
	var r0 dependency.Sales
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Sales)
	}
	return r0
}

func (_m *Repository) Admin() dependency.Admin {
	ret := _m.Called()
	var r0 dependency.Admin
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Admin)
	}
	return r0
}

func (_m *Repository) Notifications() dependency.Notifications {
	ret := _m.Called()
	var r0 dependency.Notifications
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Notifications)
	}
	return r0
}

func (_m *Repository) Tx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	ret := _m.Called(ctx, f)
	return ret.Error(0)
}

func (_m *Repository) TxBegin(ctx context.Context) (dependency.Repository, error) {
	ret := _m.Called(ctx)
	var r0 dependency.Repository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Repository)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) TxCommit(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *Repository) TxRollback(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *Repository) Now() time.Time {
	ret := _m.Called()
	return ret.Get(0).(time.Time)
}

func (_m *Repository) InTx() bool {
	ret := _m.Called()
	return ret.Bool(0)
}

func (_m *Repository) Close() {
	_m.Called()
}

func (_m *Repository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *Repository) IsErrUniqueViolation(err error) bool {
	ret := _m.Called(err)
	return ret.Bool(0)
}

func (_m *Repository) IsErrorRepeat(err error) bool {
	ret := _m.Called(err)
	return ret.Bool(0)
}

func (_m *Repository) Cache() dependency.Cache {
	ret := _m.Called()
	var r0 dependency.Cache
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.Cache)
	}
	return r0
}

func (_m *Repository) DB() dependency.DB {
	ret := _m.Called()
	var r0 dependency.DB
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(dependency.DB)
	}
	return r0
}
