package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Notifications is a mock for the Notifications repository.
type Notifications struct {
	mock.Mock
}

func NewNotifications(t testingT) *Notifications {
	m := &Notifications{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Notifications) AddNotification(ctx context.Context, n *entity.NotificationInsert) (int, error) {
	ret := _m.Called(ctx, n)
	return ret.Get(0).(int), ret.Error(1)
}

func (_m *Notifications) GetAllUnsent(ctx context.Context, withError bool) ([]entity.Notification, error) {
	ret := _m.Called(ctx, withError)
	var r0 []entity.Notification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Notification)
	}
	return r0, ret.Error(1)
}

func (_m *Notifications) UpdateSent(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Notifications) AddError(ctx context.Context, id int, errMsg string) error {
	ret := _m.Called(ctx, id, errMsg)
	return ret.Error(0)
}
