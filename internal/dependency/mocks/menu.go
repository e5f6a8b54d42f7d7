package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Menu is a mock for the Menu repository.
type Menu struct {
	mock.Mock
}

func NewMenu(t testingT) *Menu {
	m := &Menu{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Menu) AddMenuItem(ctx context.Context, mi *entity.MenuItemInsert) (int, error) {
	ret := _m.Called(ctx, mi)
	return ret.Get(0).(int), ret.Error(1)
}

func (_m *Menu) UpdateMenuItem(ctx context.Context, id int, mi *entity.MenuItemInsert) error {
	ret := _m.Called(ctx, id, mi)
	return ret.Error(0)
}

func (_m *Menu) DeleteMenuItemById(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Menu) GetMenuItemById(ctx context.Context, id int) (*entity.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *Menu) GetMenuItems(ctx context.Context, showUnavailable bool) ([]entity.MenuItem, error) {
	ret := _m.Called(ctx, showUnavailable)
	var r0 []entity.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.MenuItem)
	}
	return r0, ret.Error(1)
}
