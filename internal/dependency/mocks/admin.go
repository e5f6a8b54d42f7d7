package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Admin is a mock for the Admin repository.
type Admin struct {
	mock.Mock
}

func NewAdmin(t testingT) *Admin {
	m := &Admin{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Admin) AddAdmin(ctx context.Context, un, pwHash string) error {
	ret := _m.Called(ctx, un, pwHash)
	return ret.Error(0)
}

func (_m *Admin) DeleteAdmin(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)
	return ret.Error(0)
}

func (_m *Admin) ChangePassword(ctx context.Context, un, newHash string) error {
	ret := _m.Called(ctx, un, newHash)
	return ret.Error(0)
}

func (_m *Admin) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	ret := _m.Called(ctx, un)
	return ret.String(0), ret.Error(1)
}

func (_m *Admin) GetAdminByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	ret := _m.Called(ctx, username)
	var r0 *entity.Admin
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Admin)
	}
	return r0, ret.Error(1)
}
