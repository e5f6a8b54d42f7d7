package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Sales is a mock for the Sales repository.
type Sales struct {
	mock.Mock
}

func NewSales(t testingT) *Sales {
	m := &Sales{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Sales) UpsertHistoricalSale(ctx context.Context, sale *entity.HistoricalSale) error {
	ret := _m.Called(ctx, sale)
	return ret.Error(0)
}

func (_m *Sales) GetHistoricalSales(ctx context.Context) ([]entity.HistoricalSale, error) {
	ret := _m.Called(ctx)
	var r0 []entity.HistoricalSale
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.HistoricalSale)
	}
	return r0, ret.Error(1)
}
