package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// MessageSender is a mock for the MessageSender gateway.
type MessageSender struct {
	mock.Mock
}

func NewMessageSender(t testingT) *MessageSender {
	m := &MessageSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MessageSender) SendText(ctx context.Context, kind entity.NotificationKind, recipient, body string) error {
	ret := _m.Called(ctx, kind, recipient, body)
	return ret.Error(0)
}

func (_m *MessageSender) SendEmail(ctx context.Context, recipient, subject, body string) error {
	ret := _m.Called(ctx, recipient, subject, body)
	return ret.Error(0)
}
