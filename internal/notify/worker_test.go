package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tavolaworks/trattoria-manager/internal/dependency/mocks"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

func newTestWorker(t *testing.T, nr *mocks.Notifications, sender *mocks.MessageSender) *Worker {
	t.Helper()
	n, err := New(&Config{WorkerInterval: time.Minute}, nr, sender)
	require.NoError(t, err)
	return n.(*Worker)
}

func TestHandleUnsent(t *testing.T) {
	ctx := context.Background()

	nr := mocks.NewNotifications(t)
	sender := mocks.NewMessageSender(t)

	nr.On("GetAllUnsent", mock.Anything, false).Return([]entity.Notification{
		{ID: 1, Kind: entity.NotificationWhatsApp, Recipient: "+15550001", Body: "order confirmed"},
		{ID: 2, Kind: entity.NotificationEmail, Recipient: "ana@example.com", Subject: "Order", Body: "order confirmed"},
	}, nil)
	sender.On("SendText", mock.Anything, entity.NotificationWhatsApp, "+15550001", "order confirmed").Return(nil)
	sender.On("SendEmail", mock.Anything, "ana@example.com", "Order", "order confirmed").Return(nil)
	nr.On("UpdateSent", mock.Anything, 1).Return(nil)
	nr.On("UpdateSent", mock.Anything, 2).Return(nil)

	w := newTestWorker(t, nr, sender)
	assert.NoError(t, w.handleUnsent(ctx))
}

func TestHandleUnsentRecordsError(t *testing.T) {
	ctx := context.Background()

	nr := mocks.NewNotifications(t)
	sender := mocks.NewMessageSender(t)

	nr.On("GetAllUnsent", mock.Anything, false).Return([]entity.Notification{
		{ID: 1, Kind: entity.NotificationSMS, Recipient: "+15550001", Body: "hi"},
		{ID: 2, Kind: entity.NotificationSMS, Recipient: "+15550002", Body: "hi"},
	}, nil)
	sender.On("SendText", mock.Anything, entity.NotificationSMS, "+15550001", "hi").
		Return(errors.New("gateway returned 500"))
	nr.On("AddError", mock.Anything, 1, "gateway returned 500").Return(nil)
	sender.On("SendText", mock.Anything, entity.NotificationSMS, "+15550002", "hi").Return(nil)
	nr.On("UpdateSent", mock.Anything, 2).Return(nil)

	w := newTestWorker(t, nr, sender)
	assert.NoError(t, w.handleUnsent(ctx))
}

func TestHandleUnsentStopsOnAPILimit(t *testing.T) {
	ctx := context.Background()

	nr := mocks.NewNotifications(t)
	sender := mocks.NewMessageSender(t)

	// second notification must not be attempted after the limit error
	nr.On("GetAllUnsent", mock.Anything, false).Return([]entity.Notification{
		{ID: 1, Kind: entity.NotificationSMS, Recipient: "+15550001", Body: "hi"},
		{ID: 2, Kind: entity.NotificationSMS, Recipient: "+15550002", Body: "hi"},
	}, nil)
	sender.On("SendText", mock.Anything, entity.NotificationSMS, "+15550001", "hi").
		Return(gerr.ErrNotifyAPILimitReached).Once()

	w := newTestWorker(t, nr, sender)
	assert.NoError(t, w.handleUnsent(ctx))
	sender.AssertNumberOfCalls(t, "SendText", 1)
}

func TestStartStop(t *testing.T) {
	nr := mocks.NewNotifications(t)
	sender := mocks.NewMessageSender(t)

	w := newTestWorker(t, nr, sender)

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()), "double start")
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop(), "double stop")
}

func TestNewRejectsZeroInterval(t *testing.T) {
	_, err := New(&Config{}, mocks.NewNotifications(t), mocks.NewMessageSender(t))
	assert.Error(t, err)
}
