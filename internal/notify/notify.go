// Package notify delivers customer notifications. Order handlers enqueue
// rows into the notification outbox; the worker here drains the outbox
// through a messaging gateway (SMS, WhatsApp) and SendGrid (email).
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/tavolaworks/trattoria-manager/internal/dependency"
)

type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Sender         SenderConfig  `mapstructure:"sender"`
}

// Worker drains the notification outbox in the background.
type Worker struct {
	notificationRepository dependency.Notifications
	sender                 dependency.MessageSender
	c                      *Config
	ctx                    context.Context
	cancel                 context.CancelFunc
}

// New creates a new outbox worker.
func New(c *Config, nr dependency.Notifications, sender dependency.MessageSender) (dependency.Notifier, error) {
	if c.WorkerInterval <= 0 {
		return nil, fmt.Errorf("worker interval must be positive: %v", c.WorkerInterval)
	}
	return &Worker{
		notificationRepository: nr,
		sender:                 sender,
		c:                      c,
	}, nil
}
