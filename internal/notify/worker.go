package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

// Start starts the worker
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.cancel != nil {
		return fmt.Errorf("notify worker already started")
	}

	w.ctx, w.cancel = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully
func (w *Worker) Stop() error {
	if w.cancel == nil {
		return fmt.Errorf("notify worker already stopped or not started")
	}

	w.cancel()
	w.cancel = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.handleUnsent(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't handle unsent notifications",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) handleUnsent(ctx context.Context) error {
	unsent, err := w.notificationRepository.GetAllUnsent(ctx, false)
	if err != nil {
		return fmt.Errorf("can't get unsent notifications: %w", err)
	}

	for _, n := range unsent {
		// Check for a stop signal before processing each notification
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.deliver(ctx, &n); err != nil {
			slog.Default().ErrorContext(ctx, "can't send notification",
				slog.String("err", err.Error()),
				slog.Int("id", n.ID),
				slog.String("kind", n.Kind.String()),
			)

			if errors.Is(err, gerr.ErrNotifyAPILimitReached) {
				return nil // Stop sending until the next tick
			}

			if err := w.notificationRepository.AddError(ctx, n.ID, err.Error()); err != nil {
				return fmt.Errorf("can't log error for notification %v: %w", n.ID, err)
			}
		} else {
			if err := w.notificationRepository.UpdateSent(ctx, n.ID); err != nil {
				return fmt.Errorf("can't update sent status for notification %v: %w", n.ID, err)
			}
		}
	}

	return nil
}

func (w *Worker) deliver(ctx context.Context, n *entity.Notification) error {
	switch n.Kind {
	case entity.NotificationEmail:
		return w.sender.SendEmail(ctx, n.Recipient, n.Subject, n.Body)
	case entity.NotificationSMS, entity.NotificationWhatsApp:
		return w.sender.SendText(ctx, n.Kind, n.Recipient, n.Body)
	default:
		return fmt.Errorf("unknown notification kind: %s", n.Kind)
	}
}
