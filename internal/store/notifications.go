package store

import (
	"context"
	"fmt"

	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

type notificationsStore struct {
	*MYSQLStore
}

// Notifications returns an object implementing Notifications interface
func (ms *MYSQLStore) Notifications() dependency.Notifications {
	return &notificationsStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddNotification(ctx context.Context, n *entity.NotificationInsert) (int, error) {
	if !entity.ValidNotificationKinds[n.Kind] {
		return 0, fmt.Errorf("unknown notification kind %q", n.Kind)
	}

	id, err := ExecNamedLastId(ctx, ms.DB(), `
		INSERT INTO notification (kind, recipient, subject, body, sent, created_at)
		VALUES (:kind, :recipient, :subject, :body, 0, :createdAt)`,
		map[string]any{
			"kind":      n.Kind,
			"recipient": n.Recipient,
			"subject":   n.Subject,
			"body":      n.Body,
			"createdAt": ms.Now(),
		})
	if err != nil {
		return 0, fmt.Errorf("can't insert notification: %w", err)
	}
	return id, nil
}

// GetAllUnsent returns undelivered outbox rows oldest first. Rows that
// already failed once are skipped unless withError is set.
func (ms *MYSQLStore) GetAllUnsent(ctx context.Context, withError bool) ([]entity.Notification, error) {
	query := `SELECT * FROM notification WHERE sent = 0`
	if !withError {
		query += ` AND error_msg IS NULL`
	}
	query += ` ORDER BY created_at, id`

	notifications, err := QueryListNamed[entity.Notification](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get unsent notifications: %w", err)
	}
	return notifications, nil
}

func (ms *MYSQLStore) UpdateSent(ctx context.Context, id int) error {
	err := ExecNamed(ctx, ms.DB(), `
		UPDATE notification SET sent = 1, sent_at = :sentAt WHERE id = :id`,
		map[string]any{
			"id":     id,
			"sentAt": ms.Now(),
		})
	if err != nil {
		return fmt.Errorf("can't mark notification sent: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) AddError(ctx context.Context, id int, errMsg string) error {
	err := ExecNamed(ctx, ms.DB(), `
		UPDATE notification SET error_msg = :errorMsg WHERE id = :id`,
		map[string]any{
			"id":       id,
			"errorMsg": errMsg,
		})
	if err != nil {
		return fmt.Errorf("can't record notification error: %w", err)
	}
	return nil
}
