package entity

import (
	"database/sql"
	"time"
)

// NotificationKind is the custom type to enforce enum-like behavior
type NotificationKind string

func (nk *NotificationKind) String() string {
	return string(*nk)
}

const (
	NotificationSMS      NotificationKind = "sms"
	NotificationWhatsApp NotificationKind = "whatsapp"
	NotificationEmail    NotificationKind = "email"
)

var ValidNotificationKinds = map[NotificationKind]bool{
	NotificationSMS:      true,
	NotificationWhatsApp: true,
	NotificationEmail:    true,
}

// Notification represents the notification outbox table. Rows are written in
// the same transaction as the order they describe and drained by the worker.
type Notification struct {
	ID        int              `db:"id"`
	Kind      NotificationKind `db:"kind"`
	Recipient string           `db:"recipient"`
	Subject   string           `db:"subject"`
	Body      string           `db:"body"`
	Sent      bool             `db:"sent"`
	SentAt    sql.NullTime     `db:"sent_at"`
	ErrorMsg  sql.NullString   `db:"error_msg"`
	CreatedAt time.Time        `db:"created_at"`
}

type NotificationInsert struct {
	Kind      NotificationKind `db:"kind"`
	Recipient string           `db:"recipient"`
	Subject   string           `db:"subject"`
	Body      string           `db:"body"`
}
