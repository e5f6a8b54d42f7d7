package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Orders interface {
		ContextStore
		// CreateOrder validates the items against the menu, snapshots prices,
		// upserts the customer by phone and writes order + items + outbox
		// notifications in one transaction.
		CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error)
		GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.Order, error)
		GetOrderFullByUUID(ctx context.Context, orderUUID string) (*entity.OrderFull, error)
		// GetOrdersPaged returns orders filtered by status (0 = all), newest first.
		GetOrdersPaged(ctx context.Context, statusId, limit, offset int) ([]entity.Order, error)
		// UpdateOrderStatus moves the order along the allowed transitions and
		// enqueues a status notification for the customer.
		UpdateOrderStatus(ctx context.Context, orderUUID string, to entity.OrderStatusName) (*entity.Order, error)

		// Analytics retrieval: full read-only snapshots handed to the
		// aggregation engine.
		GetAllOrders(ctx context.Context) ([]entity.Order, error)
		GetAllOrderItems(ctx context.Context) ([]entity.OrderItem, error)
		// GetItemLabelCorpus returns every order item label, oldest first,
		// duplicates included - the suggestion ranking counts them.
		GetItemLabelCorpus(ctx context.Context) ([]string, error)
	}

	Menu interface {
		AddMenuItem(ctx context.Context, mi *entity.MenuItemInsert) (int, error)
		UpdateMenuItem(ctx context.Context, id int, mi *entity.MenuItemInsert) error
		DeleteMenuItemById(ctx context.Context, id int) error
		GetMenuItemById(ctx context.Context, id int) (*entity.MenuItem, error)
		// GetMenuItems returns the menu ordered by category then name.
		// showUnavailable includes items hidden from the public menu.
		GetMenuItems(ctx context.Context, showUnavailable bool) ([]entity.MenuItem, error)
	}

	Customers interface {
		// UpsertCustomerByPhone inserts the customer or refreshes the stored
		// name/email for a known phone number.
		UpsertCustomerByPhone(ctx context.Context, ci *entity.CustomerInsert) (*entity.Customer, error)
		GetCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error)
		GetAllCustomers(ctx context.Context) ([]entity.Customer, error)
		GetCustomersPaged(ctx context.Context, limit, offset int) ([]entity.Customer, error)
	}

	Sales interface {
		UpsertHistoricalSale(ctx context.Context, sale *entity.HistoricalSale) error
		GetHistoricalSales(ctx context.Context) ([]entity.HistoricalSale, error)
	}

	Admin interface {
		AddAdmin(ctx context.Context, un, pwHash string) error
		DeleteAdmin(ctx context.Context, username string) error
		ChangePassword(ctx context.Context, un, newHash string) error
		PasswordHashByUsername(ctx context.Context, un string) (string, error)
		GetAdminByUsername(ctx context.Context, username string) (*entity.Admin, error)
	}

	Notifications interface {
		AddNotification(ctx context.Context, n *entity.NotificationInsert) (int, error)
		GetAllUnsent(ctx context.Context, withError bool) ([]entity.Notification, error)
		UpdateSent(ctx context.Context, id int) error
		AddError(ctx context.Context, id int, errMsg string) error
	}

	Repository interface {
		Orders() Orders
		Menu() Menu
		Customers() Customers
		Sales() Sales
		Admin() Admin
		Notifications() Notifications
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		Cache() Cache
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	Cache interface {
		GetOrderStatusById(id int) (*entity.OrderStatus, bool)
		GetOrderStatusByName(orderStatus entity.OrderStatusName) (entity.OrderStatus, bool)

		GetMenuCategoryById(id int) (*entity.MenuCategory, bool)
		GetMenuCategoryByName(category entity.MenuCategoryName) (entity.MenuCategory, bool)
	}

	// MessageSender delivers a single rendered notification to its recipient.
	MessageSender interface {
		SendText(ctx context.Context, kind entity.NotificationKind, recipient, body string) error
		SendEmail(ctx context.Context, recipient, subject, body string) error
	}

	// Notifier drains the notification outbox in the background.
	Notifier interface {
		Start(ctx context.Context) error
		Stop() error
	}
)
