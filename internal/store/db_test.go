package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database named by MYSQL_TEST_DSN, applies
// migrations and truncates all data tables. Tests are skipped when the
// variable is unset so the suite stays runnable without infrastructure.
func newTestDB(t *testing.T) *MYSQLStore {
	t.Helper()

	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)

	for _, table := range []string{"notification", "order_item", "customer_order", "customer", "menu_item", "historical_sale", "admin"} {
		_, err := db.DB().ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}

	return db
}
