package store

import (
	"context"
	"fmt"

	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

type salesStore struct {
	*MYSQLStore
}

// Sales returns an object implementing Sales interface
func (ms *MYSQLStore) Sales() dependency.Sales {
	return &salesStore{
		MYSQLStore: ms,
	}
}

// UpsertHistoricalSale writes one pre-aggregated monthly revenue row,
// replacing an existing import for the same (year, month).
func (ms *MYSQLStore) UpsertHistoricalSale(ctx context.Context, sale *entity.HistoricalSale) error {
	if sale.Month < 1 || sale.Month > 12 {
		return fmt.Errorf("month %d out of range", sale.Month)
	}

	err := ExecNamed(ctx, ms.DB(), `
		INSERT INTO historical_sale (year, month, revenue)
		VALUES (:year, :month, :revenue)
		ON DUPLICATE KEY UPDATE revenue = :revenue`,
		map[string]any{
			"year":    sale.Year,
			"month":   sale.Month,
			"revenue": sale.RevenueDecimal(),
		})
	if err != nil {
		return fmt.Errorf("can't upsert historical sale: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetHistoricalSales(ctx context.Context) ([]entity.HistoricalSale, error) {
	sales, err := QueryListNamed[entity.HistoricalSale](ctx, ms.DB(), `
		SELECT * FROM historical_sale ORDER BY year, month`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get historical sales: %w", err)
	}
	return sales, nil
}
