package entity

import "github.com/shopspring/decimal"

// HistoricalSale represents the historical_sale table: pre-aggregated monthly
// revenue imported from before live order tracking began. Unique per
// (year, month).
type HistoricalSale struct {
	ID      int             `db:"id"`
	Year    int             `db:"year"`
	Month   int             `db:"month"`
	Revenue decimal.Decimal `db:"revenue"`
}

func (hs *HistoricalSale) RevenueDecimal() decimal.Decimal {
	return hs.Revenue.Round(2)
}
