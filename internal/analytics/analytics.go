// Package analytics computes the admin dashboard summary from raw order,
// order item, historical sale and customer records. It is pure: no I/O, no
// shared state, recomputed in full on every call. Retrieval and rendering
// live with the callers.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// Input carries the four read-only collections the summary is derived from.
// No ordering is assumed; the aggregation re-sorts as needed.
type Input struct {
	Orders          []entity.Order
	OrderItems      []entity.OrderItem
	HistoricalSales []entity.HistoricalSale
	Customers       []entity.Customer
}

// TrendPoint is one calendar month of merged historical and live revenue.
type TrendPoint struct {
	Label   string          `json:"label"` // "Jan 2024"
	Revenue decimal.Decimal `json:"revenue"`
}

// ItemCount is the aggregated quantity sold under one item label.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DayCount is the number of orders placed on one weekday.
type DayCount struct {
	Day   string `json:"day"` // "Sun".."Sat"
	Count int    `json:"count"`
}

// CustomerRank is the per-customer aggregate used by both ranking views.
type CustomerRank struct {
	CustomerID int             `json:"customerId"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	OrderCount int             `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// Summary is the disposable view model handed to the presentation layer.
type Summary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	TotalCustomers int             `json:"totalCustomers"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`

	RevenueTrend []TrendPoint `json:"revenueTrend"`
	TopItems     []ItemCount  `json:"topItems"`
	OrdersByDay  []DayCount   `json:"ordersByDay"`

	TopCustomersBySpent  []CustomerRank `json:"topCustomersBySpent"`
	TopCustomersByOrders []CustomerRank `json:"topCustomersByOrders"`

	// YoYGrowth is a percentage formatted to one decimal place, or "N/A"
	// when the prior year-to-date revenue is zero or negative.
	YoYGrowth string `json:"yoyGrowth"`
}

const (
	topItemsLimit     = 5
	topCustomersLimit = 10
)

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// dayAbbrevs is indexed by time.Weekday (Sunday = 0).
var dayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ChartPalette is the fixed color cycle the dashboard charts draw from.
var ChartPalette = [...]string{
	"#e76f51", "#f4a261", "#e9c46a", "#2a9d8f", "#264653",
	"#8ab17d", "#babb74", "#efb366", "#ee8959", "#e97c61",
}

// Compute derives the full dashboard summary from in, restricted to the last
// rangeDays days when rangeDays is non-nil. now anchors the range cutoff and
// the YoY year boundaries; the cutoff is local midnight of now minus
// rangeDays. Inputs are never mutated.
func Compute(in Input, rangeDays *int, now time.Time) Summary {
	orders := in.Orders
	items := in.OrderItems
	sales := in.HistoricalSales

	if rangeDays != nil {
		cutoff := midnight(now).AddDate(0, 0, -*rangeDays)
		orders = filterOrders(in.Orders, cutoff)
		items = filterItems(in.OrderItems, orders)
		sales = filterSales(in.HistoricalSales, cutoff, now.Location())
	}

	s := Summary{
		TotalOrders: len(orders),
		// The customer KPI reports the full roster regardless of the
		// selected window.
		TotalCustomers: len(in.Customers),
	}

	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalPrice)
	}
	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.TotalOrders)))
	}

	s.RevenueTrend = revenueTrend(monthlyRevenue(orders, sales))
	s.TopItems = topItems(items)
	s.OrdersByDay = ordersByDay(orders)
	s.TopCustomersBySpent, s.TopCustomersByOrders = customerRankings(orders, in.Customers)

	// YoY is always computed against the unfiltered data: comparing a
	// 30-day window to last year's full year-to-date is meaningless.
	s.YoYGrowth = yoyGrowth(monthlyRevenue(in.Orders, in.HistoricalSales), now)

	return s
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func filterOrders(orders []entity.Order, cutoff time.Time) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out
}

func filterItems(items []entity.OrderItem, orders []entity.Order) []entity.OrderItem {
	ids := make(map[int]struct{}, len(orders))
	for _, o := range orders {
		ids[o.ID] = struct{}{}
	}
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if _, ok := ids[it.OrderID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// filterSales keeps entries whose synthetic first-of-month date is on or
// after the cutoff.
func filterSales(sales []entity.HistoricalSale, cutoff time.Time, loc *time.Location) []entity.HistoricalSale {
	out := make([]entity.HistoricalSale, 0, len(sales))
	for _, hs := range sales {
		d := time.Date(hs.Year, time.Month(hs.Month), 1, 0, 0, 0, 0, loc)
		if !d.Before(cutoff) {
			out = append(out, hs)
		}
	}
	return out
}

// monthlyRevenue merges historical and live revenue into a single map keyed
// by zero-padded "YYYY-MM". Historical rows are summed per key so multiple
// imports for one month don't clobber each other; each order contributes
// exactly once, under its created_at month.
func monthlyRevenue(orders []entity.Order, sales []entity.HistoricalSale) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(sales)+len(orders)/4)
	for _, hs := range sales {
		k := monthKey(hs.Year, int(hs.Month))
		m[k] = m[k].Add(hs.Revenue)
	}
	for _, o := range orders {
		k := monthKey(o.CreatedAt.Year(), int(o.CreatedAt.Month()))
		m[k] = m[k].Add(o.TotalPrice)
	}
	return m
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// revenueTrend orders the month map oldest to newest. Lexicographic key
// order equals chronological order because keys are zero-padded.
func revenueTrend(byMonth map[string]decimal.Decimal) []TrendPoint {
	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	trend := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		var y, m int
		fmt.Sscanf(k, "%d-%d", &y, &m)
		trend = append(trend, TrendPoint{
			Label:   fmt.Sprintf("%s %d", monthAbbrevs[m-1], y),
			Revenue: byMonth[k],
		})
	}
	return trend
}

// topItems sums quantity per distinct item label and keeps the five biggest.
// Ties break alphabetically so the result doesn't depend on input order.
func topItems(items []entity.OrderItem) []ItemCount {
	byName := make(map[string]int, len(items))
	for _, it := range items {
		byName[it.ItemName] += it.Quantity
	}

	counts := make([]ItemCount, 0, len(byName))
	for name, qty := range byName {
		counts = append(counts, ItemCount{Name: name, Quantity: qty})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Quantity != counts[j].Quantity {
			return counts[i].Quantity > counts[j].Quantity
		}
		return counts[i].Name < counts[j].Name
	})

	if len(counts) > topItemsLimit {
		counts = counts[:topItemsLimit]
	}
	return counts
}

// ordersByDay always yields exactly seven entries in canonical Sun..Sat
// order, zero-defaulted.
func ordersByDay(orders []entity.Order) []DayCount {
	var counts [7]int
	for _, o := range orders {
		counts[int(o.CreatedAt.Weekday())]++
	}
	out := make([]DayCount, 7)
	for i := range out {
		out[i] = DayCount{Day: dayAbbrevs[i], Count: counts[i]}
	}
	return out
}

// customerRankings folds the filtered orders into per-customer aggregates
// and returns both sorted views, each truncated to ten entries. The name is
// seeded from the order's denormalized customer_name, falling back to the
// customer record, then to "Unknown"; the phone always comes from the
// customer record.
func customerRankings(orders []entity.Order, customers []entity.Customer) (bySpent, byOrders []CustomerRank) {
	byID := make(map[int]entity.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	agg := make(map[int]*CustomerRank, len(orders))
	for _, o := range orders {
		r, ok := agg[o.CustomerID]
		if !ok {
			name := o.CustomerName
			if name == "" {
				name = byID[o.CustomerID].Name
			}
			if name == "" {
				name = "Unknown"
			}
			agg[o.CustomerID] = &CustomerRank{
				CustomerID: o.CustomerID,
				Name:       name,
				Phone:      byID[o.CustomerID].Phone,
				OrderCount: 1,
				TotalSpent: o.TotalPrice,
			}
			continue
		}
		r.OrderCount++
		r.TotalSpent = r.TotalSpent.Add(o.TotalPrice)
	}

	ranks := make([]CustomerRank, 0, len(agg))
	for _, r := range agg {
		ranks = append(ranks, *r)
	}

	bySpent = append([]CustomerRank(nil), ranks...)
	sort.Slice(bySpent, func(i, j int) bool {
		if !bySpent[i].TotalSpent.Equal(bySpent[j].TotalSpent) {
			return bySpent[i].TotalSpent.GreaterThan(bySpent[j].TotalSpent)
		}
		if bySpent[i].OrderCount != bySpent[j].OrderCount {
			return bySpent[i].OrderCount > bySpent[j].OrderCount
		}
		return bySpent[i].CustomerID < bySpent[j].CustomerID
	})

	byOrders = append([]CustomerRank(nil), ranks...)
	sort.Slice(byOrders, func(i, j int) bool {
		if byOrders[i].OrderCount != byOrders[j].OrderCount {
			return byOrders[i].OrderCount > byOrders[j].OrderCount
		}
		if !byOrders[i].TotalSpent.Equal(byOrders[j].TotalSpent) {
			return byOrders[i].TotalSpent.GreaterThan(byOrders[j].TotalSpent)
		}
		return byOrders[i].CustomerID < byOrders[j].CustomerID
	})

	if len(bySpent) > topCustomersLimit {
		bySpent = bySpent[:topCustomersLimit]
	}
	if len(byOrders) > topCustomersLimit {
		byOrders = byOrders[:topCustomersLimit]
	}
	return bySpent, byOrders
}

// yoyGrowth compares this year's revenue against last year's comparable
// year-to-date window (months up to and including the current month).
func yoyGrowth(byMonth map[string]decimal.Decimal, now time.Time) string {
	thisYear := decimal.Zero
	lastYearToDate := decimal.Zero

	curYear := now.Year()
	curMonth := int(now.Month())

	for k, rev := range byMonth {
		var y, m int
		if _, err := fmt.Sscanf(k, "%d-%d", &y, &m); err != nil {
			continue
		}
		switch y {
		case curYear:
			thisYear = thisYear.Add(rev)
		case curYear - 1:
			if m <= curMonth {
				lastYearToDate = lastYearToDate.Add(rev)
			}
		}
	}

	if lastYearToDate.LessThanOrEqual(decimal.Zero) {
		return "N/A"
	}
	return thisYear.Sub(lastYearToDate).Div(lastYearToDate).Mul(decimal.NewFromInt(100)).StringFixed(1)
}
