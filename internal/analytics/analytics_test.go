package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func order(id, customerID int, name string, price float64, createdAt string) entity.Order {
	return entity.Order{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: name,
		TotalPrice:   decimal.NewFromFloat(price),
		CreatedAt:    day(createdAt),
	}
}

func item(orderID int, name string, qty int) entity.OrderItem {
	return entity.OrderItem{OrderID: orderID, ItemName: name, Quantity: qty}
}

func intPtr(v int) *int { return &v }

func TestCompute_KPIsExample(t *testing.T) {
	in := Input{
		Orders: []entity.Order{
			order(1, 1, "Ana", 100, "2024-01-15"),
			order(2, 2, "Ben", 50, "2024-01-20"),
		},
	}
	now := day("2024-02-10")

	s := Compute(in, nil, now)

	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(150)), "total revenue %s", s.TotalRevenue)
	assert.Equal(t, 2, s.TotalOrders)
	assert.True(t, s.AvgOrderValue.Equal(decimal.NewFromInt(75)), "avg order value %s", s.AvgOrderValue)

	require.Len(t, s.RevenueTrend, 1)
	assert.Equal(t, "Jan 2024", s.RevenueTrend[0].Label)
	assert.True(t, s.RevenueTrend[0].Revenue.Equal(decimal.NewFromInt(150)))
}

func TestCompute_EmptyInput(t *testing.T) {
	s := Compute(Input{}, nil, day("2024-06-01"))

	assert.Equal(t, 0, s.TotalOrders)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.AvgOrderValue.IsZero(), "avg must be zero when there are no orders")
	assert.Empty(t, s.RevenueTrend)
	assert.Empty(t, s.TopItems)
	assert.Equal(t, "N/A", s.YoYGrowth)

	require.Len(t, s.OrdersByDay, 7)
	for _, d := range s.OrdersByDay {
		assert.Equal(t, 0, d.Count)
	}
}

func TestCompute_RangeFilter(t *testing.T) {
	now := day("2024-06-15")
	in := Input{
		Orders: []entity.Order{
			order(1, 1, "Ana", 10, "2024-06-01"), // inside 30d
			order(2, 1, "Ana", 20, "2024-03-01"), // outside 30d, inside 90d
			order(3, 2, "Ben", 40, "2023-06-01"), // outside both
		},
		OrderItems: []entity.OrderItem{
			item(1, "Lasagna", 2),
			item(2, "Tiramisu", 1),
			item(3, "Espresso", 5),
		},
		HistoricalSales: []entity.HistoricalSale{
			{Year: 2024, Month: 6, Revenue: decimal.NewFromInt(100)},
			{Year: 2023, Month: 1, Revenue: decimal.NewFromInt(999)},
		},
		Customers: []entity.Customer{
			{ID: 1, Name: "Ana"}, {ID: 2, Name: "Ben"}, {ID: 3, Name: "Cal"},
		},
	}

	s := Compute(in, intPtr(30), now)

	assert.Equal(t, 1, s.TotalOrders)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(10)))
	// the roster KPI ignores the window
	assert.Equal(t, 3, s.TotalCustomers)
	// only items of surviving orders are aggregated
	require.Len(t, s.TopItems, 1)
	assert.Equal(t, "Lasagna", s.TopItems[0].Name)
	// June 2024 trend entry merges the surviving historical row and order
	require.Len(t, s.RevenueTrend, 1)
	assert.Equal(t, "Jun 2024", s.RevenueTrend[0].Label)
	assert.True(t, s.RevenueTrend[0].Revenue.Equal(decimal.NewFromInt(110)))

	s90 := Compute(in, intPtr(90), now)
	assert.Equal(t, 2, s90.TotalOrders)
}

func TestCompute_CutoffIsLocalMidnight(t *testing.T) {
	// now is mid-day; an order placed early on the cutoff day must survive.
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	in := Input{
		Orders: []entity.Order{
			{ID: 1, CustomerID: 1, TotalPrice: decimal.NewFromInt(5),
				CreatedAt: time.Date(2024, 5, 16, 0, 30, 0, 0, time.UTC)},
		},
	}
	s := Compute(in, intPtr(30), now)
	assert.Equal(t, 1, s.TotalOrders)
}

func TestCompute_InputsNotMutated(t *testing.T) {
	orders := []entity.Order{
		order(2, 1, "Ana", 20, "2024-03-01"),
		order(1, 1, "Ana", 10, "2024-06-01"),
	}
	in := Input{Orders: orders}
	Compute(in, intPtr(30), day("2024-06-15"))

	assert.Equal(t, 2, orders[0].ID, "input slice must not be reordered or filtered in place")
	assert.Equal(t, 1, orders[1].ID)
}

func TestRevenueTrend_MergeAndOrder(t *testing.T) {
	in := Input{
		Orders: []entity.Order{
			order(1, 1, "Ana", 10, "2024-02-03"),
			order(2, 1, "Ana", 15, "2023-12-31"),
		},
		HistoricalSales: []entity.HistoricalSale{
			{Year: 2024, Month: 2, Revenue: decimal.NewFromInt(100)},
			// two rows for the same month get summed, not clobbered
			{Year: 2023, Month: 11, Revenue: decimal.NewFromInt(40)},
			{Year: 2023, Month: 11, Revenue: decimal.NewFromInt(60)},
		},
	}

	s := Compute(in, nil, day("2024-03-01"))

	require.Len(t, s.RevenueTrend, 3)
	assert.Equal(t, "Nov 2023", s.RevenueTrend[0].Label)
	assert.Equal(t, "Dec 2023", s.RevenueTrend[1].Label)
	assert.Equal(t, "Feb 2024", s.RevenueTrend[2].Label)
	assert.True(t, s.RevenueTrend[0].Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.RevenueTrend[2].Revenue.Equal(decimal.NewFromInt(110)))

	// conservation: trend total == historical total + live total
	total := decimal.Zero
	for _, p := range s.RevenueTrend {
		total = total.Add(p.Revenue)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(225)), "trend total %s", total)
}

func TestTopItems_SumsQuantitiesAndTruncates(t *testing.T) {
	items := []entity.OrderItem{
		item(1, "Lasagna", 2),
		item(2, "Lasagna", 3),
		item(1, "Tiramisu", 4),
		item(1, "Espresso", 1),
		item(1, "Focaccia", 1),
		item(1, "Gnocchi", 1),
		item(1, "Arancini", 1),
	}
	orders := []entity.Order{order(1, 1, "Ana", 1, "2024-01-01"), order(2, 1, "Ana", 1, "2024-01-02")}

	s := Compute(Input{Orders: orders, OrderItems: items}, nil, day("2024-02-01"))

	require.Len(t, s.TopItems, 5)
	assert.Equal(t, ItemCount{Name: "Lasagna", Quantity: 5}, s.TopItems[0])
	assert.Equal(t, ItemCount{Name: "Tiramisu", Quantity: 4}, s.TopItems[1])
	// quantity-1 items tie-break alphabetically
	assert.Equal(t, "Arancini", s.TopItems[2].Name)
	assert.Equal(t, "Espresso", s.TopItems[3].Name)
	assert.Equal(t, "Focaccia", s.TopItems[4].Name)

	// non-increasing quantities, and total never exceeds the input total
	sum := 0
	for i, it := range s.TopItems {
		if i > 0 {
			assert.GreaterOrEqual(t, s.TopItems[i-1].Quantity, it.Quantity)
		}
		sum += it.Quantity
	}
	assert.LessOrEqual(t, sum, 13)
}

func TestOrdersByDay(t *testing.T) {
	in := Input{
		Orders: []entity.Order{
			order(1, 1, "Ana", 1, "2024-06-02"), // Sunday
			order(2, 1, "Ana", 1, "2024-06-03"), // Monday
			order(3, 1, "Ana", 1, "2024-06-10"), // Monday
		},
	}
	s := Compute(in, nil, day("2024-06-15"))

	require.Len(t, s.OrdersByDay, 7)
	assert.Equal(t, DayCount{Day: "Sun", Count: 1}, s.OrdersByDay[0])
	assert.Equal(t, DayCount{Day: "Mon", Count: 2}, s.OrdersByDay[1])

	sum := 0
	for _, d := range s.OrdersByDay {
		sum += d.Count
	}
	assert.Equal(t, s.TotalOrders, sum)
}

func TestCustomerRankings(t *testing.T) {
	in := Input{
		Orders: []entity.Order{
			order(1, 1, "Ana", 30, "2024-06-01"),
			order(2, 1, "", 70, "2024-06-02"), // later orders only accumulate
			order(3, 2, "", 80, "2024-06-03"), // falls back to customer record
			order(4, 3, "", 80, "2024-06-04"), // no record at all -> Unknown
		},
		Customers: []entity.Customer{
			{ID: 1, Name: "Ana Rossi", Phone: "+15550001"},
			{ID: 2, Name: "Ben", Phone: "+15550002"},
		},
	}
	s := Compute(in, nil, day("2024-06-15"))

	require.Len(t, s.TopCustomersBySpent, 3)
	top := s.TopCustomersBySpent[0]
	assert.Equal(t, 1, top.CustomerID)
	assert.Equal(t, "Ana", top.Name, "name is seeded from the first order's denormalized name")
	assert.Equal(t, "+15550001", top.Phone)
	assert.Equal(t, 2, top.OrderCount)
	assert.True(t, top.TotalSpent.Equal(decimal.NewFromInt(100)))

	// 2 and 3 both spent 80 with one order each; id breaks the tie
	assert.Equal(t, "Ben", s.TopCustomersBySpent[1].Name)
	assert.Equal(t, "Unknown", s.TopCustomersBySpent[2].Name)
	assert.Equal(t, "", s.TopCustomersBySpent[2].Phone)

	// by order count the two-order customer leads
	assert.Equal(t, 1, s.TopCustomersByOrders[0].CustomerID)
}

func TestCustomerRankings_TieBreaksAndTruncation(t *testing.T) {
	var orders []entity.Order
	// 12 customers, one order each, same spend
	for i := 1; i <= 12; i++ {
		orders = append(orders, order(i, i, fmt.Sprintf("c%02d", i), 10, "2024-06-01"))
	}
	// customer 20: two cheap orders
	orders = append(orders,
		order(100, 20, "heavy", 3, "2024-06-02"),
		order(101, 20, "heavy", 3, "2024-06-03"),
	)

	s := Compute(Input{Orders: orders}, nil, day("2024-06-15"))

	assert.Len(t, s.TopCustomersBySpent, 10)
	assert.Len(t, s.TopCustomersByOrders, 10)
	// equal spend (10 vs 6): the 10-spenders lead by spend...
	assert.Equal(t, 1, s.TopCustomersBySpent[0].CustomerID)
	// ...but the repeat customer leads by order count
	assert.Equal(t, 20, s.TopCustomersByOrders[0].CustomerID)
	assert.Equal(t, 2, s.TopCustomersByOrders[0].OrderCount)
}

func TestYoYGrowth(t *testing.T) {
	now := day("2024-06-15")

	t.Run("n/a without prior year revenue", func(t *testing.T) {
		s := Compute(Input{Orders: []entity.Order{order(1, 1, "Ana", 10, "2024-01-01")}}, nil, now)
		assert.Equal(t, "N/A", s.YoYGrowth)
	})

	t.Run("year to date comparison", func(t *testing.T) {
		in := Input{
			HistoricalSales: []entity.HistoricalSale{
				{Year: 2023, Month: 3, Revenue: decimal.NewFromInt(100)},
				// months after June 2023 are outside the comparable window
				{Year: 2023, Month: 9, Revenue: decimal.NewFromInt(500)},
			},
			Orders: []entity.Order{order(1, 1, "Ana", 150, "2024-02-01")},
		}
		s := Compute(in, nil, now)
		// (150 - 100) / 100 * 100 = 50.0
		assert.Equal(t, "50.0", s.YoYGrowth)
	})

	t.Run("negative growth", func(t *testing.T) {
		in := Input{
			HistoricalSales: []entity.HistoricalSale{{Year: 2023, Month: 1, Revenue: decimal.NewFromInt(200)}},
			Orders:          []entity.Order{order(1, 1, "Ana", 150, "2024-02-01")},
		}
		s := Compute(in, nil, now)
		assert.Equal(t, "-25.0", s.YoYGrowth)
	})

	t.Run("uses unfiltered data under a display range", func(t *testing.T) {
		in := Input{
			HistoricalSales: []entity.HistoricalSale{{Year: 2023, Month: 1, Revenue: decimal.NewFromInt(100)}},
			Orders:          []entity.Order{order(1, 1, "Ana", 150, "2024-02-01")},
		}
		s := Compute(in, intPtr(30), now)
		assert.Equal(t, 0, s.TotalOrders, "order is outside the 30 day window")
		assert.Equal(t, "50.0", s.YoYGrowth, "YoY still sees the full history")
	})
}
