// Package metrics reduces order and product rows into the numbers the
// dashboard renders. All reducers are pure so handlers can feed them rows
// from the database or tests can feed them literals.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cost ratios used to estimate profit from revenue. The summary card and the
// analytics page were launched at different times with different assumptions
// and both numbers are still what their consumers expect.
var (
	SummaryCostRatio   = decimal.NewFromFloat(0.6)
	AnalyticsCostRatio = decimal.NewFromFloat(0.8)
)

// Stock level boundaries.
const lowStockThreshold = 10

// OrderStat is the slice of an order the reducers need.
type OrderStat struct {
	CreatedAt  time.Time
	FinalTotal decimal.Decimal
	Status     string
}

// Revenue sums FinalTotal over all orders.
func Revenue(orders []OrderStat) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.FinalTotal)
	}
	return total.Round(2)
}

// Profit estimates profit as revenue times (1 - costRatio).
func Profit(revenue, costRatio decimal.Decimal) decimal.Decimal {
	return revenue.Mul(decimal.NewFromInt(1).Sub(costRatio)).Round(2)
}

// AverageOrderValue returns revenue / count, or zero when there are no
// orders.
func AverageOrderValue(revenue decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Growth returns the percentage change from previous to current. When the
// previous period is zero there is no meaningful baseline, so it reports
// zero rather than infinity.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
}

// StockLevels is the inventory breakdown for the summary card.
type StockLevels struct {
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}

// ClassifyStock buckets product stock counts. Zero is out of stock, one
// through ten is low, anything above is in stock.
func ClassifyStock(stocks []int32) StockLevels {
	var levels StockLevels
	for _, s := range stocks {
		switch {
		case s <= 0:
			levels.OutOfStock++
		case s <= lowStockThreshold:
			levels.LowStock++
		default:
			levels.InStock++
		}
	}
	return levels
}

// DailyPoint is one day of the trailing revenue chart.
type DailyPoint struct {
	Date       string          `json:"date"`
	OrderCount int             `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// DailyBuckets groups orders into the last `days` calendar days ending at
// now, oldest first. Days without orders appear with zero values so the
// chart axis stays continuous.
func DailyBuckets(orders []OrderStat, now time.Time, days int) []DailyPoint {
	points := make([]DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1)
		key := day.Format("2006-01-02")
		points[i] = DailyPoint{Date: key, Revenue: decimal.Zero}
		index[key] = i
	}
	for _, o := range orders {
		key := o.CreatedAt.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].OrderCount++
		points[i].Revenue = points[i].Revenue.Add(o.FinalTotal)
	}
	return points
}

// MonthlyPoint is one month of the trailing sales chart.
type MonthlyPoint struct {
	Month      string          `json:"month"`
	OrderCount int             `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
	Profit     decimal.Decimal `json:"profit"`
}

// MonthlyBuckets groups orders into the last `months` calendar months ending
// at now's month, oldest first, zero-filling empty months. Profit uses the
// analytics cost ratio.
func MonthlyBuckets(orders []OrderStat, now time.Time, months int) []MonthlyPoint {
	points := make([]MonthlyPoint, months)
	index := make(map[string]int, months)
	// Anchor to the first of the month so AddDate never overflows into the
	// wrong month on the 29th-31st.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < months; i++ {
		m := anchor.AddDate(0, i-months+1, 0)
		key := m.Format("2006-01")
		points[i] = MonthlyPoint{Month: key, Revenue: decimal.Zero, Profit: decimal.Zero}
		index[key] = i
	}
	for _, o := range orders {
		key := o.CreatedAt.Format("2006-01")
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].OrderCount++
		points[i].Revenue = points[i].Revenue.Add(o.FinalTotal)
	}
	for i := range points {
		points[i].Profit = Profit(points[i].Revenue, AnalyticsCostRatio)
	}
	return points
}

// StatusCounts tallies orders per status.
func StatusCounts(orders []OrderStat) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}
