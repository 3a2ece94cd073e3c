package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/serunimart/api/internal/cache"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/metrics"
	"github.com/shopspring/decimal"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 60 * time.Second

	recentOrderCount = 5
	dailyChartDays   = 7
	monthlyChartLen  = 6
)

// DashboardStore defines the database methods needed by dashboard handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type DashboardStore interface {
	ListOrdersSince(ctx context.Context, createdAt time.Time) ([]database.Order, error)
	ListOrders(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error)
	ListProducts(ctx context.Context) ([]database.Product, error)
}

// DashboardHandler serves the summary card and the analytics page.
type DashboardHandler struct {
	store DashboardStore
	cache cache.SummaryCache
	now   func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store DashboardStore, c cache.SummaryCache) *DashboardHandler {
	return &DashboardHandler{store: store, cache: c, now: time.Now}
}

// RegisterRoutes registers dashboard endpoints on the given Chi router.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/analytics", h.Analytics)
}

// --- Response types ---

type summaryResponse struct {
	TodayRevenue      string               `json:"today_revenue"`
	TodayOrders       int                  `json:"today_orders"`
	TodayProfit       string               `json:"today_profit"`
	AverageOrderValue string               `json:"average_order_value"`
	TotalProducts     int                  `json:"total_products"`
	StockLevels       metrics.StockLevels  `json:"stock_levels"`
	OrdersByStatus    map[string]int       `json:"orders_by_status"`
	Daily             []metrics.DailyPoint `json:"daily"`
	RecentOrders      []orderResponse      `json:"recent_orders"`
}

type analyticsResponse struct {
	Revenue           string                 `json:"revenue"`
	RevenueGrowth     string                 `json:"revenue_growth"`
	Orders            int                    `json:"orders"`
	OrdersGrowth      string                 `json:"orders_growth"`
	Profit            string                 `json:"profit"`
	AverageOrderValue string                 `json:"average_order_value"`
	Daily             []metrics.DailyPoint   `json:"daily"`
	Monthly           []metrics.MonthlyPoint `json:"monthly"`
}

// --- Handlers ---

// Summary returns today's headline numbers, stock levels, the order status
// breakdown and the most recent orders. The rendered JSON is cached briefly
// since the card is polled by every open dashboard tab.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if raw, ok, err := h.cache.Get(r.Context(), summaryCacheKey); err != nil {
		log.Printf("ERROR: summary cache get: %v", err)
	} else if ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(raw)
		return
	}

	now := h.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	chartStart := startOfDay.AddDate(0, 0, 1-dailyChartDays)

	// One read covers both today's headline numbers and the 7-day chart.
	weekOrders, err := h.store.ListOrdersSince(r.Context(), chartStart)
	if err != nil {
		log.Printf("ERROR: list orders for summary: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	var todayOrders []database.Order
	for _, o := range weekOrders {
		if !o.CreatedAt.Before(startOfDay) {
			todayOrders = append(todayOrders, o)
		}
	}

	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		log.Printf("ERROR: list products: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	recent, err := h.store.ListOrders(r.Context(), database.ListOrdersParams{
		Limit: recentOrderCount,
	})
	if err != nil {
		log.Printf("ERROR: list recent orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	stats := toOrderStats(todayOrders)
	revenue := metrics.Revenue(stats)

	stocks := make([]int32, len(products))
	for i, p := range products {
		stocks[i] = p.Stock
	}

	resp := summaryResponse{
		TodayRevenue:      revenue.StringFixed(2),
		TodayOrders:       len(todayOrders),
		TodayProfit:       metrics.Profit(revenue, metrics.SummaryCostRatio).StringFixed(2),
		AverageOrderValue: metrics.AverageOrderValue(revenue, len(todayOrders)).StringFixed(2),
		TotalProducts:     len(products),
		StockLevels:       metrics.ClassifyStock(stocks),
		OrdersByStatus:    metrics.StatusCounts(stats),
		Daily:             metrics.DailyBuckets(toOrderStats(weekOrders), now, dailyChartDays),
		RecentOrders:      make([]orderResponse, len(recent)),
	}
	for i, o := range recent {
		resp.RecentOrders[i] = toOrderResponse(o)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("ERROR: marshal summary: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if err := h.cache.Set(r.Context(), summaryCacheKey, raw, summaryCacheTTL); err != nil {
		log.Printf("ERROR: summary cache set: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// Analytics returns the trailing revenue charts plus growth against the
// previous period of the same length.
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	monthsAnchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	chartStart := monthsAnchor.AddDate(0, 1-monthlyChartLen, 0)
	periodStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	since := previousStart
	if chartStart.Before(since) {
		since = chartStart
	}

	orders, err := h.store.ListOrdersSince(r.Context(), since)
	if err != nil {
		log.Printf("ERROR: list orders for analytics: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	var current, previous []metrics.OrderStat
	for _, o := range orders {
		stat := toOrderStat(o)
		switch {
		case !o.CreatedAt.Before(periodStart):
			current = append(current, stat)
		case !o.CreatedAt.Before(previousStart):
			previous = append(previous, stat)
		}
	}

	revenue := metrics.Revenue(current)
	prevRevenue := metrics.Revenue(previous)
	ordersGrowth := metrics.Growth(
		decimal.NewFromInt(int64(len(current))),
		decimal.NewFromInt(int64(len(previous))),
	)

	all := toOrderStats(orders)
	resp := analyticsResponse{
		Revenue:           revenue.StringFixed(2),
		RevenueGrowth:     metrics.Growth(revenue, prevRevenue).StringFixed(2),
		Orders:            len(current),
		OrdersGrowth:      ordersGrowth.StringFixed(2),
		Profit:            metrics.Profit(revenue, metrics.AnalyticsCostRatio).StringFixed(2),
		AverageOrderValue: metrics.AverageOrderValue(revenue, len(current)).StringFixed(2),
		Daily:             metrics.DailyBuckets(all, now, dailyChartDays),
		Monthly:           metrics.MonthlyBuckets(all, now, monthlyChartLen),
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- Helpers ---

func toOrderStat(o database.Order) metrics.OrderStat {
	total, _ := decimal.NewFromString(numericToString(o.FinalTotal))
	return metrics.OrderStat{
		CreatedAt:  o.CreatedAt,
		FinalTotal: total,
		Status:     o.Status,
	}
}

func toOrderStats(orders []database.Order) []metrics.OrderStat {
	stats := make([]metrics.OrderStat, len(orders))
	for i, o := range orders {
		stats[i] = toOrderStat(o)
	}
	return stats
}
