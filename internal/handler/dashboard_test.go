package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/cache"
	"github.com/serunimart/api/internal/database"
	"github.com/shopspring/decimal"
)

// White-box tests so the clock can be pinned; everything else in this
// package is tested through the public surface.

type dashStore struct {
	orders     []database.Order
	products   []database.Product
	sinceCalls int
}

func (s *dashStore) ListOrdersSince(_ context.Context, createdAt time.Time) ([]database.Order, error) {
	s.sinceCalls++
	var out []database.Order
	for _, o := range s.orders {
		if !o.CreatedAt.Before(createdAt) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *dashStore) ListOrders(_ context.Context, arg database.ListOrdersParams) ([]database.Order, error) {
	out := make([]database.Order, len(s.orders))
	copy(out, s.orders)
	if arg.Limit > 0 && int(arg.Limit) < len(out) {
		out = out[:arg.Limit]
	}
	return out, nil
}

func (s *dashStore) ListProducts(_ context.Context) ([]database.Product, error) {
	return s.products, nil
}

type memorySummaryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemorySummaryCache() *memorySummaryCache {
	return &memorySummaryCache{entries: make(map[string][]byte)}
}

func (c *memorySummaryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := c.entries[key]
	return raw, ok, nil
}

func (c *memorySummaryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func dashNumeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		t.Fatalf("scan numeric %q: %v", s, err)
	}
	return n
}

func dashOrder(t *testing.T, number, status, total string, createdAt time.Time) database.Order {
	t.Helper()
	return database.Order{
		ID:          uuid.New(),
		OrderNumber: number,
		Status:      status,
		FinalTotal:  dashNumeric(t, total),
		CreatedAt:   createdAt,
	}
}

func newDashboardHandlerAt(store DashboardStore, c cache.SummaryCache, now time.Time) *DashboardHandler {
	h := NewDashboardHandler(store, c)
	h.now = func() time.Time { return now }
	return h
}

func dashGet(t *testing.T, h *DashboardHandler, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/dashboard", h.RegisterRoutes)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestDashboardSummary_Math(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	store := &dashStore{
		orders: []database.Order{
			dashOrder(t, "SRN-003", "PENDING", "60000", now.Add(-time.Hour)),
			dashOrder(t, "SRN-002", "DELIVERED", "40000", now.Add(-3*time.Hour)),
			dashOrder(t, "SRN-001", "DELIVERED", "99999", now.Add(-36*time.Hour)),
		},
		products: []database.Product{
			{ID: uuid.New(), Name: "Green Tea", Stock: 50},
			{ID: uuid.New(), Name: "Robusta Coffee", Stock: 5},
			{ID: uuid.New(), Name: "Rock Sugar", Stock: 0},
		},
	}
	h := newDashboardHandlerAt(store, cache.NoopSummaryCache{}, now)

	rr := dashGet(t, h, "/dashboard/summary")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp summaryResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.TodayRevenue != "100000.00" {
		t.Errorf("expected today_revenue 100000.00, got %s", resp.TodayRevenue)
	}
	if resp.TodayOrders != 2 {
		t.Errorf("expected 2 orders today, got %d", resp.TodayOrders)
	}
	if resp.TodayProfit != "40000.00" {
		t.Errorf("expected today_profit 40000.00, got %s", resp.TodayProfit)
	}
	if resp.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", resp.TotalProducts)
	}
	if resp.StockLevels.InStock != 1 || resp.StockLevels.LowStock != 1 || resp.StockLevels.OutOfStock != 1 {
		t.Errorf("unexpected stock levels: %+v", resp.StockLevels)
	}
	if resp.OrdersByStatus["PENDING"] != 1 || resp.OrdersByStatus["DELIVERED"] != 1 {
		t.Errorf("unexpected status counts: %v", resp.OrdersByStatus)
	}
	if resp.AverageOrderValue != "50000.00" {
		t.Errorf("expected average_order_value 50000.00, got %s", resp.AverageOrderValue)
	}
	if len(resp.Daily) != 7 {
		t.Fatalf("expected 7 daily points, got %d", len(resp.Daily))
	}
	if resp.Daily[6].Date != "2026-08-15" {
		t.Errorf("expected last daily point 2026-08-15, got %s", resp.Daily[6].Date)
	}
	// Yesterday's order lands in the chart even though it is excluded from
	// today's headline numbers.
	if resp.Daily[5].Date != "2026-08-14" || !resp.Daily[5].Revenue.Equal(decimalFromString(t, "99999")) {
		t.Errorf("unexpected daily point for 2026-08-14: %+v", resp.Daily[5])
	}
	if resp.Daily[6].OrderCount != 2 || !resp.Daily[6].Revenue.Equal(decimalFromString(t, "100000")) {
		t.Errorf("unexpected daily point for today: %+v", resp.Daily[6])
	}
	if len(resp.RecentOrders) != 3 {
		t.Fatalf("expected 3 recent orders, got %d", len(resp.RecentOrders))
	}
	if resp.RecentOrders[0].OrderNumber != "SRN-003" {
		t.Errorf("expected most recent order first, got %s", resp.RecentOrders[0].OrderNumber)
	}
}

func TestDashboardSummary_CacheHit(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	c := newMemorySummaryCache()
	cached := []byte(`{"today_revenue":"123.00"}`)
	c.entries[summaryCacheKey] = cached

	store := &dashStore{}
	h := newDashboardHandlerAt(store, c, now)

	rr := dashGet(t, h, "/dashboard/summary")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != string(cached) {
		t.Errorf("expected cached payload verbatim, got %s", rr.Body.String())
	}
	if store.sinceCalls != 0 {
		t.Errorf("cache hit should not touch the store, got %d calls", store.sinceCalls)
	}
}

func TestDashboardSummary_PopulatesCache(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	c := newMemorySummaryCache()
	store := &dashStore{
		orders: []database.Order{
			dashOrder(t, "SRN-001", "PENDING", "50000", now.Add(-time.Hour)),
		},
	}
	h := newDashboardHandlerAt(store, c, now)

	first := dashGet(t, h, "/dashboard/summary")
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	if c.sets != 1 {
		t.Fatalf("expected the summary to be cached, got %d sets", c.sets)
	}

	second := dashGet(t, h, "/dashboard/summary")
	if second.Body.String() != first.Body.String() {
		t.Error("expected identical payload from cache")
	}
	if store.sinceCalls != 1 {
		t.Errorf("expected one store read across both requests, got %d", store.sinceCalls)
	}
}

func TestDashboardAnalytics_GrowthAndAverages(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	store := &dashStore{
		orders: []database.Order{
			dashOrder(t, "SRN-003", "DELIVERED", "100000", now.AddDate(0, 0, -2)),
			dashOrder(t, "SRN-002", "DELIVERED", "50000", now.AddDate(0, 0, -10)),
			dashOrder(t, "SRN-001", "DELIVERED", "100000", now.AddDate(0, 0, -45)),
		},
	}
	h := newDashboardHandlerAt(store, cache.NoopSummaryCache{}, now)

	rr := dashGet(t, h, "/dashboard/analytics")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp analyticsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Revenue != "150000.00" {
		t.Errorf("expected revenue 150000.00, got %s", resp.Revenue)
	}
	if resp.RevenueGrowth != "50.00" {
		t.Errorf("expected revenue growth 50.00, got %s", resp.RevenueGrowth)
	}
	if resp.Orders != 2 {
		t.Errorf("expected 2 orders, got %d", resp.Orders)
	}
	if resp.OrdersGrowth != "100.00" {
		t.Errorf("expected orders growth 100.00, got %s", resp.OrdersGrowth)
	}
	if resp.Profit != "30000.00" {
		t.Errorf("expected profit 30000.00, got %s", resp.Profit)
	}
	if resp.AverageOrderValue != "75000.00" {
		t.Errorf("expected AOV 75000.00, got %s", resp.AverageOrderValue)
	}
}

func TestDashboardAnalytics_ZeroBaseline(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	h := newDashboardHandlerAt(&dashStore{}, cache.NoopSummaryCache{}, now)

	rr := dashGet(t, h, "/dashboard/analytics")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp analyticsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.RevenueGrowth != "0.00" || resp.OrdersGrowth != "0.00" {
		t.Errorf("expected flat growth with no baseline, got %s / %s", resp.RevenueGrowth, resp.OrdersGrowth)
	}
	if resp.AverageOrderValue != "0.00" {
		t.Errorf("expected AOV 0.00 with no orders, got %s", resp.AverageOrderValue)
	}
}

func TestDashboardAnalytics_ChartsZeroFilled(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	store := &dashStore{
		orders: []database.Order{
			dashOrder(t, "SRN-002", "DELIVERED", "40000", now.Add(-time.Hour)),
			dashOrder(t, "SRN-001", "DELIVERED", "60000", now.AddDate(0, 0, -2)),
		},
	}
	h := newDashboardHandlerAt(store, cache.NoopSummaryCache{}, now)

	rr := dashGet(t, h, "/dashboard/analytics")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp analyticsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Daily) != dailyChartDays {
		t.Fatalf("expected %d daily points, got %d", dailyChartDays, len(resp.Daily))
	}
	last := resp.Daily[len(resp.Daily)-1]
	if last.Date != "2026-08-15" {
		t.Errorf("expected the chart to end today, got %s", last.Date)
	}
	if last.OrderCount != 1 || !last.Revenue.Equal(decimalFromString(t, "40000")) {
		t.Errorf("unexpected final day point: %+v", last)
	}
	empty := resp.Daily[len(resp.Daily)-2]
	if empty.OrderCount != 0 || !empty.Revenue.IsZero() {
		t.Errorf("expected zero-filled day, got %+v", empty)
	}

	if len(resp.Monthly) != monthlyChartLen {
		t.Fatalf("expected %d monthly points, got %d", monthlyChartLen, len(resp.Monthly))
	}
	if resp.Monthly[0].Month != "2026-03" || resp.Monthly[len(resp.Monthly)-1].Month != "2026-08" {
		t.Errorf("unexpected month range: %s .. %s", resp.Monthly[0].Month, resp.Monthly[len(resp.Monthly)-1].Month)
	}
	if !resp.Monthly[len(resp.Monthly)-1].Revenue.Equal(decimalFromString(t, "100000")) {
		t.Errorf("expected this month's revenue 100000, got %s", resp.Monthly[len(resp.Monthly)-1].Revenue)
	}
}
