package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/handler"
)

type mockSettingsStore struct {
	settings map[string]database.Setting
}

func newMockSettingsStore() *mockSettingsStore {
	return &mockSettingsStore{settings: make(map[string]database.Setting)}
}

func (m *mockSettingsStore) GetSetting(_ context.Context, key string) (database.Setting, error) {
	s, ok := m.settings[key]
	if !ok {
		return database.Setting{}, pgx.ErrNoRows
	}
	return s, nil
}

func (m *mockSettingsStore) UpsertSetting(_ context.Context, arg database.UpsertSettingParams) (database.Setting, error) {
	s := database.Setting{Key: arg.Key, Payload: arg.Payload}
	m.settings[arg.Key] = s
	return s, nil
}

func setupSettingsRouter(store *mockSettingsStore) chi.Router {
	r := chi.NewRouter()
	h := handler.NewSettingsHandler(store)
	r.Route("/settings", h.RegisterRoutes)
	return r
}

func decodeSettingsResponse(t *testing.T, rr *httptest.ResponseRecorder) (string, map[string]interface{}) {
	t.Helper()
	var resp struct {
		Key     string          `json:"key"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(resp.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return resp.Key, payload
}

func TestSettingsGet_DefaultsWhenUnset(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	rr := doRequest(t, router, http.MethodGet, "/settings/store", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	key, payload := decodeSettingsResponse(t, rr)
	if key != "store" {
		t.Errorf("expected key store, got %q", key)
	}
	if payload["store_name"] != "Seruni Mart" {
		t.Errorf("expected default store_name, got %v", payload["store_name"])
	}
	if payload["currency"] != "IDR" {
		t.Errorf("expected default currency IDR, got %v", payload["currency"])
	}
}

func TestSettingsGet_NotificationDefaults(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	rr := doRequest(t, router, http.MethodGet, "/settings/notifications", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	_, payload := decodeSettingsResponse(t, rr)
	if payload["email_on_new_order"] != true || payload["email_on_low_stock"] != true {
		t.Errorf("expected order/low-stock emails on by default, got %v", payload)
	}
	if payload["daily_sales_summary"] != false {
		t.Errorf("expected daily summary off by default, got %v", payload["daily_sales_summary"])
	}
}

func TestSettingsGet_SecurityDefaults(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	rr := doRequest(t, router, http.MethodGet, "/settings/security", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	_, payload := decodeSettingsResponse(t, rr)
	if payload["session_timeout_minutes"] != float64(60) {
		t.Errorf("expected default timeout 60, got %v", payload["session_timeout_minutes"])
	}
	if payload["require_strong_password"] != true {
		t.Errorf("expected strong passwords required by default")
	}
}

func TestSettingsGet_UnknownKey(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	rr := doRequest(t, router, http.MethodGet, "/settings/theme", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSettingsPut_RoundTrip(t *testing.T) {
	store := newMockSettingsStore()
	router := setupSettingsRouter(store)

	body := map[string]interface{}{
		"store_name": "Toko Seruni Cabang Timur",
		"address":    "Jl. Melati No. 12, Surabaya",
		"phone":      "+62 31 555 0199",
		"email":      "halo@serunimart.com",
		"currency":   "IDR",
		"tax_id":     "01.234.567.8-911.000",
	}
	rr := doRequest(t, router, http.MethodPut, "/settings/store", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodGet, "/settings/store", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	_, payload := decodeSettingsResponse(t, rr)
	if payload["store_name"] != "Toko Seruni Cabang Timur" {
		t.Errorf("expected saved store_name, got %v", payload["store_name"])
	}
	if payload["tax_id"] != "01.234.567.8-911.000" {
		t.Errorf("expected saved tax_id, got %v", payload["tax_id"])
	}
}

func TestSettingsPut_PartialBodyNormalized(t *testing.T) {
	store := newMockSettingsStore()
	router := setupSettingsRouter(store)

	rr := doRequest(t, router, http.MethodPut, "/settings/store", map[string]interface{}{
		"store_name": "Seruni Mart Pusat",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// Omitted fields keep their defaults in the stored document.
	_, payload := decodeSettingsResponse(t, rr)
	if payload["store_name"] != "Seruni Mart Pusat" {
		t.Errorf("expected saved store_name, got %v", payload["store_name"])
	}
	if payload["currency"] != "IDR" {
		t.Errorf("expected default currency retained, got %v", payload["currency"])
	}
}

func TestSettingsPut_UnknownFieldRejected(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	rr := doRequest(t, router, http.MethodPut, "/settings/store", map[string]interface{}{
		"store_name": "Seruni Mart",
		"logo_url":   "https://example.com/logo.png",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSettingsPut_UnknownKey(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	rr := doRequest(t, router, http.MethodPut, "/settings/theme", map[string]interface{}{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSettingsPut_InvalidSessionTimeout(t *testing.T) {
	router := setupSettingsRouter(newMockSettingsStore())

	for _, timeout := range []int{0, -15} {
		rr := doRequest(t, router, http.MethodPut, "/settings/security", map[string]interface{}{
			"session_timeout_minutes": timeout,
		})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("timeout %d: expected 400, got %d", timeout, rr.Code)
		}
	}
}

func TestSettingsPut_SecurityValid(t *testing.T) {
	store := newMockSettingsStore()
	router := setupSettingsRouter(store)

	rr := doRequest(t, router, http.MethodPut, "/settings/security", map[string]interface{}{
		"session_timeout_minutes": 30,
		"require_strong_password": false,
		"two_factor_enabled":      true,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	_, payload := decodeSettingsResponse(t, rr)
	if payload["session_timeout_minutes"] != float64(30) {
		t.Errorf("expected timeout 30, got %v", payload["session_timeout_minutes"])
	}
	if payload["two_factor_enabled"] != true {
		t.Errorf("expected two factor enabled")
	}
}
