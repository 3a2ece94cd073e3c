package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/enum"
	"github.com/serunimart/api/internal/handler"
)

// --- Mock store ---

type mockCustomerStore struct {
	customers map[uuid.UUID]database.Customer // keyed by customer ID
	orders    map[uuid.UUID][]database.Order  // keyed by customer ID
}

func newMockCustomerStore() *mockCustomerStore {
	return &mockCustomerStore{
		customers: make(map[uuid.UUID]database.Customer),
		orders:    make(map[uuid.UUID][]database.Order),
	}
}

func (m *mockCustomerStore) ListCustomers(_ context.Context, arg database.ListCustomersParams) ([]database.Customer, error) {
	var result []database.Customer
	for _, c := range m.customers {
		if arg.Search != "" &&
			!strings.Contains(strings.ToLower(c.Name), strings.ToLower(arg.Search)) &&
			!strings.Contains(c.Phone, arg.Search) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *mockCustomerStore) GetCustomer(_ context.Context, id uuid.UUID) (database.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return database.Customer{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockCustomerStore) ListOrdersByCustomer(_ context.Context, customerID pgtype.UUID) ([]database.Order, error) {
	return m.orders[uuid.UUID(customerID.Bytes)], nil
}

func (m *mockCustomerStore) addCustomer(name, phone string) database.Customer {
	c := database.Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.customers[c.ID] = c
	return c
}

// --- Helpers ---

func setupCustomerRouter(store *mockCustomerStore) *chi.Mux {
	h := handler.NewCustomerHandler(store)
	r := chi.NewRouter()
	r.Route("/customers", h.RegisterRoutes)
	return r
}

func decodeCustomerListResponse(t *testing.T, body string) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// --- List tests ---

func TestCustomerList_All(t *testing.T) {
	store := newMockCustomerStore()
	store.addCustomer("Budi Santoso", "081234567890")
	store.addCustomer("Siti Rahma", "081298765432")

	router := setupCustomerRouter(store)
	rr := doRequest(t, router, "GET", "/customers", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeCustomerListResponse(t, rr.Body.String())
	if len(resp) != 2 {
		t.Errorf("expected 2 customers, got %d", len(resp))
	}
}

func TestCustomerList_Search(t *testing.T) {
	store := newMockCustomerStore()
	store.addCustomer("Budi Santoso", "081234567890")
	store.addCustomer("Siti Rahma", "081298765432")

	router := setupCustomerRouter(store)
	rr := doRequest(t, router, "GET", "/customers?search=budi", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	resp := decodeCustomerListResponse(t, rr.Body.String())
	if len(resp) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(resp))
	}
	if resp[0]["name"] != "Budi Santoso" {
		t.Errorf("name: got %v, want Budi Santoso", resp[0]["name"])
	}
}

func TestCustomerList_InvalidLimit(t *testing.T) {
	store := newMockCustomerStore()
	router := setupCustomerRouter(store)

	rr := doRequest(t, router, "GET", "/customers?limit=-3", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Get tests ---

func TestCustomerGet_Valid(t *testing.T) {
	store := newMockCustomerStore()
	customer := store.addCustomer("Budi Santoso", "081234567890")

	router := setupCustomerRouter(store)
	rr := doRequest(t, router, "GET", "/customers/"+customer.ID.String(), nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["name"] != "Budi Santoso" {
		t.Errorf("name: got %v, want Budi Santoso", resp["name"])
	}
	if resp["phone"] != "081234567890" {
		t.Errorf("phone: got %v, want 081234567890", resp["phone"])
	}
	// Email was never set, so it renders as null.
	if resp["email"] != nil {
		t.Errorf("email: got %v, want null", resp["email"])
	}
}

func TestCustomerGet_NotFound(t *testing.T) {
	store := newMockCustomerStore()
	router := setupCustomerRouter(store)

	rr := doRequest(t, router, "GET", "/customers/"+uuid.New().String(), nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestCustomerGet_InvalidID(t *testing.T) {
	store := newMockCustomerStore()
	router := setupCustomerRouter(store)

	rr := doRequest(t, router, "GET", "/customers/not-a-uuid", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Order history tests ---

func TestCustomerOrders_Valid(t *testing.T) {
	store := newMockCustomerStore()
	customer := store.addCustomer("Budi Santoso", "081234567890")
	store.orders[customer.ID] = []database.Order{
		{
			ID:            uuid.New(),
			OrderNumber:   "SRN-001",
			CustomerID:    pgtype.UUID{Bytes: customer.ID, Valid: true},
			CustomerName:  customer.Name,
			CustomerPhone: customer.Phone,
			PaymentMethod: enum.PaymentMethodCOD,
			Status:        enum.OrderStatusDelivered,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		},
	}

	router := setupCustomerRouter(store)
	rr := doRequest(t, router, "GET", "/customers/"+customer.ID.String()+"/orders", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeCustomerListResponse(t, rr.Body.String())
	if len(resp) != 1 {
		t.Fatalf("expected 1 order, got %d", len(resp))
	}
	if resp[0]["order_number"] != "SRN-001" {
		t.Errorf("order_number: got %v, want SRN-001", resp[0]["order_number"])
	}
}

func TestCustomerOrders_EmptyHistory(t *testing.T) {
	store := newMockCustomerStore()
	customer := store.addCustomer("Budi Santoso", "081234567890")

	router := setupCustomerRouter(store)
	rr := doRequest(t, router, "GET", "/customers/"+customer.ID.String()+"/orders", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	resp := decodeCustomerListResponse(t, rr.Body.String())
	if len(resp) != 0 {
		t.Errorf("expected empty history, got %d orders", len(resp))
	}
}

func TestCustomerOrders_UnknownCustomer(t *testing.T) {
	store := newMockCustomerStore()
	router := setupCustomerRouter(store)

	rr := doRequest(t, router, "GET", "/customers/"+uuid.New().String()+"/orders", nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}
