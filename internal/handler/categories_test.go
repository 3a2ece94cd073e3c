package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/handler"
)

// --- Mock store ---

type mockCategoryStore struct {
	categories map[uuid.UUID]database.Category // keyed by category ID
}

func newMockCategoryStore() *mockCategoryStore {
	return &mockCategoryStore{categories: make(map[uuid.UUID]database.Category)}
}

func (m *mockCategoryStore) ListCategories(_ context.Context) ([]database.Category, error) {
	var result []database.Category
	for _, c := range m.categories {
		if c.IsActive {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCategoryStore) GetCategory(_ context.Context, id uuid.UUID) (database.Category, error) {
	c, ok := m.categories[id]
	if !ok || !c.IsActive {
		return database.Category{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockCategoryStore) CreateCategory(_ context.Context, arg database.CreateCategoryParams) (database.Category, error) {
	c := database.Category{
		ID:           uuid.New(),
		Name:         arg.Name,
		Description:  arg.Description,
		ImageUrl:     arg.ImageUrl,
		SerialNumber: arg.SerialNumber,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	m.categories[c.ID] = c
	return c, nil
}

func (m *mockCategoryStore) UpdateCategory(_ context.Context, arg database.UpdateCategoryParams) (database.Category, error) {
	c, ok := m.categories[arg.ID]
	if !ok || !c.IsActive {
		return database.Category{}, pgx.ErrNoRows
	}
	c.Name = arg.Name
	c.Description = arg.Description
	c.ImageUrl = arg.ImageUrl
	c.SerialNumber = arg.SerialNumber
	m.categories[c.ID] = c
	return c, nil
}

func (m *mockCategoryStore) SoftDeleteCategory(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	c, ok := m.categories[id]
	if !ok || !c.IsActive {
		return uuid.Nil, pgx.ErrNoRows
	}
	c.IsActive = false
	m.categories[c.ID] = c
	return c.ID, nil
}

// --- Helpers ---

func setupCategoryRouter(store *mockCategoryStore) *chi.Mux {
	h := handler.NewCategoryHandler(store)
	r := chi.NewRouter()
	r.Route("/categories", h.RegisterRoutes)
	return r
}

func decodeCategoryResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeCategoryListResponse(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func serial(n int32) pgtype.Int4 {
	return pgtype.Int4{Int32: n, Valid: true}
}

// --- List tests ---

func TestCategoryList_Empty(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "GET", "/categories", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeCategoryListResponse(t, rr)
	if len(resp) != 0 {
		t.Errorf("expected empty list, got %d items", len(resp))
	}
}

func TestCategoryList_SerialOrdering(t *testing.T) {
	store := newMockCategoryStore()
	now := time.Now()

	// Two numbered categories out of insertion order, plus two unnumbered
	// ones created at different times.
	idSecond := uuid.New()
	idFirst := uuid.New()
	idOldUnnumbered := uuid.New()
	idNewUnnumbered := uuid.New()
	store.categories[idSecond] = database.Category{
		ID: idSecond, Name: "Snacks", SerialNumber: serial(2), IsActive: true, CreatedAt: now,
	}
	store.categories[idFirst] = database.Category{
		ID: idFirst, Name: "Beverages", SerialNumber: serial(1), IsActive: true, CreatedAt: now,
	}
	store.categories[idOldUnnumbered] = database.Category{
		ID: idOldUnnumbered, Name: "Misc Old", IsActive: true, CreatedAt: now.Add(-2 * time.Hour),
	}
	store.categories[idNewUnnumbered] = database.Category{
		ID: idNewUnnumbered, Name: "Misc New", IsActive: true, CreatedAt: now.Add(-1 * time.Hour),
	}

	router := setupCategoryRouter(store)
	rr := doRequest(t, router, "GET", "/categories", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	resp := decodeCategoryListResponse(t, rr)
	if len(resp) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(resp))
	}

	want := []string{"Beverages", "Snacks", "Misc New", "Misc Old"}
	for i, name := range want {
		if resp[i]["name"] != name {
			t.Errorf("position %d: got %v, want %s", i, resp[i]["name"], name)
		}
	}
}

func TestCategoryList_ExcludesInactive(t *testing.T) {
	store := newMockCategoryStore()
	id := uuid.New()
	store.categories[id] = database.Category{
		ID: id, Name: "Deleted", IsActive: false, CreatedAt: time.Now(),
	}

	router := setupCategoryRouter(store)
	rr := doRequest(t, router, "GET", "/categories", nil)

	resp := decodeCategoryListResponse(t, rr)
	if len(resp) != 0 {
		t.Errorf("expected empty list (inactive excluded), got %d items", len(resp))
	}
}

// --- Get tests ---

func TestCategoryGet_Valid(t *testing.T) {
	store := newMockCategoryStore()
	id := uuid.New()
	store.categories[id] = database.Category{
		ID: id, Name: "Beverages", SerialNumber: serial(1), IsActive: true, CreatedAt: time.Now(),
	}

	router := setupCategoryRouter(store)
	rr := doRequest(t, router, "GET", "/categories/"+id.String(), nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeCategoryResponse(t, rr)
	if resp["name"] != "Beverages" {
		t.Errorf("name: got %v, want Beverages", resp["name"])
	}
	if resp["serial_number"] != float64(1) {
		t.Errorf("serial_number: got %v, want 1", resp["serial_number"])
	}
}

func TestCategoryGet_NotFound(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "GET", "/categories/"+uuid.New().String(), nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestCategoryGet_InvalidID(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "GET", "/categories/not-a-uuid", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Create tests ---

func TestCategoryCreate_Valid(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "POST", "/categories", map[string]interface{}{
		"name":          "Beverages",
		"description":   "All drinks",
		"serial_number": 2,
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeCategoryResponse(t, rr)
	if resp["name"] != "Beverages" {
		t.Errorf("name: got %v, want Beverages", resp["name"])
	}
	if resp["description"] != "All drinks" {
		t.Errorf("description: got %v, want 'All drinks'", resp["description"])
	}
	// JSON numbers decode as float64
	if resp["serial_number"] != float64(2) {
		t.Errorf("serial_number: got %v, want 2", resp["serial_number"])
	}
	if resp["is_active"] != true {
		t.Errorf("is_active: got %v, want true", resp["is_active"])
	}
}

func TestCategoryCreate_MinimalFields(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	// Only name is required; serial_number stays null when omitted.
	rr := doRequest(t, router, "POST", "/categories", map[string]interface{}{
		"name": "Simple",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeCategoryResponse(t, rr)
	if resp["name"] != "Simple" {
		t.Errorf("name: got %v, want Simple", resp["name"])
	}
	if resp["serial_number"] != nil {
		t.Errorf("serial_number: got %v, want null", resp["serial_number"])
	}
	if resp["description"] != nil {
		t.Errorf("description: got %v, want null", resp["description"])
	}
}

func TestCategoryCreate_MissingName(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "POST", "/categories", map[string]interface{}{
		"description": "No name",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d; body: %s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}

	resp := decodeCategoryResponse(t, rr)
	if resp["error"] != "name is required" {
		t.Errorf("error: got %v, want 'name is required'", resp["error"])
	}
}

func TestCategoryCreate_InvalidBody(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "POST", "/categories", "not json")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Update tests ---

func TestCategoryUpdate_Valid(t *testing.T) {
	store := newMockCategoryStore()
	id := uuid.New()
	store.categories[id] = database.Category{
		ID: id, Name: "Old Name", IsActive: true, CreatedAt: time.Now(),
	}

	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "PUT", "/categories/"+id.String(), map[string]interface{}{
		"name":          "New Name",
		"description":   "Updated desc",
		"serial_number": 5,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeCategoryResponse(t, rr)
	if resp["name"] != "New Name" {
		t.Errorf("name: got %v, want 'New Name'", resp["name"])
	}
	if resp["serial_number"] != float64(5) {
		t.Errorf("serial_number: got %v, want 5", resp["serial_number"])
	}
}

func TestCategoryUpdate_ClearSerialNumber(t *testing.T) {
	store := newMockCategoryStore()
	id := uuid.New()
	store.categories[id] = database.Category{
		ID: id, Name: "Food", SerialNumber: serial(3), IsActive: true, CreatedAt: time.Now(),
	}

	router := setupCategoryRouter(store)

	// Update without serial_number to clear it
	rr := doRequest(t, router, "PUT", "/categories/"+id.String(), map[string]interface{}{
		"name": "Food",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeCategoryResponse(t, rr)
	if resp["serial_number"] != nil {
		t.Errorf("serial_number: expected null, got %v", resp["serial_number"])
	}
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "PUT", "/categories/"+uuid.New().String(), map[string]interface{}{
		"name": "Whatever",
	})

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestCategoryUpdate_MissingName(t *testing.T) {
	store := newMockCategoryStore()
	id := uuid.New()
	store.categories[id] = database.Category{
		ID: id, Name: "Food", IsActive: true, CreatedAt: time.Now(),
	}

	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "PUT", "/categories/"+id.String(), map[string]interface{}{
		"description": "No name",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Delete tests ---

func TestCategoryDelete_Valid(t *testing.T) {
	store := newMockCategoryStore()
	id := uuid.New()
	store.categories[id] = database.Category{
		ID: id, Name: "Delete Me", IsActive: true, CreatedAt: time.Now(),
	}

	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "DELETE", "/categories/"+id.String(), nil)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusNoContent, rr.Body.String())
	}

	// Soft delete keeps the row, only flips is_active
	c, exists := store.categories[id]
	if !exists {
		t.Fatal("expected category to still exist in store after soft delete")
	}
	if c.IsActive {
		t.Error("expected is_active=false after soft delete")
	}
}

func TestCategoryDelete_NotFound(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "DELETE", "/categories/"+uuid.New().String(), nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d; body: %s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
}

func TestCategoryDelete_InvalidID(t *testing.T) {
	store := newMockCategoryStore()
	router := setupCategoryRouter(store)

	rr := doRequest(t, router, "DELETE", "/categories/not-a-uuid", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
