package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/ws"
	"github.com/shopspring/decimal"
)

// ProductStore defines the database methods needed by product handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]database.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (database.Product, error)
	ListCategories(ctx context.Context) ([]database.Category, error)
	CreateProduct(ctx context.Context, arg database.CreateProductParams) (database.Product, error)
	UpdateProduct(ctx context.Context, arg database.UpdateProductParams) (database.Product, error)
	UpdateProductStock(ctx context.Context, arg database.UpdateProductStockParams) (database.Product, error)
	SoftDeleteProduct(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// Broadcaster pushes events to connected dashboard clients.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(topic string, event ws.Event)
}

// ProductHandler handles product CRUD and stock endpoints.
type ProductHandler struct {
	store ProductStore
	hub   Broadcaster
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store ProductStore, hub Broadcaster) *ProductHandler {
	return &ProductHandler{store: store, hub: hub}
}

// RegisterRoutes registers product endpoints on the given Chi router.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/stock", h.UpdateStock)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type productRequest struct {
	CategoryID   string   `json:"category_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	SKU          string   `json:"sku"`
	Price        string   `json:"price"`
	SalePrice    string   `json:"sale_price"`
	Stock        *int32   `json:"stock"`
	SerialNumber *int32   `json:"serial_number"`
	Weight       string   `json:"weight"`
	Dimensions   string   `json:"dimensions"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	ImageURLs    []string `json:"image_urls"`
}

type updateStockRequest struct {
	Stock *int32 `json:"stock"`
}

type productResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	SKU          string    `json:"sku"`
	Price        string    `json:"price"`
	SalePrice    *string   `json:"sale_price"`
	Stock        int32     `json:"stock"`
	SerialNumber *int32    `json:"serial_number"`
	Weight       *string   `json:"weight"`
	Dimensions   *string   `json:"dimensions"`
	Ingredients  *string   `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	ImageURLs    []string  `json:"image_urls"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(p database.Product) productResponse {
	resp := productResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		SKU:        p.Sku,
		Price:      numericToString(p.Price),
		Stock:      p.Stock,
		ImageURLs:  p.ImageUrls,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if resp.ImageURLs == nil {
		resp.ImageURLs = []string{}
	}
	if p.SalePrice.Valid {
		s := numericToString(p.SalePrice)
		resp.SalePrice = &s
	}
	if p.Description.Valid {
		resp.Description = &p.Description.String
	}
	if p.SerialNumber.Valid {
		resp.SerialNumber = &p.SerialNumber.Int32
	}
	if p.Weight.Valid {
		resp.Weight = &p.Weight.String
	}
	if p.Dimensions.Valid {
		resp.Dimensions = &p.Dimensions.String
	}
	if p.Ingredients.Valid {
		resp.Ingredients = &p.Ingredients.String
	}
	if p.Instructions.Valid {
		resp.Instructions = &p.Instructions.String
	}
	return resp
}

// sortProductsBySerial orders products with assigned serial numbers first
// (ascending); unnumbered ones follow, newest first.
func sortProductsBySerial(products []database.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch {
		case a.SerialNumber.Valid && b.SerialNumber.Valid:
			return a.SerialNumber.Int32 < b.SerialNumber.Int32
		case a.SerialNumber.Valid:
			return true
		case b.SerialNumber.Valid:
			return false
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// --- Handlers ---

// List returns all active products in display order, annotated with their
// category name. Products whose category was deleted are labelled "Unknown"
// rather than dropped.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		log.Printf("ERROR: list products: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		log.Printf("ERROR: list categories for products: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	sortProductsBySerial(products)

	resp := make([]productResponse, len(products))
	for i, p := range products {
		pr := toProductResponse(p)
		if name, ok := categoryNames[p.CategoryID]; ok {
			pr.CategoryName = name
		} else {
			pr.CategoryName = "Unknown"
		}
		resp[i] = pr
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ERROR: get product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Create adds a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params, errMsg := buildProductParams(req)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
		return
	}

	stock := int32(0)
	if req.Stock != nil {
		if *req.Stock < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "stock cannot be negative"})
			return
		}
		stock = *req.Stock
	}

	product, err := h.store.CreateProduct(r.Context(), database.CreateProductParams{
		CategoryID:   params.CategoryID,
		Name:         params.Name,
		Description:  params.Description,
		Sku:          params.Sku,
		Price:        params.Price,
		SalePrice:    params.SalePrice,
		Stock:        stock,
		SerialNumber: params.SerialNumber,
		Weight:       params.Weight,
		Dimensions:   params.Dimensions,
		Ingredients:  params.Ingredients,
		Instructions: params.Instructions,
		ImageUrls:    params.ImageUrls,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category does not exist"})
			return
		}
		if isUniqueViolation(err) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "sku already exists"})
			return
		}
		log.Printf("ERROR: create product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastProduct("product.created", product)
	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// Update modifies an existing product. Stock is managed through the
// dedicated stock endpoint and never touched here.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params, errMsg := buildProductParams(req)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
		return
	}
	params.ID = id

	product, err := h.store.UpdateProduct(r.Context(), params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		if isForeignKeyViolation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category does not exist"})
			return
		}
		if isUniqueViolation(err) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "sku already exists"})
			return
		}
		log.Printf("ERROR: update product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastProduct("product.updated", product)
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateStock sets the absolute stock level for a product.
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Stock == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "stock is required"})
		return
	}
	if *req.Stock < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "stock cannot be negative"})
		return
	}

	product, err := h.store.UpdateProductStock(r.Context(), database.UpdateProductStockParams{
		Stock: *req.Stock,
		ID:    id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ERROR: update product stock: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastProduct("product.stock_updated", product)
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Delete soft-deletes a product by setting is_active=false.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	_, err = h.store.SoftDeleteProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ERROR: delete product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.hub.Broadcast(ws.TopicProducts, ws.Event{
		Type:    "product.deleted",
		Payload: mustMarshal(map[string]string{"id": id.String()}),
	})
	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

// buildProductParams validates the shared create/update fields. Returns a
// non-empty message on validation failure.
func buildProductParams(req productRequest) (database.UpdateProductParams, string) {
	var params database.UpdateProductParams

	if req.Name == "" {
		return params, "name is required"
	}
	if req.SKU == "" {
		return params, "sku is required"
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return params, "invalid category_id"
	}
	if req.Price == "" {
		return params, "price is required"
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return params, "invalid price"
	}

	salePrice := pgtype.Numeric{}
	if req.SalePrice != "" {
		sp, err := decimal.NewFromString(req.SalePrice)
		if err != nil || sp.IsNegative() {
			return params, "invalid sale_price"
		}
		salePrice = decimalToNumeric(sp)
	}

	params = database.UpdateProductParams{
		CategoryID:   categoryID,
		Name:         req.Name,
		Description:  textOrNull(req.Description),
		Sku:          req.SKU,
		Price:        decimalToNumeric(price),
		SalePrice:    salePrice,
		SerialNumber: int4OrNull(req.SerialNumber),
		Weight:       textOrNull(req.Weight),
		Dimensions:   textOrNull(req.Dimensions),
		Ingredients:  textOrNull(req.Ingredients),
		Instructions: textOrNull(req.Instructions),
		ImageUrls:    req.ImageURLs,
	}
	return params, ""
}

func (h *ProductHandler) broadcastProduct(eventType string, p database.Product) {
	h.hub.Broadcast(ws.TopicProducts, ws.Event{
		Type:    eventType,
		Payload: mustMarshal(toProductResponse(p)),
	})
}

func mustMarshal(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("ERROR: marshal broadcast payload: %v", err)
		return json.RawMessage(`{}`)
	}
	return b
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func numericToString(n pgtype.Numeric) string {
	if !n.Valid {
		return "0.00"
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return "0.00"
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
