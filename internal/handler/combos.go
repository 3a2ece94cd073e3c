package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/pricing"
	"github.com/shopspring/decimal"
)

// ComboStore defines the database methods needed by combo handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type ComboStore interface {
	ListCombos(ctx context.Context) ([]database.Combo, error)
	GetCombo(ctx context.Context, id uuid.UUID) (database.Combo, error)
	SoftDeleteCombo(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListComboItemsByCombo(ctx context.Context, comboID uuid.UUID) ([]database.ComboItem, error)
	GetProduct(ctx context.Context, id uuid.UUID) (database.Product, error)
}

// ComboWriter persists a combo together with its constituents in one
// transaction. Satisfied by *service.ComboService.
type ComboWriter interface {
	CreateComboWithItems(ctx context.Context, arg database.CreateComboParams, items []database.CreateComboItemParams) (database.Combo, []database.ComboItem, error)
	ReplaceCombo(ctx context.Context, arg database.UpdateComboParams, items []database.CreateComboItemParams) (database.Combo, []database.ComboItem, error)
}

// ComboHandler handles combo (bundle) CRUD endpoints.
type ComboHandler struct {
	store  ComboStore
	writer ComboWriter
}

// NewComboHandler creates a new ComboHandler.
func NewComboHandler(store ComboStore, writer ComboWriter) *ComboHandler {
	return &ComboHandler{store: store, writer: writer}
}

// RegisterRoutes registers combo endpoints on the given Chi router.
func (h *ComboHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type comboItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type comboRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ComboPrice  string             `json:"combo_price"`
	ImageURL    string             `json:"image_url"`
	IsFeatured  bool               `json:"is_featured"`
	ValidFrom   string             `json:"valid_from"`  // RFC3339, optional
	ValidUntil  string             `json:"valid_until"` // RFC3339, optional
	Items       []comboItemRequest `json:"items"`
}

type comboItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int32     `json:"quantity"`
	CapturedPrice string    `json:"captured_price"`
	Position      int32     `json:"position"`
}

type comboResponse struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Description   *string             `json:"description"`
	OriginalPrice string              `json:"original_price"`
	ComboPrice    string              `json:"combo_price"`
	Savings       string              `json:"savings"`
	ImageURL      *string             `json:"image_url"`
	IsActive      bool                `json:"is_active"`
	IsFeatured    bool                `json:"is_featured"`
	ValidFrom     *time.Time          `json:"valid_from"`
	ValidUntil    *time.Time          `json:"valid_until"`
	Items         []comboItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (h *ComboHandler) toComboResponse(ctx context.Context, c database.Combo) (comboResponse, error) {
	items, err := h.store.ListComboItemsByCombo(ctx, c.ID)
	if err != nil {
		return comboResponse{}, err
	}

	original, _ := decimal.NewFromString(numericToString(c.OriginalPrice))
	comboPrice, _ := decimal.NewFromString(numericToString(c.ComboPrice))

	resp := comboResponse{
		ID:            c.ID,
		Name:          c.Name,
		OriginalPrice: numericToString(c.OriginalPrice),
		ComboPrice:    numericToString(c.ComboPrice),
		Savings:       pricing.ComboSavings(original, comboPrice).StringFixed(2),
		IsActive:      c.IsActive,
		IsFeatured:    c.IsFeatured,
		Items:         make([]comboItemResponse, len(items)),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.Description.Valid {
		resp.Description = &c.Description.String
	}
	if c.ImageUrl.Valid {
		resp.ImageURL = &c.ImageUrl.String
	}
	if c.ValidFrom.Valid {
		resp.ValidFrom = &c.ValidFrom.Time
	}
	if c.ValidUntil.Valid {
		resp.ValidUntil = &c.ValidUntil.Time
	}
	for i, item := range items {
		resp.Items[i] = comboItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			CapturedPrice: numericToString(item.CapturedPrice),
			Position:      item.Position,
		}
	}
	return resp, nil
}

// preparedCombo carries the validated payload through create/update.
type preparedCombo struct {
	comboPrice    decimal.Decimal
	originalPrice decimal.Decimal
	validFrom     pgtype.Timestamptz
	validUntil    pgtype.Timestamptz
	items         []database.CreateComboItemParams
}

// prepareCombo validates the payload and prices its constituents from the
// current catalog. A combo needs at least two distinct products; prices are
// captured server-side so stale client values never enter the books.
func (h *ComboHandler) prepareCombo(ctx context.Context, req comboRequest) (*preparedCombo, string) {
	if req.Name == "" {
		return nil, "name is required"
	}
	if req.ComboPrice == "" {
		return nil, "combo_price is required"
	}
	comboPrice, err := decimal.NewFromString(req.ComboPrice)
	if err != nil || comboPrice.IsNegative() {
		return nil, "invalid combo_price"
	}

	distinct := make(map[uuid.UUID]bool)
	var constituents []pricing.ComboConstituent
	var items []database.CreateComboItemParams

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, "item quantity must be > 0"
		}
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, "invalid product_id"
		}
		if distinct[productID] {
			return nil, "duplicate product in combo"
		}
		distinct[productID] = true

		product, err := h.store.GetProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, "product not found: " + item.ProductID
			}
			log.Printf("ERROR: get product for combo: %v", err)
			return nil, "internal"
		}

		var salePrice *decimal.Decimal
		if product.SalePrice.Valid {
			sp, _ := decimal.NewFromString(numericToString(product.SalePrice))
			salePrice = &sp
		}
		price, _ := decimal.NewFromString(numericToString(product.Price))
		captured := pricing.EffectiveUnitPrice(price, salePrice)

		constituents = append(constituents, pricing.ComboConstituent{
			Price:    captured,
			Quantity: item.Quantity,
		})
		items = append(items, database.CreateComboItemParams{
			ProductID:     productID,
			Quantity:      item.Quantity,
			CapturedPrice: decimalToNumeric(captured),
			Position:      int32(i),
		})
	}

	if len(distinct) < 2 {
		return nil, "a combo requires at least two distinct products"
	}

	prepared := &preparedCombo{
		comboPrice:    comboPrice,
		originalPrice: pricing.ComboOriginalPrice(constituents),
		items:         items,
	}

	if req.ValidFrom != "" {
		t, err := time.Parse(time.RFC3339, req.ValidFrom)
		if err != nil {
			return nil, "invalid valid_from"
		}
		prepared.validFrom = pgtype.Timestamptz{Time: t, Valid: true}
	}
	if req.ValidUntil != "" {
		t, err := time.Parse(time.RFC3339, req.ValidUntil)
		if err != nil {
			return nil, "invalid valid_until"
		}
		prepared.validUntil = pgtype.Timestamptz{Time: t, Valid: true}
	}
	if prepared.validFrom.Valid && prepared.validUntil.Valid && prepared.validUntil.Time.Before(prepared.validFrom.Time) {
		return nil, "valid_until must be after valid_from"
	}

	return prepared, ""
}

// --- Handlers ---

// List returns all active combos with their constituents.
func (h *ComboHandler) List(w http.ResponseWriter, r *http.Request) {
	combos, err := h.store.ListCombos(r.Context())
	if err != nil {
		log.Printf("ERROR: list combos: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]comboResponse, len(combos))
	for i, c := range combos {
		resp[i], err = h.toComboResponse(r.Context(), c)
		if err != nil {
			log.Printf("ERROR: list combo items: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single combo by ID.
func (h *ComboHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid combo ID"})
		return
	}

	combo, err := h.store.GetCombo(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "combo not found"})
			return
		}
		log.Printf("ERROR: get combo: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp, err := h.toComboResponse(r.Context(), combo)
	if err != nil {
		log.Printf("ERROR: get combo items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a new combo.
func (h *ComboHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req comboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	prepared, errMsg := h.prepareCombo(r.Context(), req)
	if errMsg != "" {
		status := http.StatusBadRequest
		if errMsg == "internal" {
			status, errMsg = http.StatusInternalServerError, "internal server error"
		}
		writeJSON(w, status, map[string]string{"error": errMsg})
		return
	}

	combo, _, err := h.writer.CreateComboWithItems(r.Context(), database.CreateComboParams{
		Name:          req.Name,
		Description:   textOrNull(req.Description),
		OriginalPrice: decimalToNumeric(prepared.originalPrice),
		ComboPrice:    decimalToNumeric(prepared.comboPrice),
		ImageUrl:      textOrNull(req.ImageURL),
		IsFeatured:    req.IsFeatured,
		ValidFrom:     prepared.validFrom,
		ValidUntil:    prepared.validUntil,
	}, prepared.items)
	if err != nil {
		log.Printf("ERROR: create combo: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp, err := h.toComboResponse(r.Context(), combo)
	if err != nil {
		log.Printf("ERROR: read back combo items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Update modifies a combo and replaces its constituents. The original price
// is recomputed from current product prices, never taken from the client.
func (h *ComboHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid combo ID"})
		return
	}

	var req comboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	prepared, errMsg := h.prepareCombo(r.Context(), req)
	if errMsg != "" {
		status := http.StatusBadRequest
		if errMsg == "internal" {
			status, errMsg = http.StatusInternalServerError, "internal server error"
		}
		writeJSON(w, status, map[string]string{"error": errMsg})
		return
	}

	combo, _, err := h.writer.ReplaceCombo(r.Context(), database.UpdateComboParams{
		Name:          req.Name,
		Description:   textOrNull(req.Description),
		OriginalPrice: decimalToNumeric(prepared.originalPrice),
		ComboPrice:    decimalToNumeric(prepared.comboPrice),
		ImageUrl:      textOrNull(req.ImageURL),
		IsFeatured:    req.IsFeatured,
		ValidFrom:     prepared.validFrom,
		ValidUntil:    prepared.validUntil,
		ID:            id,
	}, prepared.items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "combo not found"})
			return
		}
		log.Printf("ERROR: update combo: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp, err := h.toComboResponse(r.Context(), combo)
	if err != nil {
		log.Printf("ERROR: read back combo items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete soft-deletes a combo.
func (h *ComboHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid combo ID"})
		return
	}

	_, err = h.store.SoftDeleteCombo(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "combo not found"})
			return
		}
		log.Printf("ERROR: delete combo: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
