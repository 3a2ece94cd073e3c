package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/pricing"
	"github.com/shopspring/decimal"
)

// BulkPricingStore defines the database methods needed by bulk pricing
// handlers. Satisfied by *database.Queries; narrow interface for testability.
type BulkPricingStore interface {
	ListBulkPricing(ctx context.Context) ([]database.BulkPricing, error)
	GetBulkPricing(ctx context.Context, id uuid.UUID) (database.BulkPricing, error)
	SoftDeleteBulkPricing(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListBulkPricingTiers(ctx context.Context, bulkPricingID uuid.UUID) ([]database.BulkPricingTier, error)
	ListActiveBulkPricingTiers(ctx context.Context) ([]database.BulkPricingTier, error)
}

// BulkPricingWriter persists a pricing set together with its tiers in one
// transaction. Satisfied by *service.BulkPricingService.
type BulkPricingWriter interface {
	CreateSetWithTiers(ctx context.Context, name string, tiers []database.CreateBulkPricingTierParams) (database.BulkPricing, []database.BulkPricingTier, error)
	ReplaceSet(ctx context.Context, arg database.UpdateBulkPricingParams, tiers []database.CreateBulkPricingTierParams) (database.BulkPricing, []database.BulkPricingTier, error)
}

// BulkPricingHandler handles quantity discount configuration.
type BulkPricingHandler struct {
	store  BulkPricingStore
	writer BulkPricingWriter
}

// NewBulkPricingHandler creates a new BulkPricingHandler.
func NewBulkPricingHandler(store BulkPricingStore, writer BulkPricingWriter) *BulkPricingHandler {
	return &BulkPricingHandler{store: store, writer: writer}
}

// RegisterRoutes registers bulk pricing endpoints on the given Chi router.
func (h *BulkPricingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/match", h.Match)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type bulkPricingTierRequest struct {
	MinQuantity        int32  `json:"min_quantity"`
	MaxQuantity        *int32 `json:"max_quantity"`
	DiscountPercentage string `json:"discount_percentage"`
}

type bulkPricingRequest struct {
	Name  string                   `json:"name"`
	Tiers []bulkPricingTierRequest `json:"tiers"`
}

type bulkPricingTierResponse struct {
	ID                 uuid.UUID `json:"id"`
	MinQuantity        int32     `json:"min_quantity"`
	MaxQuantity        *int32    `json:"max_quantity"`
	DiscountPercentage string    `json:"discount_percentage"`
	Position           int32     `json:"position"`
}

type bulkPricingResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	IsActive  bool                      `json:"is_active"`
	Tiers     []bulkPricingTierResponse `json:"tiers"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

type tierMatchResponse struct {
	Matched            bool   `json:"matched"`
	MinQuantity        int32  `json:"min_quantity,omitempty"`
	MaxQuantity        *int32 `json:"max_quantity,omitempty"`
	DiscountPercentage string `json:"discount_percentage,omitempty"`
}

func toBulkPricingTierResponse(t database.BulkPricingTier) bulkPricingTierResponse {
	resp := bulkPricingTierResponse{
		ID:                 t.ID,
		MinQuantity:        t.MinQuantity,
		DiscountPercentage: discountLabel(t.DiscountPercentage),
		Position:           t.Position,
	}
	if t.MaxQuantity.Valid {
		resp.MaxQuantity = &t.MaxQuantity.Int32
	}
	return resp
}

func (h *BulkPricingHandler) toBulkPricingResponse(ctx context.Context, bp database.BulkPricing) (bulkPricingResponse, error) {
	tiers, err := h.store.ListBulkPricingTiers(ctx, bp.ID)
	if err != nil {
		return bulkPricingResponse{}, err
	}
	resp := bulkPricingResponse{
		ID:        bp.ID,
		Name:      bp.Name,
		IsActive:  bp.IsActive,
		Tiers:     make([]bulkPricingTierResponse, len(tiers)),
		CreatedAt: bp.CreatedAt,
		UpdatedAt: bp.UpdatedAt,
	}
	for i, t := range tiers {
		resp.Tiers[i] = toBulkPricingTierResponse(t)
	}
	return resp, nil
}

// validateTiers checks every tier in a create/update payload. Overlapping
// ranges are allowed; quantity matching resolves overlap by the highest
// qualifying min_quantity.
func validateTiers(tiers []bulkPricingTierRequest) string {
	if len(tiers) == 0 {
		return "at least one tier is required"
	}
	for _, t := range tiers {
		if t.MinQuantity < 1 {
			return "tier min_quantity must be >= 1"
		}
		if t.MaxQuantity != nil && *t.MaxQuantity < t.MinQuantity {
			return "tier max_quantity must be >= min_quantity"
		}
		d, err := decimal.NewFromString(t.DiscountPercentage)
		if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
			return "tier discount_percentage must be between 0 and 100"
		}
	}
	return ""
}

// --- Handlers ---

// List returns all active bulk pricing sets with their tiers.
func (h *BulkPricingHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := h.store.ListBulkPricing(r.Context())
	if err != nil {
		log.Printf("ERROR: list bulk pricing: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]bulkPricingResponse, len(sets))
	for i, bp := range sets {
		resp[i], err = h.toBulkPricingResponse(r.Context(), bp)
		if err != nil {
			log.Printf("ERROR: list bulk pricing tiers: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one bulk pricing set with its tiers.
func (h *BulkPricingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid bulk pricing ID"})
		return
	}

	bp, err := h.store.GetBulkPricing(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "bulk pricing not found"})
			return
		}
		log.Printf("ERROR: get bulk pricing: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp, err := h.toBulkPricingResponse(r.Context(), bp)
	if err != nil {
		log.Printf("ERROR: get bulk pricing tiers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Match resolves which tier applies for a given quantity across all active
// sets. Order intake uses the same matching rule.
func (h *BulkPricingHandler) Match(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("quantity")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity is required"})
		return
	}
	qty, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || qty < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid quantity"})
		return
	}

	rows, err := h.store.ListActiveBulkPricingTiers(r.Context())
	if err != nil {
		log.Printf("ERROR: list active bulk pricing tiers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	tiers := make([]pricing.Tier, 0, len(rows))
	for _, row := range rows {
		t := pricing.Tier{
			MinQuantity:        row.MinQuantity,
			DiscountPercentage: tierDiscount(row.DiscountPercentage),
		}
		if row.MaxQuantity.Valid {
			max := row.MaxQuantity.Int32
			t.MaxQuantity = &max
		}
		tiers = append(tiers, t)
	}

	match := pricing.MatchTier(tiers, int32(qty))
	if match == nil {
		writeJSON(w, http.StatusOK, tierMatchResponse{Matched: false})
		return
	}

	resp := tierMatchResponse{
		Matched:            true,
		MinQuantity:        match.MinQuantity,
		MaxQuantity:        match.MaxQuantity,
		DiscountPercentage: match.DiscountPercentage.String(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a bulk pricing set with its tiers.
func (h *BulkPricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bulkPricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if msg := validateTiers(req.Tiers); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	bp, _, err := h.writer.CreateSetWithTiers(r.Context(), req.Name, tierParams(req.Tiers))
	if err != nil {
		log.Printf("ERROR: create bulk pricing: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp, err := h.toBulkPricingResponse(r.Context(), bp)
	if err != nil {
		log.Printf("ERROR: read back bulk pricing tiers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Update renames a set and replaces its tiers wholesale.
func (h *BulkPricingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid bulk pricing ID"})
		return
	}

	var req bulkPricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if msg := validateTiers(req.Tiers); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	bp, _, err := h.writer.ReplaceSet(r.Context(), database.UpdateBulkPricingParams{
		Name: req.Name,
		ID:   id,
	}, tierParams(req.Tiers))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "bulk pricing not found"})
			return
		}
		log.Printf("ERROR: update bulk pricing: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp, err := h.toBulkPricingResponse(r.Context(), bp)
	if err != nil {
		log.Printf("ERROR: read back bulk pricing tiers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete soft-deletes a bulk pricing set. Its tiers stop applying to new
// orders immediately; existing order history is untouched.
func (h *BulkPricingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid bulk pricing ID"})
		return
	}

	_, err = h.store.SoftDeleteBulkPricing(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "bulk pricing not found"})
			return
		}
		log.Printf("ERROR: delete bulk pricing: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

// tierParams converts the validated payload to insert params. The set ID is
// filled in by the writer inside the transaction.
func tierParams(tiers []bulkPricingTierRequest) []database.CreateBulkPricingTierParams {
	params := make([]database.CreateBulkPricingTierParams, len(tiers))
	for i, t := range tiers {
		discount, _ := decimal.NewFromString(t.DiscountPercentage) // validated earlier
		params[i] = database.CreateBulkPricingTierParams{
			MinQuantity:        t.MinQuantity,
			MaxQuantity:        int4OrNull(t.MaxQuantity),
			DiscountPercentage: decimalToNumeric(discount),
			Position:           int32(i),
		}
	}
	return params
}

func tierDiscount(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}
