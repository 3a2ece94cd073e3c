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
	"github.com/shopspring/decimal"
)

// WholesaleStore defines the database methods needed by wholesale handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type WholesaleStore interface {
	ListWholesaleAccounts(ctx context.Context) ([]database.WholesaleAccount, error)
	GetWholesaleAccount(ctx context.Context, id uuid.UUID) (database.WholesaleAccount, error)
	CreateWholesaleAccount(ctx context.Context, arg database.CreateWholesaleAccountParams) (database.WholesaleAccount, error)
	UpdateWholesaleAccount(ctx context.Context, arg database.UpdateWholesaleAccountParams) (database.WholesaleAccount, error)
	SoftDeleteWholesaleAccount(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// WholesaleHandler handles wholesale account CRUD endpoints.
type WholesaleHandler struct {
	store WholesaleStore
}

// NewWholesaleHandler creates a new WholesaleHandler.
func NewWholesaleHandler(store WholesaleStore) *WholesaleHandler {
	return &WholesaleHandler{store: store}
}

// RegisterRoutes registers wholesale endpoints on the given Chi router.
func (h *WholesaleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type wholesaleRequest struct {
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DiscountRate string `json:"discount_rate"`
	CreditLimit  string `json:"credit_limit"`
	PaymentTerms string `json:"payment_terms"`
}

type wholesaleResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"company_name"`
	ContactName  string    `json:"contact_name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	DiscountRate *string   `json:"discount_rate"`
	CreditLimit  *string   `json:"credit_limit"`
	PaymentTerms *string   `json:"payment_terms"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toWholesaleResponse(a database.WholesaleAccount) wholesaleResponse {
	resp := wholesaleResponse{
		ID:          a.ID,
		CompanyName: a.CompanyName,
		ContactName: a.ContactName,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Email.Valid {
		resp.Email = &a.Email.String
	}
	if a.Phone.Valid {
		resp.Phone = &a.Phone.String
	}
	if a.DiscountRate.Valid {
		s := numericToString(a.DiscountRate)
		resp.DiscountRate = &s
	}
	if a.CreditLimit.Valid {
		s := numericToString(a.CreditLimit)
		resp.CreditLimit = &s
	}
	if a.PaymentTerms.Valid {
		resp.PaymentTerms = &a.PaymentTerms.String
	}
	return resp
}

// buildWholesaleParams validates the shared create/update fields. Returns a
// non-empty message on validation failure.
func buildWholesaleParams(req wholesaleRequest) (database.UpdateWholesaleAccountParams, string) {
	var params database.UpdateWholesaleAccountParams

	if req.CompanyName == "" {
		return params, "company_name is required"
	}
	if req.ContactName == "" {
		return params, "contact_name is required"
	}

	discountRate := pgtype.Numeric{}
	if req.DiscountRate != "" {
		d, err := decimal.NewFromString(req.DiscountRate)
		if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
			return params, "discount_rate must be between 0 and 100"
		}
		discountRate = decimalToNumeric(d)
	}

	creditLimit := pgtype.Numeric{}
	if req.CreditLimit != "" {
		d, err := decimal.NewFromString(req.CreditLimit)
		if err != nil || d.IsNegative() {
			return params, "invalid credit_limit"
		}
		creditLimit = decimalToNumeric(d)
	}

	params = database.UpdateWholesaleAccountParams{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		Email:        textOrNull(req.Email),
		Phone:        textOrNull(req.Phone),
		DiscountRate: discountRate,
		CreditLimit:  creditLimit,
		PaymentTerms: textOrNull(req.PaymentTerms),
	}
	return params, ""
}

// --- Handlers ---

// List returns all active wholesale accounts.
func (h *WholesaleHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListWholesaleAccounts(r.Context())
	if err != nil {
		log.Printf("ERROR: list wholesale accounts: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]wholesaleResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toWholesaleResponse(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single wholesale account by ID.
func (h *WholesaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid wholesale account ID"})
		return
	}

	account, err := h.store.GetWholesaleAccount(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "wholesale account not found"})
			return
		}
		log.Printf("ERROR: get wholesale account: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toWholesaleResponse(account))
}

// Create adds a new wholesale account.
func (h *WholesaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wholesaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params, errMsg := buildWholesaleParams(req)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
		return
	}

	account, err := h.store.CreateWholesaleAccount(r.Context(), database.CreateWholesaleAccountParams{
		CompanyName:  params.CompanyName,
		ContactName:  params.ContactName,
		Email:        params.Email,
		Phone:        params.Phone,
		DiscountRate: params.DiscountRate,
		CreditLimit:  params.CreditLimit,
		PaymentTerms: params.PaymentTerms,
	})
	if err != nil {
		log.Printf("ERROR: create wholesale account: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, toWholesaleResponse(account))
}

// Update modifies an existing wholesale account.
func (h *WholesaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid wholesale account ID"})
		return
	}

	var req wholesaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params, errMsg := buildWholesaleParams(req)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
		return
	}
	params.ID = id

	account, err := h.store.UpdateWholesaleAccount(r.Context(), params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "wholesale account not found"})
			return
		}
		log.Printf("ERROR: update wholesale account: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toWholesaleResponse(account))
}

// Delete soft-deletes a wholesale account.
func (h *WholesaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid wholesale account ID"})
		return
	}

	_, err = h.store.SoftDeleteWholesaleAccount(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "wholesale account not found"})
			return
		}
		log.Printf("ERROR: delete wholesale account: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
