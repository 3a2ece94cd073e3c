package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/enum"
)

// SettingsStore defines the database methods needed by settings handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (database.Setting, error)
	UpsertSetting(ctx context.Context, arg database.UpsertSettingParams) (database.Setting, error)
}

// SettingsHandler handles the settings documents (store profile,
// notification preferences, security options).
type SettingsHandler struct {
	store SettingsStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// RegisterRoutes registers settings endpoints on the given Chi router.
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{key}", h.Get)
	r.Put("/{key}", h.Put)
}

// --- Settings documents ---

type storeSettings struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
	TaxID     string `json:"tax_id"`
}

func defaultStoreSettings() storeSettings {
	return storeSettings{
		StoreName: "Seruni Mart",
		Currency:  "IDR",
	}
}

type notificationsSettings struct {
	EmailOnNewOrder    bool `json:"email_on_new_order"`
	EmailOnLowStock    bool `json:"email_on_low_stock"`
	DailySalesSummary  bool `json:"daily_sales_summary"`
	WeeklySalesSummary bool `json:"weekly_sales_summary"`
}

func defaultNotificationsSettings() notificationsSettings {
	return notificationsSettings{
		EmailOnNewOrder: true,
		EmailOnLowStock: true,
	}
}

type securitySettings struct {
	SessionTimeoutMinutes int32 `json:"session_timeout_minutes"`
	RequireStrongPassword bool  `json:"require_strong_password"`
	TwoFactorEnabled      bool  `json:"two_factor_enabled"`
}

func defaultSecuritySettings() securitySettings {
	return securitySettings{
		SessionTimeoutMinutes: 60,
		RequireStrongPassword: true,
	}
}

// defaultSettingsPayload returns the default document for a key, or nil for
// an unknown key.
func defaultSettingsPayload(key string) interface{} {
	switch key {
	case enum.SettingsKeyStore:
		return defaultStoreSettings()
	case enum.SettingsKeyNotifications:
		return defaultNotificationsSettings()
	case enum.SettingsKeySecurity:
		return defaultSecuritySettings()
	default:
		return nil
	}
}

// validateSettingsPayload decodes body into the document type for key so
// unknown fields and type mismatches are rejected, then re-encodes the
// normalized document for storage.
func validateSettingsPayload(key string, body []byte) ([]byte, error) {
	doc := defaultSettingsPayload(key)
	if doc == nil {
		return nil, errors.New("unknown settings key")
	}
	switch v := doc.(type) {
	case storeSettings:
		if err := strictUnmarshal(body, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	case notificationsSettings:
		if err := strictUnmarshal(body, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	case securitySettings:
		if err := strictUnmarshal(body, &v); err != nil {
			return nil, err
		}
		if v.SessionTimeoutMinutes <= 0 {
			return nil, errors.New("session_timeout_minutes must be > 0")
		}
		return json.Marshal(v)
	}
	return nil, errors.New("unknown settings key")
}

func strictUnmarshal(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// --- Handlers ---

type settingsResponse struct {
	Key     string          `json:"key"`
	Payload json.RawMessage `json:"payload"`
}

// Get returns a settings document, the defaults if it was never saved.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	defaults := defaultSettingsPayload(key)
	if defaults == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown settings key"})
		return
	}

	row, err := h.store.GetSetting(r.Context(), key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			payload, _ := json.Marshal(defaults)
			writeJSON(w, http.StatusOK, settingsResponse{Key: key, Payload: payload})
			return
		}
		log.Printf("ERROR: get setting: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{Key: key, Payload: row.Payload})
}

// Put replaces a settings document.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if defaultSettingsPayload(key) == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown settings key"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	payload, err := validateSettingsPayload(key, body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	row, err := h.store.UpsertSetting(r.Context(), database.UpsertSettingParams{
		Key:     key,
		Payload: payload,
	})
	if err != nil {
		log.Printf("ERROR: upsert setting: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{Key: row.Key, Payload: row.Payload})
}
