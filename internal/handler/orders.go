package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/enum"
	"github.com/serunimart/api/internal/invoice"
	"github.com/serunimart/api/internal/service"
	"github.com/serunimart/api/internal/ws"
	"github.com/shopspring/decimal"
)

const defaultOrderPageSize = 50

// OrderStore defines the database methods needed by order handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	ListOrders(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, arg database.UpdateOrderStatusParams) (database.Order, error)
	UpdateOrderTracking(ctx context.Context, arg database.UpdateOrderTrackingParams) (database.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
	GetSetting(ctx context.Context, key string) (database.Setting, error)
}

// OrderCreator is the slice of the order service the handler needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*service.CreateOrderResult, error)
	BatchDelete(ctx context.Context, ids []uuid.UUID) error
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	store   OrderStore
	service OrderCreator
	hub     Broadcaster
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore, svc OrderCreator, hub Broadcaster) *OrderHandler {
	return &OrderHandler{store: store, service: svc, hub: hub}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/batch-delete", h.BatchDelete)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Patch("/{id}/tracking", h.UpdateTracking)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/invoice", h.Invoice)
	r.Get("/{id}/whatsapp-link", h.WhatsAppLink)
}

// --- Request / Response types ---

type createOrderRequest struct {
	CustomerID      string                   `json:"customer_id"`
	CustomerName    string                   `json:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone"`
	CustomerAddress string                   `json:"customer_address"`
	PaymentMethod   string                   `json:"payment_method"`
	PriorityTier    string                   `json:"priority_tier"`
	ShippingCost    string                   `json:"shipping_cost"`
	Items           []createOrderItemRequest `json:"items"`
}

type createOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateTrackingRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

type batchDeleteRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type orderResponse struct {
	ID                   uuid.UUID           `json:"id"`
	OrderNumber          string              `json:"order_number"`
	CustomerID           *uuid.UUID          `json:"customer_id"`
	CustomerName         string              `json:"customer_name"`
	CustomerPhone        string              `json:"customer_phone"`
	CustomerAddress      *string             `json:"customer_address"`
	PaymentMethod        string              `json:"payment_method"`
	Status               string              `json:"status"`
	TrackingNumber       *string             `json:"tracking_number"`
	IsNewCustomer        bool                `json:"is_new_customer"`
	PriorityTier         *string             `json:"priority_tier"`
	RequiresVerification bool                `json:"requires_verification"`
	Subtotal             string              `json:"subtotal"`
	ShippingCost         string              `json:"shipping_cost"`
	BulkDiscountTotal    string              `json:"bulk_discount_total"`
	FinalTotal           string              `json:"final_total"`
	Items                []orderItemResponse `json:"items,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type orderItemResponse struct {
	ID                 uuid.UUID `json:"id"`
	ProductID          uuid.UUID `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Quantity           int32     `json:"quantity"`
	UnitPrice          string    `json:"unit_price"`
	DiscountPercentage string    `json:"discount_percentage"`
	FinalUnitPrice     string    `json:"final_unit_price"`
	LineTotal          string    `json:"line_total"`
}

func toOrderResponse(o database.Order) orderResponse {
	resp := orderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		CustomerName:         o.CustomerName,
		CustomerPhone:        o.CustomerPhone,
		PaymentMethod:        o.PaymentMethod,
		Status:               o.Status,
		IsNewCustomer:        o.IsNewCustomer,
		RequiresVerification: o.RequiresVerification,
		Subtotal:             numericToString(o.Subtotal),
		ShippingCost:         numericToString(o.ShippingCost),
		BulkDiscountTotal:    numericToString(o.BulkDiscountTotal),
		FinalTotal:           numericToString(o.FinalTotal),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
	if o.CustomerID.Valid {
		id := uuid.UUID(o.CustomerID.Bytes)
		resp.CustomerID = &id
	}
	if o.CustomerAddress.Valid {
		resp.CustomerAddress = &o.CustomerAddress.String
	}
	if o.TrackingNumber.Valid {
		resp.TrackingNumber = &o.TrackingNumber.String
	}
	if o.PriorityTier.Valid {
		resp.PriorityTier = &o.PriorityTier.String
	}
	return resp
}

func toOrderItemResponse(item database.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:                 item.ID,
		ProductID:          item.ProductID,
		ProductName:        item.ProductName,
		Quantity:           item.Quantity,
		UnitPrice:          numericToString(item.UnitPrice),
		DiscountPercentage: numericToString(item.DiscountPercentage),
		FinalUnitPrice:     numericToString(item.FinalUnitPrice),
		LineTotal:          numericToString(item.LineTotal),
	}
}

// --- Handlers ---

// List returns orders filtered by status and creation date range, newest
// first, paginated with limit/offset.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := database.ListOrdersParams{
		Limit:  defaultOrderPageSize,
		Offset: 0,
	}

	if s := q.Get("status"); s != "" {
		if !isValidOrderStatus(s) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
		params.Status = pgtype.Text{String: s, Valid: true}
	}
	if s := q.Get("start_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
			return
		}
		params.StartDate = pgtype.Timestamptz{Time: t, Valid: true}
	}
	if s := q.Get("end_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end_date"})
			return
		}
		params.EndDate = pgtype.Timestamptz{Time: t, Valid: true}
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		params.Limit = int32(n)
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
			return
		}
		params.Offset = int32(n)
	}

	orders, err := h.store.ListOrders(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single order with its line items.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	items, err := h.store.ListOrderItemsByOrder(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: list order items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := toOrderResponse(order)
	resp.Items = make([]orderItemResponse, len(items))
	for i, item := range items {
		resp.Items[i] = toOrderItemResponse(item)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create records a manually entered order (phone / WhatsApp orders keyed in
// by staff). Pricing and stock are handled by the order service in one
// transaction.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	svcReq := service.CreateOrderRequest{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		PriorityTier:    req.PriorityTier,
		ShippingCost:    req.ShippingCost,
	}
	for _, item := range req.Items {
		svcReq.Items = append(svcReq.Items, service.CreateOrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.service.CreateOrder(r.Context(), svcReq)
	if err != nil {
		if isOrderValidationError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrProductNotFound) || errors.Is(err, service.ErrCustomerNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrInsufficientStock) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("ERROR: create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := toOrderResponse(result.Order)
	resp.Items = make([]orderItemResponse, len(result.Items))
	for i, item := range result.Items {
		resp.Items[i] = toOrderItemResponse(item)
	}

	h.broadcastOrder("order.created", result.Order)
	writeJSON(w, http.StatusCreated, resp)
}

// UpdateStatus advances an order through its lifecycle. The transition is
// validated against the current status, then applied with a compare-and-set
// so two admins racing on the same order cannot both win.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if !isValidOrderStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order for status update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if err := validateStatusTransition(order.Status, req.Status); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	updated, err := h.store.UpdateOrderStatus(r.Context(), database.UpdateOrderStatusParams{
		Status:   req.Status,
		ID:       id,
		Status_2: order.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Someone else moved the order between our read and write.
			writeJSON(w, http.StatusConflict, map[string]string{"error": "order status changed concurrently"})
			return
		}
		log.Printf("ERROR: update order status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastOrder("order.status_changed", updated)
	writeJSON(w, http.StatusOK, toOrderResponse(updated))
}

// UpdateTracking assigns a tracking number. Assigning tracking moves the
// order to SHIPPED regardless of its current workflow position, except from
// the terminal states.
func (h *OrderHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req updateTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.TrackingNumber == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tracking_number is required"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order for tracking update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if isTerminalStatus(order.Status) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": fmt.Sprintf("cannot assign tracking to a %s order", order.Status),
		})
		return
	}

	updated, err := h.store.UpdateOrderTracking(r.Context(), database.UpdateOrderTrackingParams{
		TrackingNumber: pgtype.Text{String: req.TrackingNumber, Valid: true},
		Status:         enum.OrderStatusShipped,
		ID:             id,
	})
	if err != nil {
		log.Printf("ERROR: update order tracking: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastOrder("order.status_changed", updated)
	writeJSON(w, http.StatusOK, toOrderResponse(updated))
}

// Delete removes an order and its items permanently.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	affected, err := h.store.DeleteOrder(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: delete order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if affected == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	h.hub.Broadcast(ws.TopicOrders, ws.Event{
		Type:    "order.deleted",
		Payload: mustMarshal(map[string]string{"id": id.String()}),
	})
	w.WriteHeader(http.StatusNoContent)
}

// BatchDelete removes a set of orders in one transaction. All-or-nothing:
// one unknown ID fails the whole batch.
func (h *OrderHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	var req batchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID: " + raw})
			return
		}
		ids = append(ids, id)
	}

	if err := h.service.BatchDelete(r.Context(), ids); err != nil {
		if errors.Is(err, service.ErrEmptyOrderIDs) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("ERROR: batch delete orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	for _, id := range ids {
		h.hub.Broadcast(ws.TopicOrders, ws.Event{
			Type:    "order.deleted",
			Payload: mustMarshal(map[string]string{"id": id.String()}),
		})
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": len(ids)})
}

// Invoice renders a printable HTML invoice for the order.
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order for invoice: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	items, err := h.store.ListOrderItemsByOrder(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: list order items for invoice: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	store := h.storeProfile(r.Context())

	data := invoice.Data{
		OrderNumber:       order.OrderNumber,
		CreatedAt:         order.CreatedAt,
		StoreName:         store.StoreName,
		StoreAddress:      store.Address,
		StorePhone:        store.Phone,
		CustomerName:      order.CustomerName,
		CustomerPhone:     order.CustomerPhone,
		PaymentMethod:     order.PaymentMethod,
		Status:            order.Status,
		Subtotal:          numericToString(order.Subtotal),
		BulkDiscountTotal: numericToString(order.BulkDiscountTotal),
		ShippingCost:      numericToString(order.ShippingCost),
		FinalTotal:        numericToString(order.FinalTotal),
	}
	if order.CustomerAddress.Valid {
		data.CustomerAddress = order.CustomerAddress.String
	}
	for _, item := range items {
		data.Items = append(data.Items, invoice.Item{
			ProductName:        item.ProductName,
			Quantity:           item.Quantity,
			UnitPrice:          numericToString(item.UnitPrice),
			DiscountPercentage: discountLabel(item.DiscountPercentage),
			FinalUnitPrice:     numericToString(item.FinalUnitPrice),
			LineTotal:          numericToString(item.LineTotal),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := invoice.Render(w, data); err != nil {
		log.Printf("ERROR: render invoice: %v", err)
	}
}

// WhatsAppLink builds a wa.me link pre-filled with the order confirmation
// message, so staff can notify the customer in one click.
func (h *OrderHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order for whatsapp link: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	items, err := h.store.ListOrderItemsByOrder(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: list order items for whatsapp link: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	store := h.storeProfile(r.Context())

	msg := fmt.Sprintf("Hi %s! Your order %s from %s:\n", order.CustomerName, order.OrderNumber, store.StoreName)
	for _, item := range items {
		msg += fmt.Sprintf("- %dx %s (%s)\n", item.Quantity, item.ProductName, numericToString(item.LineTotal))
	}
	msg += fmt.Sprintf("Total: %s\nStatus: %s", numericToString(order.FinalTotal), order.Status)
	if order.TrackingNumber.Valid {
		msg += fmt.Sprintf("\nTracking: %s", order.TrackingNumber.String)
	}

	link := "https://wa.me/" + sanitizePhone(order.CustomerPhone) + "?text=" + url.QueryEscape(msg)
	writeJSON(w, http.StatusOK, map[string]string{"link": link})
}

// --- Helpers ---

// storeProfile loads the store settings document, falling back to defaults
// when it has never been saved.
func (h *OrderHandler) storeProfile(ctx context.Context) storeSettings {
	s := defaultStoreSettings()
	row, err := h.store.GetSetting(ctx, enum.SettingsKeyStore)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("ERROR: get store settings: %v", err)
		}
		return s
	}
	if err := json.Unmarshal(row.Payload, &s); err != nil {
		log.Printf("ERROR: decode store settings: %v", err)
		return defaultStoreSettings()
	}
	return s
}

func (h *OrderHandler) broadcastOrder(eventType string, o database.Order) {
	h.hub.Broadcast(ws.TopicOrders, ws.Event{
		Type:    eventType,
		Payload: mustMarshal(toOrderResponse(o)),
	})
}

// sanitizePhone strips everything but digits so the number fits wa.me's
// format.
func sanitizePhone(phone string) string {
	out := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			out = append(out, phone[i])
		}
	}
	return string(out)
}

// discountLabel renders a tier percentage without trailing zeros, "0" when
// no discount applied.
func discountLabel(n pgtype.Numeric) string {
	d, err := decimal.NewFromString(numericToString(n))
	if err != nil {
		return "0"
	}
	return d.String()
}

func isValidOrderStatus(s string) bool {
	switch s {
	case enum.OrderStatusPending,
		enum.OrderStatusConfirmed,
		enum.OrderStatusProcessing,
		enum.OrderStatusShipped,
		enum.OrderStatusDelivered,
		enum.OrderStatusCancelled:
		return true
	}
	return false
}

func isTerminalStatus(s string) bool {
	return s == enum.OrderStatusDelivered || s == enum.OrderStatusCancelled
}

// allowedTransitions defines valid status transitions.
// Key is current status, value is the set of statuses it can transition to.
var allowedTransitions = map[string][]string{
	enum.OrderStatusPending:    {enum.OrderStatusConfirmed, enum.OrderStatusCancelled},
	enum.OrderStatusConfirmed:  {enum.OrderStatusProcessing, enum.OrderStatusCancelled},
	enum.OrderStatusProcessing: {enum.OrderStatusShipped, enum.OrderStatusCancelled},
	enum.OrderStatusShipped:    {enum.OrderStatusDelivered},
}

// validateStatusTransition checks if the transition from current to next is allowed.
func validateStatusTransition(current, next string) error {
	allowed, ok := allowedTransitions[current]
	if !ok {
		return fmt.Errorf("cannot transition from %s", current)
	}
	for _, s := range allowed {
		if s == next {
			return nil
		}
	}
	return fmt.Errorf("cannot transition from %s to %s", current, next)
}

// isOrderValidationError reports whether the service error maps to a 400.
func isOrderValidationError(err error) bool {
	for _, target := range []error{
		service.ErrEmptyItems,
		service.ErrInvalidPayment,
		service.ErrInvalidQuantity,
		service.ErrInvalidProductID,
		service.ErrInvalidCustomerID,
		service.ErrCustomerNameRequired,
		service.ErrInvalidShippingCost,
		service.ErrInvalidPriorityTier,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
