package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/enum"
	"github.com/serunimart/api/internal/pricing"
	"github.com/shopspring/decimal"
)

const maxOrderNumberRetries = 3

// Errors returned by the order service.
var (
	ErrEmptyItems           = errors.New("items are required")
	ErrInvalidPayment       = errors.New("invalid payment_method")
	ErrInvalidQuantity      = errors.New("quantity must be > 0")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidProductID     = errors.New("invalid product_id")
	ErrInvalidCustomerID    = errors.New("invalid customer_id")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCustomerNameRequired = errors.New("customer_name is required")
	ErrInvalidShippingCost  = errors.New("invalid shipping_cost")
	ErrInvalidPriorityTier  = errors.New("invalid priority_tier")
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyOrderIDs        = errors.New("order_ids are required")
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OrderStore defines the DB methods needed to create and delete orders.
// Satisfied by *database.Queries (and its WithTx variant).
type OrderStore interface {
	GetNextOrderNumber(ctx context.Context) (int32, error)
	GetProduct(ctx context.Context, id uuid.UUID) (database.Product, error)
	DecrementProductStock(ctx context.Context, arg database.DecrementProductStockParams) (int64, error)
	ListActiveBulkPricingTiers(ctx context.Context) ([]database.BulkPricingTier, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (database.Customer, error)
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreateOrderItem(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
}

// NewOrderStore creates an OrderStore from a DBTX (pool or tx).
// This allows the service to create store instances from transactions.
type NewOrderStore func(db database.DBTX) OrderStore

// CreateOrderRequest is the validated input for a manually entered order
// (phone and WhatsApp orders keyed in by staff).
type CreateOrderRequest struct {
	CustomerID      string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   string
	PriorityTier    string
	ShippingCost    string
	Items           []CreateOrderItemRequest
}

// CreateOrderItemRequest is a single item in the order.
type CreateOrderItemRequest struct {
	ProductID string
	Quantity  int32
}

// CreateOrderResult is the full created order with items.
type CreateOrderResult struct {
	Order database.Order
	Items []database.OrderItem
}

// OrderService handles order business logic.
type OrderService struct {
	pool     TxBeginner
	newStore NewOrderStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(pool TxBeginner, newStore NewOrderStore) *OrderService {
	return &OrderService{pool: pool, newStore: newStore}
}

// processedItem holds a prepared order item insert.
type processedItem struct {
	params   database.CreateOrderItemParams
	quantity int32
	product  uuid.UUID
}

// CreateOrder validates, prices, and creates an order atomically. Stock is
// decremented in the same transaction, so a failed insert never leaks a
// reservation. Retries up to maxOrderNumberRetries times on order_number
// unique constraint violations (concurrent transactions can read the same
// MAX before either commits).
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	if !isValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPayment
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if req.PriorityTier != "" && !isValidPriorityTier(req.PriorityTier) {
		return nil, ErrInvalidPriorityTier
	}
	if req.CustomerID == "" && req.CustomerName == "" {
		return nil, ErrCustomerNameRequired
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberRetries; attempt++ {
		result, err := s.createOrderTx(ctx, req)
		if err == nil {
			return result, nil
		}
		if isOrderNumberConflict(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

// isOrderNumberConflict checks if the error is a unique constraint violation
// on the order number (pgconn error code 23505).
func isOrderNumberConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "orders_order_number_key"
	}
	return false
}

// createOrderTx executes the full order creation in a single transaction.
func (s *OrderService) createOrderTx(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	nextNum, err := store.GetNextOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("get next order number: %w", err)
	}
	orderNumber := fmt.Sprintf("SRN-%03d", nextNum)

	// Active bulk tiers apply globally, fetch once.
	tierRows, err := store.ListActiveBulkPricingTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bulk pricing tiers: %w", err)
	}
	tiers := make([]pricing.Tier, 0, len(tierRows))
	for _, t := range tierRows {
		tier := pricing.Tier{
			MinQuantity:        t.MinQuantity,
			DiscountPercentage: numericToDecimal(t.DiscountPercentage),
		}
		if t.MaxQuantity.Valid {
			max := t.MaxQuantity.Int32
			tier.MaxQuantity = &max
		}
		tiers = append(tiers, tier)
	}

	// --- Process items: validate, price, reserve stock ---
	var items []processedItem
	var lines []pricing.Line
	reserved := make(map[uuid.UUID]int32)

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item[%d]: %w", i, ErrInvalidQuantity)
		}
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("item[%d]: %w", i, ErrInvalidProductID)
		}

		product, err := store.GetProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("item[%d]: %w", i, ErrProductNotFound)
			}
			return nil, fmt.Errorf("item[%d]: get product: %w", i, err)
		}
		// Lines may repeat a product, so availability is checked against
		// the running total reserved for it, not each line in isolation.
		if product.Stock < reserved[productID]+item.Quantity {
			return nil, fmt.Errorf("item[%d] %s: %w", i, product.Name, ErrInsufficientStock)
		}
		reserved[productID] += item.Quantity

		var salePrice *decimal.Decimal
		if product.SalePrice.Valid {
			sp := numericToDecimal(product.SalePrice)
			salePrice = &sp
		}
		unitPrice := pricing.EffectiveUnitPrice(numericToDecimal(product.Price), salePrice)
		line := pricing.PriceLine(unitPrice, item.Quantity, tiers)
		lines = append(lines, line)

		items = append(items, processedItem{
			params: database.CreateOrderItemParams{
				ProductID:          productID,
				ProductName:        product.Name,
				Quantity:           item.Quantity,
				UnitPrice:          decimalToNumeric(line.UnitPrice),
				DiscountPercentage: decimalToNumeric(line.DiscountPercentage),
				FinalUnitPrice:     decimalToNumeric(line.FinalUnitPrice),
				LineTotal:          decimalToNumeric(line.LineTotal),
			},
			quantity: item.Quantity,
			product:  productID,
		})
	}

	// --- Totals ---
	shippingCost := decimal.Zero
	if req.ShippingCost != "" {
		shippingCost, err = decimal.NewFromString(req.ShippingCost)
		if err != nil || shippingCost.IsNegative() {
			return nil, ErrInvalidShippingCost
		}
	}
	totals := pricing.OrderTotals(lines, shippingCost)

	// --- Resolve customer ---
	customerID := pgtype.UUID{}
	customerName := req.CustomerName
	customerPhone := req.CustomerPhone
	isNewCustomer := true
	if req.CustomerID != "" {
		cid, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, ErrInvalidCustomerID
		}
		customer, err := store.GetCustomer(ctx, cid)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("get customer: %w", err)
		}
		customerID = pgtype.UUID{Bytes: cid, Valid: true}
		customerName = customer.Name
		customerPhone = customer.Phone
		isNewCustomer = false
	}

	customerAddress := pgtype.Text{}
	if req.CustomerAddress != "" {
		customerAddress = pgtype.Text{String: req.CustomerAddress, Valid: true}
	}

	priorityTier := pgtype.Text{String: enum.PriorityTierStandard, Valid: true}
	if req.PriorityTier != "" {
		priorityTier = pgtype.Text{String: req.PriorityTier, Valid: true}
	}

	// --- Insert order ---
	order, err := store.CreateOrder(ctx, database.CreateOrderParams{
		OrderNumber:          orderNumber,
		CustomerID:           customerID,
		CustomerName:         customerName,
		CustomerPhone:        customerPhone,
		CustomerAddress:      customerAddress,
		PaymentMethod:        req.PaymentMethod,
		Status:               enum.OrderStatusPending,
		IsNewCustomer:        isNewCustomer,
		PriorityTier:         priorityTier,
		RequiresVerification: isNewCustomer,
		Subtotal:             decimalToNumeric(totals.Subtotal),
		ShippingCost:         decimalToNumeric(totals.ShippingCost),
		BulkDiscountTotal:    decimalToNumeric(totals.BulkDiscountTotal),
		FinalTotal:           decimalToNumeric(totals.FinalTotal),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// --- Insert items and decrement stock ---
	var itemResults []database.OrderItem
	for _, pi := range items {
		pi.params.OrderID = order.ID
		item, err := store.CreateOrderItem(ctx, pi.params)
		if err != nil {
			return nil, fmt.Errorf("create order item: %w", err)
		}
		// Guarded relative decrement: a concurrent order that drained the
		// stock between our read and this write affects zero rows, and the
		// whole transaction rolls back instead of overselling.
		rows, err := store.DecrementProductStock(ctx, database.DecrementProductStockParams{
			Quantity: pi.quantity,
			ID:       pi.product,
		})
		if err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
		if rows == 0 {
			return nil, fmt.Errorf("%s: %w", pi.params.ProductName, ErrInsufficientStock)
		}
		itemResults = append(itemResults, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &CreateOrderResult{
		Order: order,
		Items: itemResults,
	}, nil
}

// BatchDelete removes a set of orders atomically. If any ID does not exist
// the whole batch is rolled back, so a half-applied bulk action can never
// leave the list view inconsistent.
func (s *OrderService) BatchDelete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyOrderIDs
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)
	for _, id := range ids {
		affected, err := store.DeleteOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("delete order %s: %w", id, err)
		}
		if affected == 0 {
			return fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// --- Helpers ---

func isValidPaymentMethod(s string) bool {
	switch s {
	case enum.PaymentMethodCOD, enum.PaymentMethodTransfer, enum.PaymentMethodQRIS:
		return true
	}
	return false
}

func isValidPriorityTier(s string) bool {
	switch s {
	case enum.PriorityTierStandard, enum.PriorityTierExpress, enum.PriorityTierWholesale:
		return true
	}
	return false
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
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

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
