package enum

// ── Order lifecycle (CHECK constrained in DB) ──

const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

const (
	PriorityTierStandard  = "STANDARD"
	PriorityTierExpress   = "EXPRESS"
	PriorityTierWholesale = "WHOLESALE"
)

// ── User roles (CHECK constrained in DB) ──

const (
	UserRoleAdmin = "ADMIN"
	UserRoleStaff = "STAFF"
)

// ── Configurable labels (no DB constraint) ──

const (
	PaymentMethodCOD      = "COD"
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodQRIS     = "QRIS"
)

// Settings document keys. One row per key in the settings table.
const (
	SettingsKeyStore         = "store"
	SettingsKeyNotifications = "notifications"
	SettingsKeySecurity      = "security"
)
