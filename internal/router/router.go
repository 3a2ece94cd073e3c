package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serunimart/api/internal/cache"
	"github.com/serunimart/api/internal/config"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/enum"
	"github.com/serunimart/api/internal/handler"
	mw "github.com/serunimart/api/internal/middleware"
	"github.com/serunimart/api/internal/service"
	"github.com/serunimart/api/internal/upload"
	"github.com/serunimart/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
// Applies authentication and role-based middleware as needed.
func New(cfg *config.Config, queries *database.Queries, pool *pgxpool.Pool, hub *ws.Hub, summaryCache cache.SummaryCache) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",         // SvelteKit dev server
			"https://admin.serunimart.com",  // Production admin
			"https://stg-admin.serunimart.com", // Staging admin
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(queries, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/feed", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		authHandler.RegisterProtectedRoutes(r)

		// Categories
		categoryHandler := handler.NewCategoryHandler(queries)
		r.Route("/categories", categoryHandler.RegisterRoutes)

		// Products
		productHandler := handler.NewProductHandler(queries, hub)
		r.Route("/products", productHandler.RegisterRoutes)

		// Orders
		newOrderStore := func(db database.DBTX) service.OrderStore {
			return database.New(db)
		}
		orderService := service.NewOrderService(pool, newOrderStore)
		orderHandler := handler.NewOrderHandler(queries, orderService, hub)
		r.Route("/orders", orderHandler.RegisterRoutes)

		// Customers
		customerHandler := handler.NewCustomerHandler(queries)
		r.Route("/customers", customerHandler.RegisterRoutes)

		// Bulk pricing
		bulkPricingService := service.NewBulkPricingService(pool, func(db database.DBTX) service.BulkPricingStore {
			return database.New(db)
		})
		bulkPricingHandler := handler.NewBulkPricingHandler(queries, bulkPricingService)
		r.Route("/bulk-pricing", bulkPricingHandler.RegisterRoutes)

		// Combos
		comboService := service.NewComboService(pool, func(db database.DBTX) service.ComboStore {
			return database.New(db)
		})
		comboHandler := handler.NewComboHandler(queries, comboService)
		r.Route("/combos", comboHandler.RegisterRoutes)

		// Dashboard
		dashboardHandler := handler.NewDashboardHandler(queries, summaryCache)
		r.Route("/dashboard", dashboardHandler.RegisterRoutes)

		// Image uploads
		uploadHandler := handler.NewUploadHandler(upload.NewClient(cfg.ImageUploadURL, cfg.ImageUploadKey))
		r.Route("/uploads", uploadHandler.RegisterRoutes)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleAdmin))

			wholesaleHandler := handler.NewWholesaleHandler(queries)
			r.Route("/wholesale-accounts", wholesaleHandler.RegisterRoutes)

			settingsHandler := handler.NewSettingsHandler(queries)
			r.Route("/settings", settingsHandler.RegisterRoutes)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
