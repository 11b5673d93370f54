package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubtenis/tienda-api/internal/application/auth"
	"github.com/clubtenis/tienda-api/internal/application/cart"
	"github.com/clubtenis/tienda-api/internal/application/inventory"
	"github.com/clubtenis/tienda-api/internal/application/reporting"
	"github.com/clubtenis/tienda-api/internal/application/usecase"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	UserUC       *usecase.UserUseCase
	PurchaseUC   *usecase.PurchaseUseCase
	InquiryUC    *usecase.InquiryUseCase
	RegisterLoss *inventory.RegisterLossUseCase
	ReportUC     *reporting.ReportUseCase
	CartSvc      *cart.Service
	Metrics      *MetricsHandler
	JWTSecret    string
}

// Router registra las rutas de la API.
// Catálogo y auth son públicos; el resto exige Bearer Token, y las
// operaciones de administración exigen además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.CountRequests)
	}

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	requireAdmin := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/check-username", authHandler.CheckUsername)
	authGroup.Get("/check-email", authHandler.CheckEmail)
	authGroup.Post("/request-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Products (lectura pública, escritura admin)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, requireAdmin, productHandler.Create)
	products.Put("/:id", requireAuth, requireAdmin, productHandler.Update)
	products.Delete("/:id", requireAuth, requireAdmin, productHandler.Delete)

	// Users (solo admin)
	users := api.Group("/users", requireAuth, requireAdmin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Purchases (solo admin: el registro de ventas lo hace el mostrador)
	purchases := api.Group("/purchases", requireAuth, requireAdmin)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	// Losses (solo admin; ?stats=true devuelve estadísticas)
	losses := api.Group("/losses", requireAuth, requireAdmin)
	lossHandler := NewLossHandler(deps.RegisterLoss, deps.ReportUC)
	losses.Post("/", lossHandler.Create)
	losses.Get("/", lossHandler.List)
	losses.Delete("/:id", lossHandler.Delete)

	// Inquiries (autenticado; los socios ven solo las propias)
	inquiries := api.Group("/inquiries", requireAuth)
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	inquiries.Post("/", inquiryHandler.Create)
	inquiries.Get("/", inquiryHandler.List)
	inquiries.Put("/:id", requireAdmin, inquiryHandler.Update)

	// Reports (solo admin)
	reports := api.Group("/reports", requireAuth, requireAdmin)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Get)
	reports.Get("/inventory/pdf", reportHandler.InventoryPDF)

	// Cart (autenticado, siempre sobre el carrito propio)
	cartGroup := api.Group("/cart", requireAuth)
	cartHandler := NewCartHandler(deps.CartSvc)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)

	// Metrics (solo admin)
	if deps.Metrics != nil {
		api.Get("/metrics", requireAuth, requireAdmin, deps.Metrics.Get)
	}
}
