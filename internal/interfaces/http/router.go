package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/stock-api/internal/application/analytics"
	"github.com/jhoicas/stock-api/internal/application/auth"
	"github.com/jhoicas/stock-api/internal/application/i18n"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/report"
	"github.com/jhoicas/stock-api/internal/application/usecase"
	"github.com/jhoicas/stock-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	MovementUC     *inventory.MovementUseCase
	ReportUC       *report.UseCase
	SearchUC       *usecase.SearchUseCase
	DashboardUC    *analytics.DashboardUseCase
	Translations   *i18n.Service
	MetricsHandler http.Handler // opcional, servido en /metrics
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, userHandler.Me)

	// Traducciones (público)
	api.Get("/translations", NewTranslationHandler(deps.Translations).Get)

	canViewCatalog := RequirePermission(policy.ViewCatalog)
	canManageCatalog := RequirePermission(policy.ManageCatalog)

	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", canViewCatalog, productHandler.List)
	products.Get("/:id", canViewCatalog, productHandler.GetByID)
	products.Post("/", canManageCatalog, productHandler.Create)
	products.Put("/:id", canManageCatalog, productHandler.Update)
	products.Delete("/:id", canManageCatalog, productHandler.Delete)
	products.Post("/:id/image", canManageCatalog, productHandler.UploadImage)

	categories := api.Group("/categories", requireAuth)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", canViewCatalog, categoryHandler.List)
	categories.Get("/:id", canViewCatalog, categoryHandler.GetByID)
	categories.Post("/", canManageCatalog, categoryHandler.Create)
	categories.Put("/:id", canManageCatalog, categoryHandler.Update)
	categories.Delete("/:id", canManageCatalog, categoryHandler.Delete)

	suppliers := api.Group("/suppliers", requireAuth)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", canViewCatalog, supplierHandler.List)
	suppliers.Get("/:id", canViewCatalog, supplierHandler.GetByID)
	suppliers.Post("/", canManageCatalog, supplierHandler.Create)
	suppliers.Put("/:id", canManageCatalog, supplierHandler.Update)
	suppliers.Delete("/:id", canManageCatalog, supplierHandler.Delete)

	// ApplyMovement repite la verificación de RecordMovement con el rol guardado.
	movements := api.Group("/stock-movements", requireAuth)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	movements.Get("/", RequirePermission(policy.ViewMovements), inventoryHandler.List)
	movements.Get("/:id", RequirePermission(policy.ViewMovements), inventoryHandler.GetByID)
	movements.Post("/", RequirePermission(policy.RecordMovement), inventoryHandler.RecordMovement)

	reports := api.Group("/reports", requireAuth, RequirePermission(policy.ViewReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.pdf", reportHandler.InventoryPDF)
	reports.Get("/sales.pdf", reportHandler.SalesPDF)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/sales", reportHandler.Sales)

	api.Get("/dashboard/summary", requireAuth, canViewCatalog, NewDashboardHandler(deps.DashboardUC).GetSummary)

	api.Get("/search", requireAuth, RequirePermission(policy.Search), NewSearchHandler(deps.SearchUC).Search)

	users := api.Group("/users", requireAuth, RequirePermission(policy.ManageUsers))
	users.Put("/:id/role", userHandler.AssignRole)
}
