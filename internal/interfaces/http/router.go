package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockops-api/internal/application/analytics"
	"github.com/jhoicas/stockops-api/internal/application/auth"
	"github.com/jhoicas/stockops-api/internal/application/inventory"
	"github.com/jhoicas/stockops-api/internal/application/usecase"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DocumentUC  *inventory.DocumentUseCase
	WarehouseUC *usecase.WarehouseUseCase
	LocationUC  *usecase.LocationUseCase
	CatalogUC   *usecase.CatalogUseCase
	StockUC     *usecase.StockUseCase
	MoveUC      *usecase.MoveHistoryUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
	Cookie      CookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	session := AuthMiddleware(deps.JWTSecret, deps.Cookie.Name)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/me", session, authHandler.Me)

	// Rutas protegidas (cookie de sesión o Bearer)
	api := app.Group("/api", session)

	for path, h := range map[string]*DocumentHandler{
		"/deliveries": NewDeliveryHandler(deps.DocumentUC),
		"/receipts":   NewReceiptHandler(deps.DocumentUC),
	} {
		g := api.Group(path)
		g.Get("/", h.List)
		g.Post("/", h.Create)
		g.Get("/:id", h.Get)
		g.Post("/:id/status", h.Transition)
		g.Get("/:id/pdf", h.PDF)
	}

	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.MoveUC)
	api.Get("/stock", inventoryHandler.ListStock)
	api.Put("/stock/:id", inventoryHandler.UpdateStock)
	api.Get("/move-history", inventoryHandler.ListMoveHistory)

	// Warehouses y locations: lectura para todos, escritura solo admin
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.LocationUC)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	locations := api.Group("/locations")
	locations.Get("/", warehouseHandler.ListLocations)
	locations.Post("/", adminOnly, warehouseHandler.CreateLocation)
	locations.Put("/:id", adminOnly, warehouseHandler.UpdateLocation)
	locations.Delete("/:id", adminOnly, warehouseHandler.DeleteLocation)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.ListProducts)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Get("/contacts", catalogHandler.ListContacts)
	api.Post("/contacts", catalogHandler.CreateContact)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)
}
