package http

import (
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jhoicas/storefront-backend/internal/application/auth"
	"github.com/jhoicas/storefront-backend/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Seeder         *inventory.SeedInventoryUseCase
	StockLocations *inventory.StockLocationUseCase
	Levels         *inventory.InventoryLevelUseCase
	AuthUC         *auth.AdminAuthUseCase
	JWTSecret      string
	CookieSecret   string
	SessionTTL     time.Duration
	SecureCookie   bool
	StoreCORS      []string
	AdminCORS      []string
	AuthCORS       []string
}

// Router registra las rutas. Cada grupo (store, auth, admin) tiene sus propios orígenes CORS.
func Router(app *fiber.App, deps RouterDeps) {
	stockLocationHandler := NewStockLocationHandler(deps.StockLocations)

	// Store (público)
	store := app.Group("/store", corsFor(deps.StoreCORS))
	store.Get("/stock-locations", stockLocationHandler.List)

	// Auth (público)
	authGroup := app.Group("/auth", corsFor(deps.AuthCORS))
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL, deps.SecureCookie)
	authGroup.Post("/admin/token", authHandler.Token)

	// Admin (Bearer o cookie de sesión, rol admin)
	admin := app.Group("/admin",
		corsFor(deps.AdminCORS),
		AuthMiddleware(deps.JWTSecret, deps.CookieSecret),
		RequireRole(auth.RoleAdmin),
	)
	inventoryHandler := NewInventoryHandler(deps.Seeder, deps.Levels)
	admin.Post("/inventory/seed", inventoryHandler.Seed)
	admin.Get("/inventory-levels", inventoryHandler.ListLevels)
	admin.Get("/stock-locations", stockLocationHandler.List)
}

// corsFor arma el middleware CORS para una lista de orígenes.
// fiber no admite credenciales con "*", así que una lista vacía o con "*" se sirve abierta y sin credenciales.
func corsFor(origins []string) fiber.Handler {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return cors.New(cors.Config{AllowOrigins: "*"})
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
	})
}
