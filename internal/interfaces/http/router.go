package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-api/internal/application/admin"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/boleta"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	CreateBoleta *boleta.CreateBoletaUseCase
	StatsUC      *admin.StatsUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// POST /boletas y /admin/* quedan fuera del middleware de auth a propósito:
// es la superficie documentada que consume el frontend actual.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	// Boletas (público)
	boletaHandler := NewBoletaHandler(deps.CreateBoleta)
	app.Post("/boletas", boletaHandler.Create)

	// Productos (protegido, requiere Bearer Token)
	productos := app.Group("/productos", AuthMiddleware(deps.JWTSecret))
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	// Admin (público, agregados de solo lectura)
	adminGroup := app.Group("/admin")
	adminHandler := NewAdminHandler(deps.StatsUC)
	adminGroup.Get("/total-usuarios", adminHandler.TotalUsuarios)
	adminGroup.Get("/total-productos", adminHandler.TotalProductos)
	adminGroup.Get("/total-pedidos", adminHandler.TotalPedidos)
	adminGroup.Get("/ventas-mes", adminHandler.VentasMes)
	adminGroup.Get("/pedidos", adminHandler.Pedidos)
	adminGroup.Get("/stats", adminHandler.Stats)
}
