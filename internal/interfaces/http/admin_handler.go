package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/tienda-api/internal/application/admin"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
)

// AdminHandler expone los agregados de administración (solo lectura).
type AdminHandler struct {
	uc *admin.StatsUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *admin.StatsUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// TotalUsuarios GET /admin/total-usuarios
func (h *AdminHandler) TotalUsuarios(c *fiber.Ctx) error {
	out, err := h.uc.TotalUsuarios(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("total usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error obteniendo total de usuarios"})
	}
	return c.JSON(out)
}

// TotalProductos GET /admin/total-productos
func (h *AdminHandler) TotalProductos(c *fiber.Ctx) error {
	out, err := h.uc.TotalProductos(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("total productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error obteniendo total de productos"})
	}
	return c.JSON(out)
}

// TotalPedidos GET /admin/total-pedidos
func (h *AdminHandler) TotalPedidos(c *fiber.Ctx) error {
	out, err := h.uc.TotalPedidos(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("total pedidos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error obteniendo total de pedidos"})
	}
	return c.JSON(out)
}

// VentasMes GET /admin/ventas-mes
func (h *AdminHandler) VentasMes(c *fiber.Ctx) error {
	out, err := h.uc.VentasMes(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("ventas mes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error obteniendo ventas del mes"})
	}
	return c.JSON(out)
}

// Pedidos GET /admin/pedidos
func (h *AdminHandler) Pedidos(c *fiber.Ctx) error {
	out, err := h.uc.ListPedidos(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("listar pedidos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error al obtener pedidos"})
	}
	return c.JSON(out)
}

// Stats GET /admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error obteniendo estadísticas"})
	}
	return c.JSON(out)
}
