package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
)

// boletaCreator es el contrato mínimo que necesita el handler; lo implementa
// *boleta.CreateBoletaUseCase.
type boletaCreator interface {
	CreateBoleta(ctx context.Context, in dto.CreateBoletaRequest) (*dto.CreateBoletaResponse, error)
}

// BoletaHandler maneja la creación de boletas (pedidos).
type BoletaHandler struct {
	uc boletaCreator
}

// NewBoletaHandler construye el handler.
func NewBoletaHandler(uc boletaCreator) *BoletaHandler {
	return &BoletaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear boleta
// @Tags         boletas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBoletaRequest  true  "usuario_id, items"
// @Success      200   {object}  dto.CreateBoletaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /boletas [post]
func (h *BoletaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBoletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Mensaje: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBoleta(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Mensaje: "datos incompletos"})
		}
		log.Error().Err(err).Msg("crear boleta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Mensaje: "error al crear el pedido"})
	}
	return c.JSON(out)
}
