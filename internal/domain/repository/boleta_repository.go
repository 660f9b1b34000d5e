package repository

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// BoletaRepository define el puerto de persistencia para Boleta y sus detalles.
// Las implementaciones pueden estar atadas a un pool o a una transacción.
type BoletaRepository interface {
	// Create persiste la cabecera y deja el id generado en boleta.ID.
	Create(ctx context.Context, boleta *entity.Boleta) error
	// CreateDetalle persiste una línea; debe referenciar un boleta_id ya insertado.
	CreateDetalle(ctx context.Context, detalle *entity.DetalleBoleta) error
}
