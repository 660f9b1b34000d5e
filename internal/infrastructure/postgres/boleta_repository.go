package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.BoletaRepository = (*BoletaRepo)(nil)

// BoletaRepo implementación de BoletaRepository (usable con pool o tx;
// el flujo de creación siempre la usa atada a una tx vía TxRunner).
type BoletaRepo struct {
	q Querier
}

// NewBoletaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBoletaRepository(q Querier) *BoletaRepo {
	return &BoletaRepo{q: q}
}

// Create persiste la cabecera de la boleta. La fecha la asigna la DB
// (DEFAULT now()); el id generado queda en boleta.ID.
func (r *BoletaRepo) Create(ctx context.Context, boleta *entity.Boleta) error {
	query := `
		INSERT INTO boletas (usuario_id, total)
		VALUES ($1, $2)
		RETURNING id, fecha`
	err := r.q.QueryRow(ctx, query, boleta.UsuarioID, boleta.Total).Scan(&boleta.ID, &boleta.Fecha)
	if err != nil {
		return fmt.Errorf("insert boleta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de detalle de la boleta.
func (r *BoletaRepo) CreateDetalle(ctx context.Context, detalle *entity.DetalleBoleta) error {
	query := `
		INSERT INTO detalle_boleta (boleta_id, producto_id, cantidad, subtotal)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		detalle.BoletaID, detalle.ProductoID, detalle.Cantidad, detalle.Subtotal,
	).Scan(&detalle.ID)
	if err != nil {
		return fmt.Errorf("insert detalle_boleta: %w", err)
	}
	return nil
}
