package boleta

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un BoletaRepository atado a ella.
// Si fn retorna error, el caller garantiza rollback: la boleta y sus detalles se
// graban todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(boletaRepo repository.BoletaRepository) error) error
}
