package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PedidoResult fila cruda del listado de pedidos para administración.
// Lo produce la DB; el use case lo convierte en DTO.
type PedidoResult struct {
	ID      int64
	Fecha   time.Time
	Total   decimal.Decimal
	Usuario string // nombre del comprador; vacío si el usuario fue eliminado
}

// StatsRepository define las consultas de lectura para los agregados de administración.
// Las implementaciones son read-only (no modifican datos).
type StatsRepository interface {
	CountUsuarios(ctx context.Context) (int64, error)
	CountProductos(ctx context.Context) (int64, error)
	CountBoletas(ctx context.Context) (int64, error)
	// CountBoletasHoy cuenta las boletas cuya fecha cae en el día actual.
	CountBoletasHoy(ctx context.Context) (int64, error)
	// VentasMes suma los totales de las boletas del mes en curso. Devuelve cero si no hay ventas.
	VentasMes(ctx context.Context) (decimal.Decimal, error)
	// ListPedidos devuelve las boletas con el nombre del comprador, de la más reciente a la más antigua.
	ListPedidos(ctx context.Context) ([]PedidoResult, error)
}
