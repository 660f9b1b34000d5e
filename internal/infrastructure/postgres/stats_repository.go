package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los agregados de administración.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountUsuarios cuenta los usuarios registrados.
func (r *StatsRepo) CountUsuarios(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM usuarios`)
}

// CountProductos cuenta los productos del catálogo.
func (r *StatsRepo) CountProductos(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM productos`)
}

// CountBoletas cuenta las boletas emitidas.
func (r *StatsRepo) CountBoletas(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM boletas`)
}

// CountBoletasHoy cuenta las boletas cuya fecha cae en el día actual.
func (r *StatsRepo) CountBoletasHoy(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM boletas WHERE fecha::date = CURRENT_DATE`)
}

func (r *StatsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats count: %w", err)
	}
	return n, nil
}

// VentasMes suma los totales de las boletas del mes en curso.
// Usa COALESCE para devolver cero si no hay ventas en el período.
func (r *StatsRepo) VentasMes(ctx context.Context) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0) AS total_mes
		FROM boletas
		WHERE DATE_TRUNC('month', fecha) = DATE_TRUNC('month', CURRENT_DATE)`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats ventas mes: %w", err)
	}
	return total, nil
}

// ListPedidos devuelve las boletas con el nombre del comprador, recientes primero.
// LEFT JOIN: una boleta sin usuario (eliminado) igual aparece, con nombre vacío.
func (r *StatsRepo) ListPedidos(ctx context.Context) ([]repository.PedidoResult, error) {
	const query = `
		SELECT b.id, b.fecha, b.total, COALESCE(u.nombre, '') AS usuario
		FROM boletas b
		LEFT JOIN usuarios u ON b.usuario_id = u.id
		ORDER BY b.id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats list pedidos: %w", err)
	}
	defer rows.Close()

	var results []repository.PedidoResult
	for rows.Next() {
		var row repository.PedidoResult
		if err := rows.Scan(&row.ID, &row.Fecha, &row.Total, &row.Usuario); err != nil {
			return nil, fmt.Errorf("stats scan pedido: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
