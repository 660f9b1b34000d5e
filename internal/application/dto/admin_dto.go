package dto

import "github.com/shopspring/decimal"

// TotalResponse respuesta de los contadores de administración
// (GET /admin/total-usuarios, /admin/total-productos, /admin/total-pedidos).
type TotalResponse struct {
	Total int64 `json:"total"`
}

// VentasMesResponse respuesta de GET /admin/ventas-mes.
type VentasMesResponse struct {
	TotalMes decimal.Decimal `json:"total_mes"`
}

// PedidoResponse fila del listado de GET /admin/pedidos.
type PedidoResponse struct {
	ID      int64           `json:"id"`
	Fecha   string          `json:"fecha"` // RFC 3339
	Total   decimal.Decimal `json:"total"`
	Usuario string          `json:"usuario"`
}

// StatsResponse resumen de GET /admin/stats.
// pendientes = boletas creadas hoy (aún por despachar).
type StatsResponse struct {
	Usuarios   int64           `json:"usuarios"`
	Pedidos    int64           `json:"pedidos"`
	Pendientes int64           `json:"pendientes"`
	VentasMes  decimal.Decimal `json:"ventasMes"`
}
