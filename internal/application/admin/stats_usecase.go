// Package admin contiene los casos de uso de los agregados de administración
// (contadores, ventas del mes y listado de pedidos).
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// StatsUseCase expone los agregados del panel de administración.
//
// Fuente de datos: StatsRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// TotalUsuarios cuenta los usuarios registrados.
func (uc *StatsUseCase) TotalUsuarios(ctx context.Context) (*dto.TotalResponse, error) {
	n, err := uc.statsRepo.CountUsuarios(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: n}, nil
}

// TotalProductos cuenta los productos del catálogo.
func (uc *StatsUseCase) TotalProductos(ctx context.Context) (*dto.TotalResponse, error) {
	n, err := uc.statsRepo.CountProductos(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: n}, nil
}

// TotalPedidos cuenta las boletas emitidas.
func (uc *StatsUseCase) TotalPedidos(ctx context.Context) (*dto.TotalResponse, error) {
	n, err := uc.statsRepo.CountBoletas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: n}, nil
}

// VentasMes suma los totales de las boletas del mes en curso.
func (uc *StatsUseCase) VentasMes(ctx context.Context) (*dto.VentasMesResponse, error) {
	total, err := uc.statsRepo.VentasMes(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.VentasMesResponse{TotalMes: total}, nil
}

// ListPedidos devuelve las boletas con el nombre del comprador, recientes primero.
func (uc *StatsUseCase) ListPedidos(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := uc.statsRepo.ListPedidos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, dto.PedidoResponse{
			ID:      p.ID,
			Fecha:   p.Fecha.Format(time.RFC3339),
			Total:   p.Total,
			Usuario: p.Usuario,
		})
	}
	return out, nil
}

// GetStats construye el resumen de GET /admin/stats.
//
// Cuatro consultas en paralelo:
//  1. CountUsuarios    → Usuarios
//  2. CountBoletas     → Pedidos
//  3. CountBoletasHoy  → Pendientes
//  4. VentasMes        → VentasMes
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type ventasResult struct {
		total decimal.Decimal
		err   error
	}

	usuariosCh := make(chan countResult, 1)
	pedidosCh := make(chan countResult, 1)
	hoyCh := make(chan countResult, 1)
	ventasCh := make(chan ventasResult, 1)

	go func() {
		n, err := uc.statsRepo.CountUsuarios(ctx)
		usuariosCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountBoletas(ctx)
		pedidosCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountBoletasHoy(ctx)
		hoyCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.statsRepo.VentasMes(ctx)
		ventasCh <- ventasResult{total, err}
	}()

	usuarios := <-usuariosCh
	pedidos := <-pedidosCh
	hoy := <-hoyCh
	ventas := <-ventasCh

	if usuarios.err != nil {
		return nil, fmt.Errorf("stats: total usuarios: %w", usuarios.err)
	}
	if pedidos.err != nil {
		return nil, fmt.Errorf("stats: total pedidos: %w", pedidos.err)
	}
	if hoy.err != nil {
		return nil, fmt.Errorf("stats: pedidos de hoy: %w", hoy.err)
	}
	if ventas.err != nil {
		return nil, fmt.Errorf("stats: ventas del mes: %w", ventas.err)
	}

	return &dto.StatsResponse{
		Usuarios:   usuarios.n,
		Pedidos:    pedidos.n,
		Pendientes: hoy.n,
		VentasMes:  ventas.total,
	}, nil
}
