package boleta

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// CreateBoletaUseCase crea una boleta con sus detalles en una sola transacción.
type CreateBoletaUseCase struct {
	txRunner TxRunner
}

// NewCreateBoletaUseCase construye el caso de uso.
func NewCreateBoletaUseCase(txRunner TxRunner) *CreateBoletaUseCase {
	return &CreateBoletaUseCase{txRunner: txRunner}
}

// CreateBoleta valida el pedido, calcula subtotales y total, y persiste la
// cabecera y las líneas como unidad atómica.
//
// El precio unitario lo aporta el cliente (snapshot del precio al momento del
// pedido); no se rederiva del catálogo. El total se fija aquí y no se recalcula
// después: Boleta.Total == Σ subtotal de sus detalles.
func (uc *CreateBoletaUseCase) CreateBoleta(ctx context.Context, in dto.CreateBoletaRequest) (*dto.CreateBoletaResponse, error) {
	if in.UsuarioID == 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Subtotales y total antes de tocar la DB
	subtotales := make([]decimal.Decimal, len(in.Items))
	total := decimal.Zero
	for i, item := range in.Items {
		subtotales[i] = item.Precio.Mul(decimal.NewFromInt(item.Cantidad))
		total = total.Add(subtotales[i])
	}

	b := &entity.Boleta{
		UsuarioID: in.UsuarioID,
		Total:     total,
	}

	err := uc.txRunner.Run(ctx, func(boletaRepo repository.BoletaRepository) error {
		// La cabecera primero: las líneas referencian el id generado.
		if err := boletaRepo.Create(ctx, b); err != nil {
			return err
		}
		for i, item := range in.Items {
			detalle := &entity.DetalleBoleta{
				BoletaID:   b.ID,
				ProductoID: item.ProductoID,
				Cantidad:   item.Cantidad,
				Subtotal:   subtotales[i],
			}
			if err := boletaRepo.CreateDetalle(ctx, detalle); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateBoletaResponse{
		Mensaje:  "Pedido creado correctamente",
		BoletaID: b.ID,
		Total:    total,
	}, nil
}
