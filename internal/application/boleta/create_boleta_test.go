package boleta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/boleta"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// fakeBoletaRepo registra las escrituras que recibe dentro de la "transacción".
type fakeBoletaRepo struct {
	nextID     int64
	boleta     *entity.Boleta
	detalles   []entity.DetalleBoleta
	detalleErr error
}

func (f *fakeBoletaRepo) Create(_ context.Context, b *entity.Boleta) error {
	b.ID = f.nextID
	f.boleta = b
	return nil
}

func (f *fakeBoletaRepo) CreateDetalle(_ context.Context, d *entity.DetalleBoleta) error {
	if f.detalleErr != nil {
		return f.detalleErr
	}
	f.detalles = append(f.detalles, *d)
	return nil
}

// fakeTxRunner ejecuta fn contra el repo fake. Si fn falla, descarta lo escrito,
// imitando el rollback del runner real.
type fakeTxRunner struct {
	repo   *fakeBoletaRepo
	called bool
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.BoletaRepository) error) error {
	f.called = true
	if err := fn(f.repo); err != nil {
		f.repo.boleta = nil
		f.repo.detalles = nil
		return err
	}
	return nil
}

func TestCreateBoleta_CalculaSubtotalesYTotal(t *testing.T) {
	repo := &fakeBoletaRepo{nextID: 12}
	runner := &fakeTxRunner{repo: repo}
	uc := boleta.NewCreateBoletaUseCase(runner)

	out, err := uc.CreateBoleta(context.Background(), dto.CreateBoletaRequest{
		UsuarioID: 5,
		Items: []dto.BoletaItemRequest{
			{ProductoID: 1, Precio: decimal.NewFromInt(10), Cantidad: 2},
			{ProductoID: 2, Precio: decimal.NewFromInt(5), Cantidad: 1},
		},
	})
	require.NoError(t, err)

	// 2×10 + 1×5 = 25
	assert.True(t, decimal.NewFromInt(25).Equal(out.Total), "total esperado 25, fue %s", out.Total)
	assert.Equal(t, int64(12), out.BoletaID)
	assert.Equal(t, "Pedido creado correctamente", out.Mensaje)

	// La cabecera lleva el total ya calculado
	require.NotNil(t, repo.boleta)
	assert.Equal(t, int64(5), repo.boleta.UsuarioID)
	assert.True(t, decimal.NewFromInt(25).Equal(repo.boleta.Total))

	// Las líneas referencian el id generado y conservan el orden de entrada
	require.Len(t, repo.detalles, 2)
	assert.Equal(t, int64(12), repo.detalles[0].BoletaID)
	assert.Equal(t, int64(1), repo.detalles[0].ProductoID)
	assert.True(t, decimal.NewFromInt(20).Equal(repo.detalles[0].Subtotal))
	assert.Equal(t, int64(2), repo.detalles[1].ProductoID)
	assert.True(t, decimal.NewFromInt(5).Equal(repo.detalles[1].Subtotal))
}

func TestCreateBoleta_PreciosDecimales(t *testing.T) {
	repo := &fakeBoletaRepo{nextID: 1}
	uc := boleta.NewCreateBoletaUseCase(&fakeTxRunner{repo: repo})

	out, err := uc.CreateBoleta(context.Background(), dto.CreateBoletaRequest{
		UsuarioID: 1,
		Items: []dto.BoletaItemRequest{
			{ProductoID: 1, Precio: decimal.RequireFromString("19.90"), Cantidad: 3},
		},
	})
	require.NoError(t, err)

	// 3 × 19.90 = 59.70 sin pérdida de precisión
	assert.True(t, decimal.RequireFromString("59.70").Equal(out.Total), "fue %s", out.Total)
}

func TestCreateBoleta_SinUsuario_RetornaErrInvalidInput(t *testing.T) {
	runner := &fakeTxRunner{repo: &fakeBoletaRepo{}}
	uc := boleta.NewCreateBoletaUseCase(runner)

	out, err := uc.CreateBoleta(context.Background(), dto.CreateBoletaRequest{
		Items: []dto.BoletaItemRequest{{ProductoID: 1, Precio: decimal.NewFromInt(10), Cantidad: 1}},
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, runner.called, "la validación debe cortar antes de abrir la transacción")
}

func TestCreateBoleta_SinItems_RetornaErrInvalidInput(t *testing.T) {
	runner := &fakeTxRunner{repo: &fakeBoletaRepo{}}
	uc := boleta.NewCreateBoletaUseCase(runner)

	out, err := uc.CreateBoleta(context.Background(), dto.CreateBoletaRequest{UsuarioID: 5})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, runner.called)
}

func TestCreateBoleta_FallaUnDetalle_NoPersisteNada(t *testing.T) {
	dbErr := errors.New("violación de FK")
	repo := &fakeBoletaRepo{nextID: 7, detalleErr: dbErr}
	uc := boleta.NewCreateBoletaUseCase(&fakeTxRunner{repo: repo})

	out, err := uc.CreateBoleta(context.Background(), dto.CreateBoletaRequest{
		UsuarioID: 5,
		Items: []dto.BoletaItemRequest{
			{ProductoID: 1, Precio: decimal.NewFromInt(10), Cantidad: 2},
		},
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, dbErr)

	// Tras el rollback no queda ni cabecera ni líneas
	assert.Nil(t, repo.boleta)
	assert.Empty(t, repo.detalles)
}
