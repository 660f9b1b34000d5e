package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// fakeProductRepo catálogo en memoria con ids autoincrementales.
type fakeProductRepo struct {
	productos map[int64]*entity.Producto
	nextID    int64
	err       error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{productos: map[int64]*entity.Producto{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Producto) error {
	if f.err != nil {
		return f.err
	}
	p.ID = f.nextID
	f.nextID++
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Producto, 0, len(f.productos))
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.productos[id]; ok {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Producto) error {
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.productos, id)
	return nil
}

func TestProducto_CrearYObtener(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	creado, err := uc.Create(ctx, dto.CreateProductoRequest{
		Nombre: "Café molido 250g",
		Precio: decimal.RequireFromString("4990"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), creado.ID)

	obtenido, err := uc.GetByID(ctx, creado.ID)
	require.NoError(t, err)
	require.NotNil(t, obtenido)
	assert.Equal(t, "Café molido 250g", obtenido.Nombre)
	assert.True(t, decimal.RequireFromString("4990").Equal(obtenido.Precio))
}

func TestProducto_GetByID_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente no es un error, es nil")
}

func TestProducto_List(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductoRequest{Nombre: "Té verde", Precio: decimal.NewFromInt(2500)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductoRequest{Nombre: "Azúcar 1kg", Precio: decimal.NewFromInt(1200)})
	require.NoError(t, err)

	out, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Té verde", out[0].Nombre)
	assert.Equal(t, "Azúcar 1kg", out[1].Nombre)
}

func TestProducto_Update(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	creado, err := uc.Create(ctx, dto.CreateProductoRequest{Nombre: "Té verde", Precio: decimal.NewFromInt(2500)})
	require.NoError(t, err)

	actualizado, err := uc.Update(ctx, creado.ID, dto.UpdateProductoRequest{
		Nombre: "Té verde premium",
		Precio: decimal.NewFromInt(3200),
	})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.Equal(t, "Té verde premium", actualizado.Nombre)
	assert.True(t, decimal.NewFromInt(3200).Equal(actualizado.Precio))
}

func TestProducto_Update_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update(context.Background(), 99, dto.UpdateProductoRequest{Nombre: "X", Precio: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProducto_Delete(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	creado, err := uc.Create(ctx, dto.CreateProductoRequest{Nombre: "Té verde", Precio: decimal.NewFromInt(2500)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, creado.ID))

	out, err := uc.GetByID(ctx, creado.ID)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProducto_ErrorDeRepositorio_SePropaga(t *testing.T) {
	repo := newFakeProductRepo()
	repo.err = errors.New("conexión caída")
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.List(context.Background())
	assert.ErrorIs(t, err, repo.err)
}
