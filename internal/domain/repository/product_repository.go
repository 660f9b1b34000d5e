package repository

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Producto.
type ProductRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	List(ctx context.Context) ([]*entity.Producto, error)
	Update(ctx context.Context, producto *entity.Producto) error
	Delete(ctx context.Context, id int64) error
}
