package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto y deja el id generado en producto.ID.
func (r *ProductRepo) Create(ctx context.Context, producto *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, precio)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, producto.Nombre, producto.Precio).Scan(&producto.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	query := `SELECT id, nombre, precio FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Precio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by id: %w", err)
	}
	return &p, nil
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, precio FROM productos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Precio); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y precio de un producto.
func (r *ProductRepo) Update(ctx context.Context, producto *entity.Producto) error {
	query := `UPDATE productos SET nombre = $2, precio = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, producto.ID, producto.Nombre, producto.Precio)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
