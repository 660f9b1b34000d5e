package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre string          `json:"nombre" validate:"required"`
	Precio decimal.Decimal `json:"precio"`
}

// UpdateProductoRequest entrada para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre string          `json:"nombre" validate:"required"`
	Precio decimal.Decimal `json:"precio"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID     int64           `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}
