package entity

import "github.com/shopspring/decimal"

// Producto representa un producto del catálogo.
type Producto struct {
	ID     int64
	Nombre string
	Precio decimal.Decimal // precio de venta de catálogo
}
