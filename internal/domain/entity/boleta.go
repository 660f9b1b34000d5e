package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Boleta representa la cabecera de un pedido del cliente.
// Invariante: Total == suma de los Subtotal de sus detalles al momento de crearla;
// nunca se recalcula después.
type Boleta struct {
	ID        int64
	UsuarioID int64
	Fecha     time.Time // asignada por la DB (DEFAULT now())
	Total     decimal.Decimal
}

// DetalleBoleta representa una línea de una boleta. Pertenece en exclusiva a su
// boleta; nunca existe de forma independiente.
type DetalleBoleta struct {
	ID         int64
	BoletaID   int64
	ProductoID int64
	Cantidad   int64
	Subtotal   decimal.Decimal // cantidad × precio unitario al momento del pedido
}
